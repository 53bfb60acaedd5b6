package http

import (
	"dealer-report-srv/internal/importer"
)

type importOptions struct {
	SkipErrors     bool `json:"skipErrors"`
	UpdateExisting bool `json:"updateExisting"`
}

type importReq struct {
	Type    string           `json:"type"`
	Data    []map[string]any `json:"data"`
	Options importOptions    `json:"options"`
}

func (r importReq) toInput() importer.ImportInput {
	return importer.ImportInput{
		Type: importer.Type(r.Type),
		Rows: r.Data,
		Options: importer.Options{
			SkipErrors:     r.Options.SkipErrors,
			UpdateExisting: r.Options.UpdateExisting,
		},
	}
}

type csvImportQuery struct {
	Type           string `form:"type"`
	SkipErrors     bool   `form:"skip_errors"`
	UpdateExisting bool   `form:"update_existing"`
}

type importResp struct {
	Success  bool                `json:"success"`
	Imported int                 `json:"imported"`
	Errors   []importer.RowError `json:"errors"`
	Skipped  int                 `json:"skipped"`
}

func (h *handler) newImportResp(o importer.ImportOutput) importResp {
	errs := o.Errors
	if errs == nil {
		errs = []importer.RowError{}
	}
	return importResp{
		Success:  o.Success,
		Imported: o.Imported,
		Errors:   errs,
		Skipped:  o.Skipped,
	}
}

func newImportFailure(msg string) importResp {
	return importResp{
		Errors: []importer.RowError{{Row: 0, Error: msg}},
	}
}
