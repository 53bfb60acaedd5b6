package http

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"dealer-report-srv/internal/model"
	pkgErrors "dealer-report-srv/pkg/errors"
	"dealer-report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"
)

const mimeCSV = "text/csv"

func (h *handler) processImportRequest(c *gin.Context) (importReq, model.Scope, error) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	if c.ContentType() == mimeCSV {
		req, err := h.readCSVImport(c)
		return req, sc, err
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Warnf(ctx, "importer.delivery.http.processImportRequest: Failed to read body: %v", err)
		return importReq{}, sc, errWrongBody
	}

	result, err := h.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		h.l.Warnf(ctx, "importer.delivery.http.processImportRequest: Body is not JSON: %v", err)
		return importReq{}, sc, errWrongBody
	}
	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			msgs[i] = desc.String()
		}
		return importReq{}, sc, errWrongBody.WithMessage("Invalid request body: " + strings.Join(msgs, "; "))
	}

	var req importReq
	if err := json.Unmarshal(body, &req); err != nil {
		h.l.Warnf(ctx, "importer.delivery.http.processImportRequest: Unmarshal failed: %v", err)
		return importReq{}, sc, errWrongBody
	}
	return req, sc, nil
}

// readCSVImport turns a CSV body into rows keyed by the header cells.
func (h *handler) readCSVImport(c *gin.Context) (importReq, error) {
	var q csvImportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return importReq{}, errWrongBody.WithMessage("Invalid import query parameters")
	}

	r := csv.NewReader(c.Request.Body)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return importReq{Type: q.Type, Data: []map[string]any{}, Options: q.options()}, nil
	}
	if err != nil {
		return importReq{}, csvError(err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := make([]map[string]any, 0)
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return importReq{}, csvError(err)
		}
		row := make(map[string]any, len(header))
		for i, key := range header {
			if key == "" || i >= len(record) {
				continue
			}
			row[key] = record[i]
		}
		rows = append(rows, row)
	}

	return importReq{Type: q.Type, Data: rows, Options: q.options()}, nil
}

func (q csvImportQuery) options() importOptions {
	return importOptions{SkipErrors: q.SkipErrors, UpdateExisting: q.UpdateExisting}
}

func csvError(err error) *pkgErrors.HTTPError {
	return errWrongBody.WithMessage("Invalid CSV: " + err.Error())
}
