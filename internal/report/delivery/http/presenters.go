package http

import (
	"encoding/json"

	"dealer-report-srv/internal/report"
	"dealer-report-srv/pkg/paginator"
	"dealer-report-srv/pkg/util"
)

type reportParameters struct {
	StartDate      string         `json:"startDate,omitempty"`
	EndDate        string         `json:"endDate,omitempty"`
	IncludeDetails bool           `json:"includeDetails,omitempty"`
	GroupBy        string         `json:"groupBy,omitempty"`
	Filters        map[string]any `json:"filters,omitempty" swaggertype:"object"`
}

func (p reportParameters) toParameters() report.Parameters {
	return report.Parameters{
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		IncludeDetails: p.IncludeDetails,
		GroupBy:        p.GroupBy,
		Filters:        p.Filters,
	}
}

type reportDelivery struct {
	Method string   `json:"method" binding:"required"`
	Emails []string `json:"emails,omitempty"`
}

func (d *reportDelivery) toDelivery() *report.Delivery {
	if d == nil {
		return nil
	}
	return &report.Delivery{
		Method: report.DeliveryMethod(d.Method),
		Emails: d.Emails,
	}
}

type generateReportReq struct {
	Type       string           `json:"type" binding:"required"`
	Format     string           `json:"format" binding:"required"`
	Parameters reportParameters `json:"parameters"`
	Delivery   *reportDelivery  `json:"delivery,omitempty"`
}

func (r generateReportReq) toInput() report.GenerateInput {
	return report.GenerateInput{
		Kind:       report.Kind(r.Type),
		Format:     report.Format(r.Format),
		Parameters: r.Parameters.toParameters(),
		Delivery:   r.Delivery.toDelivery(),
	}
}

type generateReportMeta struct {
	RowCount    int    `json:"row_count"`
	DownloadURL string `json:"download_url,omitempty"`
}

func (h *handler) newGenerateReportMeta(o report.GenerateOutput) generateReportMeta {
	return generateReportMeta{
		RowCount:    o.RowCount,
		DownloadURL: o.DownloadURL,
	}
}

type listHistoryReq struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

func (r listHistoryReq) toInput() report.HistoryInput {
	q := paginator.PaginateQuery{Page: r.Page, Limit: r.Limit}
	q.Adjust()
	return report.HistoryInput{Paginate: q}
}

type historyEntryResp struct {
	ID         int64           `json:"id"`
	UserID     string          `json:"user_id"`
	Type       string          `json:"type"`
	Format     string          `json:"format"`
	Parameters json.RawMessage `json:"parameters,omitempty" swaggertype:"object"`
	CreatedAt  string          `json:"created_at"`
}

func (h *handler) newHistoryResp(o report.HistoryOutput) []historyEntryResp {
	resp := make([]historyEntryResp, 0, len(o.Entries))
	for _, e := range o.Entries {
		resp = append(resp, historyEntryResp{
			ID:         e.ID,
			UserID:     e.UserID,
			Type:       string(e.Kind),
			Format:     string(e.Format),
			Parameters: e.Parameters,
			CreatedAt:  util.DateTimeToStr(e.CreatedAt),
		})
	}
	return resp
}

type scheduleReportReq struct {
	ScheduleID string           `json:"schedule_id" binding:"required"`
	Name       string           `json:"name"`
	UserID     string           `json:"user_id" binding:"required"`
	Type       string           `json:"type" binding:"required"`
	Format     string           `json:"format" binding:"required"`
	Parameters reportParameters `json:"parameters"`
	Delivery   *reportDelivery  `json:"delivery,omitempty"`
}

func (r scheduleReportReq) toInput() report.ScheduleInput {
	return report.ScheduleInput{
		ScheduleID: r.ScheduleID,
		Name:       r.Name,
		UserID:     r.UserID,
		GenerateInput: report.GenerateInput{
			Kind:       report.Kind(r.Type),
			Format:     report.Format(r.Format),
			Parameters: r.Parameters.toParameters(),
			Delivery:   r.Delivery.toDelivery(),
		},
	}
}

type scheduleReportResp struct {
	ScheduleID string `json:"schedule_id"`
	Status     string `json:"status"`
}
