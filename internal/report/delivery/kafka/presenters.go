package kafka

import "dealer-report-srv/internal/report"

// ToScheduleInput maps a trigger message to usecase input.
func (m ScheduledReportMessage) ToScheduleInput() report.ScheduleInput {
	in := report.ScheduleInput{
		ScheduleID: m.ScheduleID,
		Name:       m.Name,
		UserID:     m.UserID,
		GenerateInput: report.GenerateInput{
			Kind:   report.Kind(m.ReportKind),
			Format: report.Format(m.Format),
			Parameters: report.Parameters{
				StartDate:      m.Parameters.StartDate,
				EndDate:        m.Parameters.EndDate,
				IncludeDetails: m.Parameters.IncludeDetails,
				GroupBy:        m.Parameters.GroupBy,
				Filters:        m.Parameters.Filters,
			},
		},
	}
	if m.Delivery != nil {
		in.Delivery = &report.Delivery{
			Method: report.DeliveryMethod(m.Delivery.Method),
			Emails: m.Delivery.Emails,
		}
	}
	return in
}

// NewScheduledReportMessage is the inverse of ToScheduleInput.
func NewScheduledReportMessage(in report.ScheduleInput) ScheduledReportMessage {
	m := ScheduledReportMessage{
		ScheduleID: in.ScheduleID,
		Name:       in.Name,
		UserID:     in.UserID,
		ReportKind: string(in.Kind),
		Format:     string(in.Format),
		Parameters: ParametersMessage{
			StartDate:      in.Parameters.StartDate,
			EndDate:        in.Parameters.EndDate,
			IncludeDetails: in.Parameters.IncludeDetails,
			GroupBy:        in.Parameters.GroupBy,
			Filters:        in.Parameters.Filters,
		},
	}
	if in.Delivery != nil {
		m.Delivery = &DeliveryMessage{
			Method: string(in.Delivery.Method),
			Emails: in.Delivery.Emails,
		}
	}
	return m
}

func NewReportGeneratedMessage(evt report.GeneratedEvent) ReportGeneratedMessage {
	return ReportGeneratedMessage{
		DealershipID: evt.DealershipID,
		UserID:       evt.UserID,
		ReportKind:   string(evt.Kind),
		Format:       string(evt.Format),
		RowCount:     evt.RowCount,
		DownloadURL:  evt.DownloadURL,
		Partial:      evt.Partial,
		GeneratedAt:  evt.GeneratedAt,
	}
}
