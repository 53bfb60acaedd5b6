package usecase

import (
	"time"

	"dealer-report-srv/internal/report"
	"dealer-report-srv/internal/report/repository"
	"dealer-report-srv/pkg/util"
)

// buildOptions checks the request and turns it into projection options.
// Nothing here touches the database.
func buildOptions(ip report.GenerateInput) (repository.ProjectOptions, error) {
	if !ip.Kind.Valid() {
		return repository.ProjectOptions{}, &report.UnsupportedKindError{Kind: ip.Kind}
	}
	if !ip.Format.Valid() {
		return repository.ProjectOptions{}, report.ErrUnsupportedFormat
	}
	if err := validateDelivery(ip.Delivery); err != nil {
		return repository.ProjectOptions{}, err
	}

	opts := repository.ProjectOptions{
		Kind:   ip.Kind,
		Status: ip.Parameters.StatusFilter(),
	}

	var start, end time.Time
	if ip.Parameters.StartDate != "" {
		t, _, err := util.ParseDate(ip.Parameters.StartDate)
		if err != nil {
			return repository.ProjectOptions{}, report.ErrInvalidDateRange
		}
		start = t
		opts.Start = &start
	}
	if ip.Parameters.EndDate != "" {
		t, dateOnly, err := util.ParseDate(ip.Parameters.EndDate)
		if err != nil {
			return repository.ProjectOptions{}, report.ErrInvalidDateRange
		}
		end = t
		if dateOnly {
			// A bare date covers the whole day.
			end = t.AddDate(0, 0, 1)
			opts.EndExclusive = true
		}
		if opts.Start != nil && (start.After(end) || (opts.EndExclusive && !start.Before(end))) {
			return repository.ProjectOptions{}, report.ErrInvalidDateRange
		}
		opts.End = &end
	}

	return opts, nil
}

func validateDelivery(d *report.Delivery) error {
	if d == nil {
		return nil
	}
	switch d.Method {
	case report.DeliveryDownload:
		return nil
	case report.DeliveryEmail:
		if len(d.Emails) == 0 {
			return report.ErrInvalidDelivery
		}
		return nil
	}
	return report.ErrInvalidDelivery
}
