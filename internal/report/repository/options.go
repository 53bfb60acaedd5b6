package repository

import (
	"time"

	"dealer-report-srv/internal/report"
)

// ProjectOptions narrows a projection. Dates are already validated.
type ProjectOptions struct {
	Kind  report.Kind
	Start *time.Time
	End   *time.Time
	// EndExclusive binds End with < instead of <=; set when End is the day after a date-only bound.
	EndExclusive bool
	Status       string
}
