package usecase

import (
	"fmt"
	"html"
	"time"

	"dealer-report-srv/internal/report"
	"dealer-report-srv/pkg/ses"
	"dealer-report-srv/pkg/util"
)

const (
	reportEmailText = `Your %s is ready.

Rows: %d
Generated: %s

Download: %s
This link expires at %s.`

	reportEmailHTML = `<p>Your <strong>%s</strong> is ready.</p>
<p>Rows: %d<br>Generated: %s</p>
<p><a href="%s">Download report</a></p>
<p><small>This link expires at %s.</small></p>`
)

// reportEmail builds the link email for an artifact. The caller sets To.
func reportEmail(a report.Artifact, url string, expiresAt time.Time) ses.Message {
	generated := util.DateTimeToStr(a.GeneratedAt)
	expires := util.DateTimeToStr(expiresAt)
	return ses.Message{
		Subject: fmt.Sprintf("%s - %s", a.Title, util.DateToStr(a.GeneratedAt)),
		Text:    fmt.Sprintf(reportEmailText, a.Title, len(a.Rows), generated, url, expires),
		HTML: fmt.Sprintf(reportEmailHTML, html.EscapeString(a.Title), len(a.Rows), generated,
			html.EscapeString(url), expires),
	}
}
