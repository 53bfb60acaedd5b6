package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"dealer-report-srv/internal/report"
)

// DefaultPreviewCap is the number of rows a display bundle keeps.
const DefaultPreviewCap = 50

// Result is a rendered artifact: Payload goes back to the caller, Body is what gets stored.
type Result struct {
	Payload any
	Body    []byte
}

// Render turns the artifact into the requested format.
func Render(a report.Artifact, format report.Format, groupBy string, previewCap int) (Result, error) {
	switch format {
	case report.FormatJSON:
		rows := Structured(a)
		body, err := json.Marshal(rows)
		if err != nil {
			return Result{}, err
		}
		return Result{Payload: rows, Body: body}, nil
	case report.FormatCSV:
		text := DelimitedText(a.Rows)
		return Result{Payload: text, Body: []byte(text)}, nil
	case report.FormatPDF:
		bundle := DisplayBundle(a, groupBy, previewCap)
		body, err := json.Marshal(bundle)
		if err != nil {
			return Result{}, err
		}
		return Result{Payload: bundle, Body: body}, nil
	}
	return Result{}, report.ErrUnsupportedFormat
}

// Structured returns the rows untouched. A nil row set becomes an empty one.
func Structured(a report.Artifact) []report.Row {
	if a.Rows == nil {
		return []report.Row{}
	}
	return a.Rows
}

// DelimitedText renders rows as CSV. The header is the sorted union of every
// row's keys and every cell is quoted. Nested values are JSON-encoded, so a
// CSV consumer sees them as opaque text.
func DelimitedText(rows []report.Row) string {
	if len(rows) == 0 {
		return ""
	}

	fields := make([]map[string]any, len(rows))
	keys := make(map[string]struct{})
	for i, r := range rows {
		fields[i] = r.Fields()
		for k := range fields[i] {
			keys[k] = struct{}{}
		}
	}
	header := make([]string, 0, len(keys))
	for k := range keys {
		header = append(header, k)
	}
	sort.Strings(header)

	var b strings.Builder
	writeLine(&b, header)
	line := make([]string, len(header))
	for _, f := range fields {
		for i, k := range header {
			line[i] = cell(f[k])
		}
		writeLine(&b, line)
	}
	return b.String()
}

func writeLine(b *strings.Builder, values []string) {
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(v, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func cell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// DisplayBundle keeps the first previewCap rows and reports how many were left out.
func DisplayBundle(a report.Artifact, groupBy string, previewCap int) report.DisplayBundle {
	if previewCap <= 0 {
		previewCap = DefaultPreviewCap
	}
	rows := Structured(a)
	bundle := report.DisplayBundle{
		Title:       a.Title,
		Data:        rows,
		GeneratedAt: a.GeneratedAt,
		GroupBy:     groupBy,
		TotalRows:   len(rows),
	}
	if len(rows) > previewCap {
		omitted := len(rows) - previewCap
		bundle.Data = rows[:previewCap]
		bundle.Truncated = true
		bundle.OmittedRows = omitted
		bundle.Notice = fmt.Sprintf("%d more rows truncated", omitted)
	}
	return bundle
}
