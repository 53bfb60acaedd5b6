package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"dealer-report-srv/pkg/paginator"
)

// Kind is the report family a request asks for.
type Kind string

const (
	KindSales     Kind = "sales"
	KindInventory Kind = "inventory"
	KindService   Kind = "service"
	KindFinancial Kind = "financial"
)

func (k Kind) Valid() bool {
	switch k {
	case KindSales, KindInventory, KindService, KindFinancial:
		return true
	}
	return false
}

// Title is the human heading of the rendered artifact.
func (k Kind) Title() string {
	switch k {
	case KindSales:
		return "Sales Report"
	case KindInventory:
		return "Inventory Report"
	case KindService:
		return "Service Report"
	case KindFinancial:
		return "Financial Report"
	}
	return ""
}

// Format selects the renderer.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

func (f Format) Valid() bool {
	switch f {
	case FormatJSON, FormatCSV, FormatPDF:
		return true
	}
	return false
}

// ContentType is the MIME type of the stored artifact.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	default:
		// pdf is delivered as a display bundle the client lays out.
		return "application/json"
	}
}

func (f Format) Extension() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatPDF:
		return "bundle.json"
	default:
		return "json"
	}
}

type DeliveryMethod string

const (
	DeliveryDownload DeliveryMethod = "download"
	DeliveryEmail    DeliveryMethod = "email"
)

// Parameters are the caller-supplied knobs of a report.
// GroupBy is recorded and echoed but never applied.
type Parameters struct {
	StartDate      string         `json:"startDate,omitempty"`
	EndDate        string         `json:"endDate,omitempty"`
	IncludeDetails bool           `json:"includeDetails,omitempty"`
	GroupBy        string         `json:"groupBy,omitempty"`
	Filters        map[string]any `json:"filters,omitempty"`
}

// StatusFilter returns filters.status as text. JSON numbers and booleans are
// formatted the way they were written; a missing or null status is "".
func (p Parameters) StatusFilter() string {
	switch v := p.Filters["status"].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

type Delivery struct {
	Method DeliveryMethod `json:"method"`
	Emails []string       `json:"emails,omitempty"`
}

// Stage names a step of the pipeline.
type Stage string

const (
	StageBuilding   Stage = "building"
	StageProjecting Stage = "projecting"
	StageRendering  Stage = "rendering"
	StageDelivering Stage = "delivering"
	StageAuditing   Stage = "auditing"
)

// StageError is a non-fatal failure attached to an otherwise successful run.
type StageError struct {
	Stage Stage  `json:"stage"`
	Error string `json:"error"`
}

// Artifact is the projected result before rendering.
type Artifact struct {
	Title       string
	Rows        []Row
	GeneratedAt time.Time
}

// DisplayBundle is the pdf rendition: a capped preview the client lays out.
type DisplayBundle struct {
	Title       string    `json:"title"`
	Data        []Row     `json:"data"`
	GeneratedAt time.Time `json:"generatedAt"`
	GroupBy     string    `json:"groupBy,omitempty"`
	TotalRows   int       `json:"totalRows"`
	Truncated   bool      `json:"truncated"`
	OmittedRows int       `json:"omittedRows,omitempty"`
	Notice      string    `json:"notice,omitempty"`
}

type GenerateInput struct {
	Kind       Kind
	Format     Format
	Parameters Parameters
	Delivery   *Delivery
}

type GenerateOutput struct {
	Kind        Kind
	Format      Format
	Payload     any // []Row, CSV string or DisplayBundle
	RowCount    int
	DownloadURL string
	Errors      []StageError
}

// Partial reports whether some delivery or audit step failed.
func (o GenerateOutput) Partial() bool {
	return len(o.Errors) > 0
}

type HistoryInput struct {
	Paginate paginator.PaginateQuery
}

type HistoryEntry struct {
	ID         int64
	UserID     string
	Kind       Kind
	Format     Format
	Parameters json.RawMessage
	CreatedAt  time.Time
}

type HistoryOutput struct {
	Entries   []HistoryEntry
	Paginator paginator.Paginator
}

// ScheduleInput asks for a report to be produced later on behalf of UserID.
type ScheduleInput struct {
	ScheduleID string
	Name       string
	UserID     string
	GenerateInput
}

// GeneratedEvent is published after every successful run.
type GeneratedEvent struct {
	DealershipID string
	UserID       string
	Kind         Kind
	Format       Format
	RowCount     int
	DownloadURL  string
	Partial      bool
	GeneratedAt  time.Time
}
