package importer

// Type is the entity a bulk import writes to.
type Type string

const (
	TypeVehicles  Type = "vehicles"
	TypeCustomers Type = "customers"
	TypeParts     Type = "parts"
)

func (t Type) Valid() bool {
	switch t {
	case TypeVehicles, TypeCustomers, TypeParts:
		return true
	}
	return false
}

type Options struct {
	SkipErrors     bool
	UpdateExisting bool
}

type ImportInput struct {
	Type    Type
	Rows    []map[string]any
	Options Options
}

// RowError describes one rejected row. Row is 1-based; 0 means the whole request.
type RowError struct {
	Row   int            `json:"row"`
	Error string         `json:"error"`
	Data  map[string]any `json:"data,omitempty"`
}

type ImportOutput struct {
	Success  bool
	Imported int
	Errors   []RowError
	Skipped  int
}

// Record is a whitelisted row ready to be written for one tenant.
// KeyValue is nil when the row carries no natural key to match existing rows on.
type Record struct {
	Table     string
	Columns   []string
	Values    []any
	KeyColumn string
	KeyValue  any
}
