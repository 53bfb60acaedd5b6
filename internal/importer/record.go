package importer

import (
	"fmt"
	"strconv"
	"strings"

	"dealer-report-srv/pkg/util"

	"github.com/lib/pq"
)

var (
	vehicleColumns = []string{
		"vin", "make", "model", "year", "trim", "body_style", "exterior_color", "interior_color",
		"engine", "transmission", "drivetrain", "fuel_type", "mileage", "condition", "status",
		"location", "key_count", "purchase_price", "sale_price", "date_acquired", "notes",
		"features", "photos",
	}
	customerColumns = []string{
		"first_name", "last_name", "email", "phone", "address", "city", "state", "zip_code",
		"dealership_name", "notes",
	}
	partColumns = []string{
		"part_number", "name", "description", "category", "brand", "quantity", "reorder_threshold",
		"unit_cost", "sale_price", "bin_location", "supplier_name", "supplier_part_number",
	}

	arrayColumns = map[string]bool{"features": true, "photos": true}
)

// BuildRecord validates row and maps it onto the whitelisted columns of t.
// Unknown keys are dropped. createdBy is stamped on tables that track it.
func BuildRecord(t Type, row map[string]any, createdBy string) (Record, error) {
	switch t {
	case TypeVehicles:
		return buildVehicle(row, createdBy)
	case TypeCustomers:
		return buildCustomer(row)
	case TypeParts:
		return buildPart(row, createdBy)
	default:
		return Record{}, &UnknownTypeError{Type: t}
	}
}

func buildVehicle(row map[string]any, createdBy string) (Record, error) {
	raw := stringValue(row["vin"])
	if raw == "" {
		return Record{}, errVINRequired
	}
	vin := util.NormalizeVIN(raw)
	if len(vin) != 17 {
		return Record{}, errInvalidVIN
	}

	rec := pick("vehicles", vehicleColumns, row)
	rec.set("vin", vin)
	rec.set("created_by", createdBy)
	rec.KeyColumn, rec.KeyValue = "vin", vin
	return rec, nil
}

func buildCustomer(row map[string]any) (Record, error) {
	if stringValue(row["first_name"]) == "" || stringValue(row["last_name"]) == "" {
		return Record{}, errCustomerNameEmpty
	}

	rec := pick("customers", customerColumns, row)
	rec.KeyColumn = "email"
	if email := stringValue(row["email"]); email != "" {
		rec.KeyValue = email
	}
	return rec, nil
}

func buildPart(row map[string]any, createdBy string) (Record, error) {
	partNumber := stringValue(row["part_number"])
	if partNumber == "" || stringValue(row["name"]) == "" {
		return Record{}, errPartFieldsEmpty
	}

	rec := pick("parts", partColumns, row)
	for col, def := range map[string]int{"quantity": 0, "reorder_threshold": 10} {
		if v, ok := present(row, col); ok {
			rec.set(col, intOr(v, def))
		}
	}
	for _, col := range []string{"unit_cost", "sale_price"} {
		if v, ok := present(row, col); ok {
			rec.set(col, floatOr(v, 0))
		}
	}
	rec.set("created_by", createdBy)
	rec.KeyColumn, rec.KeyValue = "part_number", partNumber
	return rec, nil
}

func pick(table string, whitelist []string, row map[string]any) Record {
	rec := Record{Table: table}
	for _, col := range whitelist {
		v, ok := present(row, col)
		if !ok {
			continue
		}
		if arrayColumns[col] {
			v = pq.Array(stringList(v))
		}
		rec.Columns = append(rec.Columns, col)
		rec.Values = append(rec.Values, v)
	}
	return rec
}

// set overwrites col when already picked, otherwise appends it.
func (r *Record) set(col string, v any) {
	for i, c := range r.Columns {
		if c == col {
			r.Values[i] = v
			return
		}
	}
	r.Columns = append(r.Columns, col)
	r.Values = append(r.Values, v)
}

// present treats nil and blank strings as absent, the way CSV cells arrive.
func present(row map[string]any, key string) (any, bool) {
	v, ok := row[key]
	if !ok || v == nil {
		return nil, false
	}
	if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
		return nil, false
	}
	return v, true
}

func stringValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}

func intOr(v any, def int) int {
	switch x := v.(type) {
	case float64:
		return int(x)
	case int:
		return x
	}
	f, err := strconv.ParseFloat(stringValue(v), 64)
	if err != nil {
		return def
	}
	return int(f)
}

func floatOr(v any, def float64) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	f, err := strconv.ParseFloat(stringValue(v), 64)
	if err != nil {
		return def
	}
	return f
}

// stringList accepts a JSON array or a ';' separated cell.
func stringList(v any) []string {
	switch x := v.(type) {
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			if s := stringValue(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return x
	}
	var out []string
	for _, part := range strings.Split(stringValue(v), ";") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
