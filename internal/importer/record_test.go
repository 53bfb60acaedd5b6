package importer

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecord_Vehicle(t *testing.T) {
	rec, err := BuildRecord(TypeVehicles, map[string]any{
		"vin":      " 1hgcm82633a004352 ",
		"year":     "2021",
		"features": "sunroof; heated seats;",
		"notes":    "",
		"id":       "ignored",
	}, "u-1")

	require.NoError(t, err)
	assert.Equal(t, "vehicles", rec.Table)
	assert.Equal(t, []string{"vin", "year", "features", "created_by"}, rec.Columns)
	assert.Equal(t, "1HGCM82633A004352", rec.Values[0])
	assert.Equal(t, pq.Array([]string{"sunroof", "heated seats"}), rec.Values[2])
	assert.Equal(t, "vin", rec.KeyColumn)
	assert.Equal(t, "1HGCM82633A004352", rec.KeyValue)
}

func TestBuildRecord_VehicleValidation(t *testing.T) {
	_, err := BuildRecord(TypeVehicles, map[string]any{"vin": ""}, "u-1")
	assert.EqualError(t, err, "VIN is required")

	_, err = BuildRecord(TypeVehicles, map[string]any{"vin": "1HGCM826"}, "u-1")
	assert.EqualError(t, err, "Invalid VIN format")
}

func TestBuildRecord_Customer(t *testing.T) {
	rec, err := BuildRecord(TypeCustomers, map[string]any{"first_name": "Ana", "last_name": "Lee"}, "u-1")
	require.NoError(t, err)
	assert.NotContains(t, rec.Columns, "created_by")
	assert.Nil(t, rec.KeyValue)

	rec, err = BuildRecord(TypeCustomers, map[string]any{"first_name": "Ana", "last_name": "Lee", "email": "ana@x.test"}, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "ana@x.test", rec.KeyValue)

	_, err = BuildRecord(TypeCustomers, map[string]any{"first_name": "Ana", "last_name": "  "}, "u-1")
	assert.EqualError(t, err, "First name and last name are required")
}

func TestBuildRecord_PartNumbers(t *testing.T) {
	rec, err := BuildRecord(TypeParts, map[string]any{
		"part_number":       "BRK-1",
		"name":              "Brake pad",
		"quantity":          "12.7",
		"reorder_threshold": "lots",
		"unit_cost":         "n/a",
		"sale_price":        float64(49.5),
	}, "u-1")
	require.NoError(t, err)

	values := map[string]any{}
	for i, c := range rec.Columns {
		values[c] = rec.Values[i]
	}
	assert.Equal(t, 12, values["quantity"])
	assert.Equal(t, 10, values["reorder_threshold"])
	assert.Equal(t, float64(0), values["unit_cost"])
	assert.Equal(t, 49.5, values["sale_price"])
	assert.Equal(t, "u-1", values["created_by"])

	_, err = BuildRecord(TypeParts, map[string]any{"name": "Brake pad"}, "u-1")
	assert.EqualError(t, err, "Part number and name are required")
}

func TestBuildRecord_UnknownType(t *testing.T) {
	_, err := BuildRecord("leads", map[string]any{}, "u-1")
	assert.ErrorIs(t, err, ErrUnknownType)
}
