package postgre

import (
	"fmt"
	"strings"

	"dealer-report-srv/internal/importer"
	"dealer-report-srv/internal/model"
)

// Table and column names come from the importer whitelist, never from the request.

func buildInsertQuery(ts model.TenantScope, rec importer.Record) (string, []any) {
	cols := append([]string{"dealership_id"}, rec.Columns...)
	args := append([]any{ts.DealershipID()}, rec.Values...)

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		rec.Table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	return q, args
}

func buildUpdateQuery(ts model.TenantScope, rec importer.Record) (string, []any) {
	args := []any{ts.DealershipID()}
	sets := make([]string, 0, len(rec.Columns)+1)
	for i, col := range rec.Columns {
		args = append(args, rec.Values[i])
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, rec.KeyValue)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE dealership_id = $1 AND %s = $%d",
		rec.Table, strings.Join(sets, ", "), rec.KeyColumn, len(args))
	return q, args
}
