package postgre

import (
	"fmt"
	"strings"

	"dealer-report-srv/internal/model"
	"dealer-report-srv/internal/report"
	"dealer-report-srv/internal/report/repository"
)

// projection describes the fixed shape of one report kind's query.
type projection struct {
	base      string
	tenantCol string
	fixed     string
	rangeCol  string
	statusCol string
	orderBy   string
}

var projections = map[report.Kind]projection{
	report.KindSales: {
		base: `SELECT i.id, i.dealership_id, i.invoice_number, i.total_amount, i.status, i.issued_at,
	CASE WHEN c.id IS NULL THEN NULL ELSE json_build_object('first_name', c.first_name, 'last_name', c.last_name, 'email', c.email) END AS customers,
	CASE WHEN v.id IS NULL THEN NULL ELSE json_build_object('make', v.make, 'model', v.model, 'year', v.year, 'vin', v.vin) END AS vehicles
FROM invoices i
LEFT JOIN customers c ON c.id = i.customer_id
LEFT JOIN vehicles v ON v.id = i.vehicle_id`,
		tenantCol: "i.dealership_id",
		fixed:     "i.invoice_type = 'sale'",
		rangeCol:  "i.issued_at",
		orderBy:   "i.issued_at DESC",
	},
	report.KindInventory: {
		base: `SELECT id, dealership_id, vin, make, model, year, mileage, condition, purchase_price, sale_price,
	status, location, date_acquired, created_at
FROM vehicles`,
		tenantCol: "dealership_id",
		statusCol: "status",
		orderBy:   "created_at DESC",
	},
	report.KindService: {
		base: `SELECT s.id, s.dealership_id, s.job_number, s.service_type, s.status, s.total_amount, s.scheduled_at, s.completed_at,
	CASE WHEN c.id IS NULL THEN NULL ELSE json_build_object('first_name', c.first_name, 'last_name', c.last_name) END AS customers,
	CASE WHEN v.id IS NULL THEN NULL ELSE json_build_object('make', v.make, 'model', v.model, 'year', v.year, 'vin', v.vin) END AS vehicles
FROM service_jobs s
LEFT JOIN customers c ON c.id = s.customer_id
LEFT JOIN vehicles v ON v.id = s.vehicle_id`,
		tenantCol: "s.dealership_id",
		rangeCol:  "s.scheduled_at",
		orderBy:   "s.scheduled_at DESC",
	},
	report.KindFinancial: {
		base: `SELECT i.id, i.dealership_id, i.invoice_number, i.invoice_type, i.total_amount, i.amount_paid, i.amount_due,
	i.status, i.issued_at,
	(SELECT COALESCE(json_agg(json_build_object('amount', p.amount, 'payment_method', p.payment_method, 'payment_date', p.payment_date) ORDER BY p.payment_date), '[]')
		FROM payments p WHERE p.invoice_id = i.id) AS payments
FROM invoices i`,
		tenantCol: "i.dealership_id",
		rangeCol:  "i.issued_at",
		orderBy:   "i.issued_at DESC",
	},
}

// buildProjectionQuery renders the parameterized query for opts.Kind.
// The tenant is always bound as $1; every other value is a later placeholder.
func buildProjectionQuery(ts model.TenantScope, opts repository.ProjectOptions) (string, []any, error) {
	if ts.IsZero() {
		return "", nil, report.ErrMissingTenantScope
	}
	p, ok := projections[opts.Kind]
	if !ok {
		return "", nil, &report.UnsupportedKindError{Kind: opts.Kind}
	}

	args := []any{ts.DealershipID()}
	conds := []string{p.tenantCol + " = $1"}
	if p.fixed != "" {
		conds = append(conds, p.fixed)
	}
	bind := func(col, op string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf("%s %s $%d", col, op, len(args)))
	}

	if p.rangeCol != "" {
		if opts.Start != nil {
			bind(p.rangeCol, ">=", *opts.Start)
		}
		if opts.End != nil {
			op := "<="
			if opts.EndExclusive {
				op = "<"
			}
			bind(p.rangeCol, op, *opts.End)
		}
	}
	if p.statusCol != "" && opts.Status != "" {
		bind(p.statusCol, "=", opts.Status)
	}

	var b strings.Builder
	b.WriteString(p.base)
	b.WriteString("\nWHERE ")
	b.WriteString(strings.Join(conds, " AND "))
	b.WriteString("\nORDER BY ")
	b.WriteString(p.orderBy)
	return b.String(), args, nil
}
