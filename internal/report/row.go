package report

import "time"

// Row is one projected record. Each kind has its own concrete type;
// Fields exposes the open-map view the delimited-text renderer consumes.
type Row interface {
	Kind() Kind
	Fields() map[string]any
}

type CustomerContact struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

type CustomerName struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type VehicleRef struct {
	Make  *string `json:"make"`
	Model *string `json:"model"`
	Year  *int    `json:"year"`
	VIN   *string `json:"vin"`
}

type PaymentRef struct {
	Amount        *float64 `json:"amount"`
	PaymentMethod *string  `json:"payment_method"`
	PaymentDate   *string  `json:"payment_date"`
}

type SalesRow struct {
	ID            string           `json:"id"`
	DealershipID  string           `json:"dealership_id"`
	InvoiceNumber *string          `json:"invoice_number"`
	TotalAmount   *float64         `json:"total_amount"`
	Status        *string          `json:"status"`
	IssuedAt      *time.Time       `json:"issued_at"`
	Customer      *CustomerContact `json:"customers"`
	Vehicle       *VehicleRef      `json:"vehicles"`
}

func (SalesRow) Kind() Kind { return KindSales }

func (r SalesRow) Fields() map[string]any {
	return map[string]any{
		"id":             r.ID,
		"dealership_id":  r.DealershipID,
		"invoice_number": deref(r.InvoiceNumber),
		"total_amount":   deref(r.TotalAmount),
		"status":         deref(r.Status),
		"issued_at":      deref(r.IssuedAt),
		"customers":      ref(r.Customer),
		"vehicles":       ref(r.Vehicle),
	}
}

type InventoryRow struct {
	ID            string     `json:"id"`
	DealershipID  string     `json:"dealership_id"`
	VIN           *string    `json:"vin"`
	Make          *string    `json:"make"`
	Model         *string    `json:"model"`
	Year          *int       `json:"year"`
	Mileage       *int       `json:"mileage"`
	Condition     *string    `json:"condition"`
	PurchasePrice *float64   `json:"purchase_price"`
	SalePrice     *float64   `json:"sale_price"`
	Status        *string    `json:"status"`
	Location      *string    `json:"location"`
	DateAcquired  *time.Time `json:"date_acquired"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (InventoryRow) Kind() Kind { return KindInventory }

func (r InventoryRow) Fields() map[string]any {
	return map[string]any{
		"id":             r.ID,
		"dealership_id":  r.DealershipID,
		"vin":            deref(r.VIN),
		"make":           deref(r.Make),
		"model":          deref(r.Model),
		"year":           deref(r.Year),
		"mileage":        deref(r.Mileage),
		"condition":      deref(r.Condition),
		"purchase_price": deref(r.PurchasePrice),
		"sale_price":     deref(r.SalePrice),
		"status":         deref(r.Status),
		"location":       deref(r.Location),
		"date_acquired":  deref(r.DateAcquired),
		"created_at":     r.CreatedAt,
	}
}

type ServiceRow struct {
	ID           string        `json:"id"`
	DealershipID string        `json:"dealership_id"`
	JobNumber    *string       `json:"job_number"`
	ServiceType  *string       `json:"service_type"`
	Status       *string       `json:"status"`
	TotalAmount  *float64      `json:"total_amount"`
	ScheduledAt  *time.Time    `json:"scheduled_at"`
	CompletedAt  *time.Time    `json:"completed_at"`
	Customer     *CustomerName `json:"customers"`
	Vehicle      *VehicleRef   `json:"vehicles"`
}

func (ServiceRow) Kind() Kind { return KindService }

func (r ServiceRow) Fields() map[string]any {
	return map[string]any{
		"id":            r.ID,
		"dealership_id": r.DealershipID,
		"job_number":    deref(r.JobNumber),
		"service_type":  deref(r.ServiceType),
		"status":        deref(r.Status),
		"total_amount":  deref(r.TotalAmount),
		"scheduled_at":  deref(r.ScheduledAt),
		"completed_at":  deref(r.CompletedAt),
		"customers":     ref(r.Customer),
		"vehicles":      ref(r.Vehicle),
	}
}

type FinancialRow struct {
	ID            string       `json:"id"`
	DealershipID  string       `json:"dealership_id"`
	InvoiceNumber *string      `json:"invoice_number"`
	InvoiceType   *string      `json:"invoice_type"`
	TotalAmount   *float64     `json:"total_amount"`
	AmountPaid    *float64     `json:"amount_paid"`
	AmountDue     *float64     `json:"amount_due"`
	Status        *string      `json:"status"`
	IssuedAt      *time.Time   `json:"issued_at"`
	Payments      []PaymentRef `json:"payments"`
}

func (FinancialRow) Kind() Kind { return KindFinancial }

func (r FinancialRow) Fields() map[string]any {
	payments := r.Payments
	if payments == nil {
		payments = []PaymentRef{}
	}
	return map[string]any{
		"id":             r.ID,
		"dealership_id":  r.DealershipID,
		"invoice_number": deref(r.InvoiceNumber),
		"invoice_type":   deref(r.InvoiceType),
		"total_amount":   deref(r.TotalAmount),
		"amount_paid":    deref(r.AmountPaid),
		"amount_due":     deref(r.AmountDue),
		"status":         deref(r.Status),
		"issued_at":      deref(r.IssuedAt),
		"payments":       payments,
	}
}

// deref turns a nil pointer into an untyped nil so map consumers can test v == nil.
func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func ref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return p
}
