package postgre

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"dealer-report-srv/internal/report"
)

type rowScanner func(rows *sql.Rows) (report.Row, error)

var scanners = map[report.Kind]rowScanner{
	report.KindSales:     scanSales,
	report.KindInventory: scanInventory,
	report.KindService:   scanService,
	report.KindFinancial: scanFinancial,
}

func scanSales(rows *sql.Rows) (report.Row, error) {
	var (
		r                  report.SalesRow
		customer, vehicles []byte
	)
	if err := rows.Scan(&r.ID, &r.DealershipID, &r.InvoiceNumber, &r.TotalAmount, &r.Status, &r.IssuedAt, &customer, &vehicles); err != nil {
		return nil, err
	}
	var err error
	if r.Customer, err = decodeRef[report.CustomerContact](customer); err != nil {
		return nil, fmt.Errorf("customers: %w", err)
	}
	if r.Vehicle, err = decodeRef[report.VehicleRef](vehicles); err != nil {
		return nil, fmt.Errorf("vehicles: %w", err)
	}
	return r, nil
}

func scanInventory(rows *sql.Rows) (report.Row, error) {
	var r report.InventoryRow
	err := rows.Scan(&r.ID, &r.DealershipID, &r.VIN, &r.Make, &r.Model, &r.Year, &r.Mileage, &r.Condition,
		&r.PurchasePrice, &r.SalePrice, &r.Status, &r.Location, &r.DateAcquired, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func scanService(rows *sql.Rows) (report.Row, error) {
	var (
		r                  report.ServiceRow
		customer, vehicles []byte
	)
	err := rows.Scan(&r.ID, &r.DealershipID, &r.JobNumber, &r.ServiceType, &r.Status, &r.TotalAmount,
		&r.ScheduledAt, &r.CompletedAt, &customer, &vehicles)
	if err != nil {
		return nil, err
	}
	if r.Customer, err = decodeRef[report.CustomerName](customer); err != nil {
		return nil, fmt.Errorf("customers: %w", err)
	}
	if r.Vehicle, err = decodeRef[report.VehicleRef](vehicles); err != nil {
		return nil, fmt.Errorf("vehicles: %w", err)
	}
	return r, nil
}

func scanFinancial(rows *sql.Rows) (report.Row, error) {
	var (
		r        report.FinancialRow
		payments []byte
	)
	err := rows.Scan(&r.ID, &r.DealershipID, &r.InvoiceNumber, &r.InvoiceType, &r.TotalAmount, &r.AmountPaid,
		&r.AmountDue, &r.Status, &r.IssuedAt, &payments)
	if err != nil {
		return nil, err
	}
	r.Payments = []report.PaymentRef{}
	if len(payments) > 0 {
		if err := json.Unmarshal(payments, &r.Payments); err != nil {
			return nil, fmt.Errorf("payments: %w", err)
		}
	}
	return r, nil
}

// decodeRef decodes a json_build_object column; SQL NULL and JSON null both yield nil.
func decodeRef[T any](b []byte) (*T, error) {
	if len(b) == 0 || string(b) == "null" {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
