package domain

import (
	"context"
	"errors"
)

type PatchReportRequest struct {
	Date         string
	OrdersCount  *int
	TotalRevenue *float64
}

type UpsertReportRequest struct {
	Date         string
	OrdersCount  int
	TotalRevenue float64
}

type Service interface {
	List(ctx context.Context) ([]DailyReport, error)
	GetByDate(ctx context.Context, date string) (DailyReport, error)

	// Patch updates only the provided fields of an existing row and always
	// refreshes updated_at. It never creates rows: patching an unknown date
	// fails with ErrNotFound.
	Patch(ctx context.Context, req PatchReportRequest) (DailyReport, error)

	// Upsert idempotently creates or overwrites the row for a date key.
	Upsert(ctx context.Context, req UpsertReportRequest) (DailyReport, error)
}

var (
	ErrInvalidDate      = errors.New("invalid_date")
	ErrInvalidCount     = errors.New("invalid_orders_count")
	ErrInvalidRevenue   = errors.New("invalid_total_revenue")
	ErrNoFieldsProvided = errors.New("no_fields_provided")
	ErrNotFound         = errors.New("not_found")
)
