package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context, db *gorm.DB) ([]*DailyReport, error)
	FindByDate(ctx context.Context, db *gorm.DB, date string) (*DailyReport, error)
	Update(ctx context.Context, db *gorm.DB, date string, updates map[string]any) (int64, error)

	// Upsert inserts the report row or, when one already exists for the date
	// key, overwrites its counters and updated_at.
	Upsert(ctx context.Context, db *gorm.DB, report *DailyReport) error
}
