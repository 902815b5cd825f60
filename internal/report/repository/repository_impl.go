package repository

import (
	"context"

	"github.com/inkwell-labs/printdesk/internal/report/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.DailyReport, error) {
	var reports []*domain.DailyReport
	err := db.WithContext(ctx).
		Model(&domain.DailyReport{}).
		Order("report_date desc").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *repo) FindByDate(ctx context.Context, db *gorm.DB, date string) (*domain.DailyReport, error) {
	var report domain.DailyReport
	err := db.WithContext(ctx).Raw(
		`SELECT id, report_date, orders_count, total_revenue, created_at, updated_at
		 FROM daily_reports WHERE report_date = ?`,
		date,
	).Scan(&report).Error
	if err != nil {
		return nil, err
	}
	if report.ID == 0 {
		return nil, nil
	}
	return &report, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, date string, updates map[string]any) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.DailyReport{}).
		Where("report_date = ?", date).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, report *domain.DailyReport) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "report_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"orders_count",
				"total_revenue",
				"updated_at",
			}),
		}).
		Create(report).Error
}
