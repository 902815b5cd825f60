package service

import (
	"context"
	"strings"
	"time"

	"github.com/inkwell-labs/printdesk/internal/report/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("report.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.DailyReport, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	reports := make([]domain.DailyReport, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		reports = append(reports, *item)
	}
	return reports, nil
}

func (s *Service) GetByDate(ctx context.Context, date string) (domain.DailyReport, error) {
	date, err := parseDate(date)
	if err != nil {
		return domain.DailyReport{}, err
	}

	report, err := s.repo.FindByDate(ctx, s.db, date)
	if err != nil {
		return domain.DailyReport{}, err
	}
	if report == nil {
		return domain.DailyReport{}, domain.ErrNotFound
	}
	return *report, nil
}

func (s *Service) Patch(ctx context.Context, req domain.PatchReportRequest) (domain.DailyReport, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return domain.DailyReport{}, err
	}
	if req.OrdersCount == nil && req.TotalRevenue == nil {
		return domain.DailyReport{}, domain.ErrNoFieldsProvided
	}
	if req.OrdersCount != nil && *req.OrdersCount < 0 {
		return domain.DailyReport{}, domain.ErrInvalidCount
	}
	if req.TotalRevenue != nil && *req.TotalRevenue < 0 {
		return domain.DailyReport{}, domain.ErrInvalidRevenue
	}

	updates := map[string]any{
		"updated_at": time.Now().UTC(),
	}
	if req.OrdersCount != nil {
		updates["orders_count"] = *req.OrdersCount
	}
	if req.TotalRevenue != nil {
		updates["total_revenue"] = *req.TotalRevenue
	}

	var out domain.DailyReport
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := s.repo.Update(ctx, tx, date, updates)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrNotFound
		}

		report, err := s.repo.FindByDate(ctx, tx, date)
		if err != nil {
			return err
		}
		if report == nil {
			return domain.ErrNotFound
		}
		out = *report
		return nil
	})
	if err != nil {
		return domain.DailyReport{}, err
	}

	return out, nil
}

func (s *Service) Upsert(ctx context.Context, req domain.UpsertReportRequest) (domain.DailyReport, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return domain.DailyReport{}, err
	}
	if req.OrdersCount < 0 {
		return domain.DailyReport{}, domain.ErrInvalidCount
	}
	if req.TotalRevenue < 0 {
		return domain.DailyReport{}, domain.ErrInvalidRevenue
	}

	now := time.Now().UTC()
	report := domain.DailyReport{
		ReportDate:   date,
		OrdersCount:  req.OrdersCount,
		TotalRevenue: req.TotalRevenue,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var out domain.DailyReport
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Upsert(ctx, tx, &report); err != nil {
			return err
		}
		stored, err := s.repo.FindByDate(ctx, tx, date)
		if err != nil {
			return err
		}
		if stored == nil {
			return domain.ErrNotFound
		}
		out = *stored
		return nil
	})
	if err != nil {
		return domain.DailyReport{}, err
	}

	s.log.Info("daily report upserted", zap.String("report_date", date))
	return out, nil
}

func parseDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return "", domain.ErrInvalidDate
	}
	return parsed.Format(dateLayout), nil
}
