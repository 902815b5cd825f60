package service

import (
	"context"
	"strings"

	"github.com/inkwell-labs/printdesk/internal/preset/domain"
	"github.com/inkwell-labs/printdesk/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

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
		log:  p.Log.Named("preset.service"),
		repo: p.Repo,
	}
}

func (s *Service) ReplaceForPreset(ctx context.Context, req domain.ReplaceMappingRequest) error {
	category := strings.TrimSpace(req.PresetCategory)
	if category == "" {
		return domain.ErrInvalidCategory
	}
	description := strings.TrimSpace(req.PresetDescription)
	if description == "" {
		return domain.ErrInvalidDescription
	}

	rules := make([]*domain.ProductMaterialRule, 0, len(req.Materials))
	for _, m := range req.Materials {
		if m.MaterialID <= 0 {
			return domain.ErrInvalidMaterial
		}
		if m.QtyPerItem <= 0 {
			return domain.ErrInvalidQty
		}
		rules = append(rules, &domain.ProductMaterialRule{
			PresetCategory:    category,
			PresetDescription: description,
			MaterialID:        m.MaterialID,
			QtyPerItem:        m.QtyPerItem,
		})
	}

	// Delete and reinsert inside one transaction so readers never observe a
	// half-replaced or empty rule set.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.DeleteForPreset(ctx, tx, category, description); err != nil {
			return err
		}
		if err := s.repo.InsertRules(ctx, tx, rules); err != nil {
			if db.IsForeignKeyErr(err) {
				return domain.ErrUnknownMaterial
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("preset mapping replaced",
		zap.String("preset_category", category),
		zap.String("preset_description", description),
		zap.Int("rules", len(rules)),
	)
	return nil
}

func (s *Service) GetForPreset(ctx context.Context, req domain.GetMappingRequest) ([]domain.MappingView, error) {
	category := strings.TrimSpace(req.PresetCategory)
	if category == "" {
		return nil, domain.ErrInvalidCategory
	}
	description := strings.TrimSpace(req.PresetDescription)
	if description == "" {
		return nil, domain.ErrInvalidDescription
	}

	views, err := s.repo.ViewForPreset(ctx, s.db, category, description)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []domain.MappingView{}
	}
	return views, nil
}
