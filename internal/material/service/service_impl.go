package service

import (
	"context"
	"strings"

	"github.com/inkwell-labs/printdesk/internal/material/domain"
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
		log:  p.Log.Named("material.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Material, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	materials := make([]domain.Material, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		materials = append(materials, *item)
	}
	return materials, nil
}

// Upsert creates the material or, when one with the same name exists,
// overwrites its unit and quantity. A racing insert on the unique name index
// surfaces as ErrDuplicateName.
func (s *Service) Upsert(ctx context.Context, req domain.UpsertMaterialRequest) (domain.Material, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Material{}, domain.ErrInvalidName
	}
	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		return domain.Material{}, domain.ErrInvalidUnit
	}
	if req.Quantity < 0 {
		return domain.Material{}, domain.ErrInvalidQuantity
	}

	var out domain.Material
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByName(ctx, tx, name)
		if err != nil {
			return err
		}

		if existing != nil {
			existing.Unit = unit
			existing.Quantity = req.Quantity
			if err := s.repo.Update(ctx, tx, existing); err != nil {
				return err
			}
			out = *existing
			return nil
		}

		material := domain.Material{
			Name:     name,
			Unit:     unit,
			Quantity: req.Quantity,
		}
		if err := s.repo.Insert(ctx, tx, &material); err != nil {
			if db.IsDuplicateKeyErr(err) {
				return domain.ErrDuplicateName
			}
			return err
		}
		out = material
		return nil
	})
	if err != nil {
		return domain.Material{}, err
	}

	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}

	affected, err := s.repo.Delete(ctx, s.db, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	s.log.Info("material deleted", zap.Int64("material_id", id))
	return nil
}
