package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	materialdomain "github.com/inkwell-labs/printdesk/internal/material/domain"
	"github.com/inkwell-labs/printdesk/internal/order/domain"
	presetdomain "github.com/inkwell-labs/printdesk/internal/preset/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Repo      domain.Repository
	Materials materialdomain.Repository
	Presets   presetdomain.Repository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	repo      domain.Repository
	materials materialdomain.Repository
	presets   presetdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("order.service"),
		repo:      p.Repo,
		materials: p.Materials,
		presets:   p.Presets,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	order := domain.Order{
		Status:        domain.StatusNew,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		CreatedAt:     time.Now().UTC(),
	}

	// The number derives from the row id, so it is written in a second
	// statement once the insert has assigned one.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Insert(ctx, tx, &order); err != nil {
			return err
		}
		order.Number = fmt.Sprintf("ORD-%04d", order.ID)
		return s.repo.UpdateNumber(ctx, tx, order.ID, order.Number)
	})
	if err != nil {
		return domain.Order{}, err
	}

	order.Items = []domain.Item{}
	s.log.Info("order created", zap.Int64("order_id", order.ID), zap.String("number", order.Number))
	return order, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if item.Items == nil {
			item.Items = []domain.Item{}
		}
		orders = append(orders, *item)
	}
	return orders, nil
}

func (s *Service) UpdateStatus(ctx context.Context, req domain.UpdateStatusRequest) (domain.Order, error) {
	if req.OrderID <= 0 {
		return domain.Order{}, domain.ErrInvalidID
	}
	if !req.Status.Valid() {
		return domain.Order{}, domain.ErrInvalidStatus
	}

	var out domain.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := s.repo.FindByID(ctx, tx, req.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if !order.Status.CanTransitionTo(req.Status) {
			return domain.ErrIllegalTransition
		}
		if err := s.repo.UpdateStatus(ctx, tx, order.ID, req.Status); err != nil {
			return err
		}
		order.Status = req.Status
		out = *order
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	if out.Items == nil {
		out.Items = []domain.Item{}
	}
	s.log.Info("order status updated",
		zap.Int64("order_id", out.ID),
		zap.String("status", out.Status.String()),
	)
	return out, nil
}

func (s *Service) RecordPrepayment(ctx context.Context, req domain.RecordPrepaymentRequest) (domain.Order, error) {
	if req.OrderID <= 0 {
		return domain.Order{}, domain.ErrInvalidID
	}
	if req.Amount < 0 {
		return domain.Order{}, domain.ErrInvalidPrepayment
	}
	method := strings.TrimSpace(req.Method)

	var out domain.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := s.repo.FindByID(ctx, tx, req.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if err := s.repo.UpdatePrepayment(ctx, tx, order.ID, req.Amount, method); err != nil {
			return err
		}
		order.PrepaymentAmount = req.Amount
		order.PrepaymentMethod = method
		out = *order
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	if out.Items == nil {
		out.Items = []domain.Item{}
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

	s.log.Info("order deleted", zap.Int64("order_id", id))
	return nil
}

// AddItem resolves the preset's material requirements, verifies and deducts
// stock, and inserts the item, all inside one transaction. Stock is never
// decremented unless the item insert also commits, and vice versa.
func (s *Service) AddItem(ctx context.Context, req domain.AddItemRequest) (domain.Item, error) {
	if req.OrderID <= 0 {
		return domain.Item{}, domain.ErrInvalidID
	}
	itemType := strings.TrimSpace(req.Type)
	if itemType == "" {
		return domain.Item{}, domain.ErrInvalidType
	}
	description := strings.TrimSpace(req.Params.Description)
	if description == "" {
		return domain.Item{}, domain.ErrInvalidDescription
	}
	if req.Price < 0 {
		return domain.Item{}, domain.ErrInvalidPrice
	}

	var created domain.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := s.repo.FindByID(ctx, tx, req.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}

		// No rule set for the preset means the item consumes nothing.
		requirements, err := s.presets.RequirementsFor(ctx, tx, itemType, description)
		if err != nil {
			return err
		}

		for _, requirement := range requirements {
			// The read above can be stale under concurrency; the conditional
			// update in Deduct is what actually guards against overselling.
			// Checking the fetched value first keeps the failing material
			// deterministic (first shortfall in requirement order).
			if requirement.Available < requirement.Required {
				return &domain.InsufficientStockError{MaterialID: requirement.MaterialID}
			}
			ok, err := s.materials.Deduct(ctx, tx, requirement.MaterialID, requirement.Required)
			if err != nil {
				return err
			}
			if !ok {
				return &domain.InsufficientStockError{MaterialID: requirement.MaterialID}
			}
		}

		item := domain.Item{
			OrderID: order.ID,
			Type:    itemType,
			Params: domain.ItemParams{
				Description: description,
				Components:  req.Params.Components,
			},
			Price: req.Price,
		}
		if err := s.repo.InsertItem(ctx, tx, &item); err != nil {
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		return domain.Item{}, err
	}

	s.log.Info("item added",
		zap.Int64("order_id", created.OrderID),
		zap.Int64("item_id", created.ID),
		zap.String("type", created.Type),
	)
	return created, nil
}

func (s *Service) DeleteItem(ctx context.Context, orderID, itemID int64) error {
	if orderID <= 0 || itemID <= 0 {
		return domain.ErrInvalidID
	}

	affected, err := s.repo.DeleteItem(ctx, s.db, orderID, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
