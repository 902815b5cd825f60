package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context, db *gorm.DB) ([]*Material, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Material, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*Material, error)
	Insert(ctx context.Context, db *gorm.DB, material *Material) error
	Update(ctx context.Context, db *gorm.DB, material *Material) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)

	// Deduct atomically decrements quantity by qty when at least qty is on
	// hand. Returns false when stock is insufficient (no row updated).
	Deduct(ctx context.Context, db *gorm.DB, id int64, qty float64) (bool, error)
}
