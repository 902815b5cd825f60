package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, order *Order) error
	UpdateNumber(ctx context.Context, db *gorm.DB, id int64, number string) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Order, error)
	List(ctx context.Context, db *gorm.DB) ([]*Order, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id int64, status Status) error
	UpdatePrepayment(ctx context.Context, db *gorm.DB, id int64, amount float64, method string) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)

	InsertItem(ctx context.Context, db *gorm.DB, item *Item) error
	DeleteItem(ctx context.Context, db *gorm.DB, orderID, itemID int64) (int64, error)
}
