package repository

import (
	"context"
	"errors"

	"github.com/inkwell-labs/printdesk/internal/order/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	return db.WithContext(ctx).Omit("Items").Create(order).Error
}

func (r *repo) UpdateNumber(ctx context.Context, db *gorm.DB, id int64, number string) error {
	return db.WithContext(ctx).Exec(
		`UPDATE orders SET number = ? WHERE id = ?`,
		number,
		id,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Order, error) {
	var order domain.Order
	err := db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Order, error) {
	var orders []*domain.Order
	err := db.WithContext(ctx).
		Model(&domain.Order{}).
		Preload("Items").
		Order("created_at desc, id desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id int64, status domain.Status) error {
	return db.WithContext(ctx).Exec(
		`UPDATE orders SET status = ? WHERE id = ?`,
		status,
		id,
	).Error
}

func (r *repo) UpdatePrepayment(ctx context.Context, db *gorm.DB, id int64, amount float64, method string) error {
	return db.WithContext(ctx).Exec(
		`UPDATE orders SET prepayment_amount = ?, prepayment_method = ? WHERE id = ?`,
		amount,
		method,
		id,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	res := db.WithContext(ctx).Exec(`DELETE FROM orders WHERE id = ?`, id)
	return res.RowsAffected, res.Error
}

func (r *repo) InsertItem(ctx context.Context, db *gorm.DB, item *domain.Item) error {
	return db.WithContext(ctx).Create(item).Error
}

func (r *repo) DeleteItem(ctx context.Context, db *gorm.DB, orderID, itemID int64) (int64, error) {
	res := db.WithContext(ctx).Exec(
		`DELETE FROM items WHERE id = ? AND order_id = ?`,
		itemID,
		orderID,
	)
	return res.RowsAffected, res.Error
}
