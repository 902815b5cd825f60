package repository

import (
	"context"

	"github.com/inkwell-labs/printdesk/internal/material/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Material, error) {
	var materials []*domain.Material
	err := db.WithContext(ctx).
		Model(&domain.Material{}).
		Order("name asc").
		Find(&materials).Error
	if err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Material, error) {
	var material domain.Material
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, unit, quantity FROM materials WHERE id = ?`,
		id,
	).Scan(&material).Error
	if err != nil {
		return nil, err
	}
	if material.ID == 0 {
		return nil, nil
	}
	return &material, nil
}

func (r *repo) FindByName(ctx context.Context, db *gorm.DB, name string) (*domain.Material, error) {
	var material domain.Material
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, unit, quantity FROM materials WHERE name = ?`,
		name,
	).Scan(&material).Error
	if err != nil {
		return nil, err
	}
	if material.ID == 0 {
		return nil, nil
	}
	return &material, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, material *domain.Material) error {
	return db.WithContext(ctx).Create(material).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, material *domain.Material) error {
	return db.WithContext(ctx).Exec(
		`UPDATE materials SET unit = ?, quantity = ? WHERE id = ?`,
		material.Unit,
		material.Quantity,
		material.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	res := db.WithContext(ctx).Exec(`DELETE FROM materials WHERE id = ?`, id)
	return res.RowsAffected, res.Error
}

// Deduct relies on the conditional update to make check-and-decrement atomic
// per material row; a concurrent deduction that would drive quantity negative
// simply matches zero rows.
func (r *repo) Deduct(ctx context.Context, db *gorm.DB, id int64, qty float64) (bool, error) {
	res := db.WithContext(ctx).Exec(
		`UPDATE materials SET quantity = quantity - ? WHERE id = ? AND quantity >= ?`,
		qty,
		id,
		qty,
	)
	return res.RowsAffected > 0, res.Error
}
