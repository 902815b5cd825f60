package repository

import (
	"context"

	"github.com/inkwell-labs/printdesk/internal/preset/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) DeleteForPreset(ctx context.Context, db *gorm.DB, category, description string) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM product_materials WHERE preset_category = ? AND preset_description = ?`,
		category,
		description,
	).Error
}

func (r *repo) InsertRules(ctx context.Context, db *gorm.DB, rules []*domain.ProductMaterialRule) error {
	if len(rules) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(rules).Error
}

func (r *repo) ViewForPreset(ctx context.Context, db *gorm.DB, category, description string) ([]domain.MappingView, error) {
	var views []domain.MappingView
	err := db.WithContext(ctx).Raw(
		`SELECT pm.material_id, m.name AS material_name, m.unit, pm.qty_per_item
		 FROM product_materials pm
		 JOIN materials m ON m.id = pm.material_id
		 WHERE pm.preset_category = ? AND pm.preset_description = ?
		 ORDER BY pm.id`,
		category,
		description,
	).Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *repo) RequirementsFor(ctx context.Context, db *gorm.DB, category, description string) ([]domain.Requirement, error) {
	var requirements []domain.Requirement
	err := db.WithContext(ctx).Raw(
		`SELECT pm.material_id, pm.qty_per_item AS required, m.quantity AS available
		 FROM product_materials pm
		 JOIN materials m ON m.id = pm.material_id
		 WHERE pm.preset_category = ? AND pm.preset_description = ?
		 ORDER BY pm.id`,
		category,
		description,
	).Scan(&requirements).Error
	if err != nil {
		return nil, err
	}
	return requirements, nil
}
