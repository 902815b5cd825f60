package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	DeleteForPreset(ctx context.Context, db *gorm.DB, category, description string) error
	InsertRules(ctx context.Context, db *gorm.DB, rules []*ProductMaterialRule) error
	ViewForPreset(ctx context.Context, db *gorm.DB, category, description string) ([]MappingView, error)

	// RequirementsFor joins the rule set for a preset against current material
	// quantities. The returned order is stable (rule insertion order) and is
	// the order the transaction engine checks and deducts in.
	RequirementsFor(ctx context.Context, db *gorm.DB, category, description string) ([]Requirement, error)
}
