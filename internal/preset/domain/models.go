package domain

import (
	materialdomain "github.com/inkwell-labs/printdesk/internal/material/domain"
)

// ProductMaterialRule declares how much of one material a single item of a
// preset consumes. The (category, description) pair keys the full rule set
// for a preset; the set is always replaced wholesale.
type ProductMaterialRule struct {
	ID                int64   `gorm:"primaryKey" json:"id"`
	PresetCategory    string  `gorm:"not null;index:idx_product_materials_preset,priority:1" json:"presetCategory"`
	PresetDescription string  `gorm:"not null;index:idx_product_materials_preset,priority:2" json:"presetDescription"`
	MaterialID        int64   `gorm:"not null;index" json:"materialId"`
	QtyPerItem        float64 `gorm:"not null" json:"qtyPerItem"`

	Material materialdomain.Material `gorm:"foreignKey:MaterialID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ProductMaterialRule) TableName() string {
	return "product_materials"
}

// MappingView is the display shape of one rule, joined against materials.
type MappingView struct {
	MaterialID   int64   `json:"materialId"`
	MaterialName string  `json:"materialName"`
	Unit         string  `json:"unit"`
	QtyPerItem   float64 `json:"qtyPerItem"`
}

// Requirement is one row of the consumption plan the order item transaction
// works from: how much a preset needs of a material and how much is on hand
// at read time.
type Requirement struct {
	MaterialID int64   `json:"materialId"`
	Required   float64 `json:"required"`
	Available  float64 `json:"available"`
}
