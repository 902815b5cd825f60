package seed

import (
	"context"
	"errors"

	materialdomain "github.com/inkwell-labs/printdesk/internal/material/domain"
	presetdomain "github.com/inkwell-labs/printdesk/internal/preset/domain"
	"gorm.io/gorm"
)

// EnsureDemoInventory seeds a small material inventory and consumption rules
// for the default preset catalog. It is a no-op once any material exists, so
// restarts never reset operator-managed stock.
func EnsureDemoInventory(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&materialdomain.Material{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		materials := map[string]*materialdomain.Material{
			"cardstock 300g":  {Name: "cardstock 300g", Unit: "sheet", Quantity: 500},
			"paper A4 130g":   {Name: "paper A4 130g", Unit: "sheet", Quantity: 1000},
			"ink CMYK":        {Name: "ink CMYK", Unit: "ml", Quantity: 2000},
			"vinyl roll":      {Name: "vinyl roll", Unit: "m2", Quantity: 50},
			"lamination film": {Name: "lamination film", Unit: "m2", Quantity: 100},
		}
		for _, material := range materials {
			if err := tx.Create(material).Error; err != nil {
				return err
			}
		}

		rules := []presetdomain.ProductMaterialRule{
			{PresetCategory: "business_cards", PresetDescription: "standard 90x50", MaterialID: materials["cardstock 300g"].ID, QtyPerItem: 1},
			{PresetCategory: "business_cards", PresetDescription: "standard 90x50", MaterialID: materials["ink CMYK"].ID, QtyPerItem: 0.5},
			{PresetCategory: "business_cards", PresetDescription: "premium laminated", MaterialID: materials["cardstock 300g"].ID, QtyPerItem: 1},
			{PresetCategory: "business_cards", PresetDescription: "premium laminated", MaterialID: materials["lamination film"].ID, QtyPerItem: 0.01},
			{PresetCategory: "business_cards", PresetDescription: "premium laminated", MaterialID: materials["ink CMYK"].ID, QtyPerItem: 0.5},
			{PresetCategory: "flyers", PresetDescription: "A5 color", MaterialID: materials["paper A4 130g"].ID, QtyPerItem: 0.5},
			{PresetCategory: "flyers", PresetDescription: "A5 color", MaterialID: materials["ink CMYK"].ID, QtyPerItem: 1},
			{PresetCategory: "flyers", PresetDescription: "A4 color", MaterialID: materials["paper A4 130g"].ID, QtyPerItem: 1},
			{PresetCategory: "flyers", PresetDescription: "A4 color", MaterialID: materials["ink CMYK"].ID, QtyPerItem: 2},
			{PresetCategory: "banners", PresetDescription: "vinyl 2x1m", MaterialID: materials["vinyl roll"].ID, QtyPerItem: 2},
			{PresetCategory: "banners", PresetDescription: "vinyl 2x1m", MaterialID: materials["ink CMYK"].ID, QtyPerItem: 40},
		}
		for i := range rules {
			if err := tx.Create(&rules[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
