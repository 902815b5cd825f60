package migration

import (
	"github.com/inkwell-labs/printdesk/internal/config"
	materialdomain "github.com/inkwell-labs/printdesk/internal/material/domain"
	orderdomain "github.com/inkwell-labs/printdesk/internal/order/domain"
	presetdomain "github.com/inkwell-labs/printdesk/internal/preset/domain"
	reportdomain "github.com/inkwell-labs/printdesk/internal/report/domain"
	"github.com/inkwell-labs/printdesk/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// mysql and sqlite are dev/test conveniences; the versioned SQL
			// migrations target postgres only.
			if err := conn.AutoMigrate(
				&orderdomain.Order{},
				&orderdomain.Item{},
				&materialdomain.Material{},
				&presetdomain.ProductMaterialRule{},
				&reportdomain.DailyReport{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedDemoData {
			return seed.EnsureDemoInventory(conn)
		}
		return nil
	}),
)
