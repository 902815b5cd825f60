package main

import (
	"go.uber.org/fx"

	"github.com/inkwell-labs/printdesk/internal/config"
	"github.com/inkwell-labs/printdesk/internal/logger"
	"github.com/inkwell-labs/printdesk/internal/migration"
	"github.com/inkwell-labs/printdesk/internal/server"
	"github.com/inkwell-labs/printdesk/pkg/db"
)

func main() {
	fx.New(
		config.Module,
		logger.Module,
		db.Module,
		migration.Module,
		server.Module,
	).Run()
}
