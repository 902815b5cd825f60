package report

import (
	"github.com/inkwell-labs/printdesk/internal/report/repository"
	"github.com/inkwell-labs/printdesk/internal/report/service"
	"go.uber.org/fx"
)

var Module = fx.Module("report.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
