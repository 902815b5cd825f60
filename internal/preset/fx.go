package preset

import (
	"github.com/inkwell-labs/printdesk/internal/preset/repository"
	"github.com/inkwell-labs/printdesk/internal/preset/service"
	"go.uber.org/fx"
)

var Module = fx.Module("preset.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
