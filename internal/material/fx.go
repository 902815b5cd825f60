package material

import (
	"github.com/inkwell-labs/printdesk/internal/material/repository"
	"github.com/inkwell-labs/printdesk/internal/material/service"
	"go.uber.org/fx"
)

var Module = fx.Module("material.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
