package order

import (
	"github.com/inkwell-labs/printdesk/internal/order/repository"
	"github.com/inkwell-labs/printdesk/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
