package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/inkwell-labs/printdesk/internal/config"
	"github.com/inkwell-labs/printdesk/internal/material"
	materialdomain "github.com/inkwell-labs/printdesk/internal/material/domain"
	"github.com/inkwell-labs/printdesk/internal/observability"
	"github.com/inkwell-labs/printdesk/internal/order"
	orderdomain "github.com/inkwell-labs/printdesk/internal/order/domain"
	"github.com/inkwell-labs/printdesk/internal/preset"
	presetdomain "github.com/inkwell-labs/printdesk/internal/preset/domain"
	"github.com/inkwell-labs/printdesk/internal/report"
	reportdomain "github.com/inkwell-labs/printdesk/internal/report/domain"
)

var Module = fx.Module("http.server",
	observability.Module,
	material.Module,
	preset.Module,
	order.Module,
	report.Module,
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger, httpMetrics *observability.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(recoveryMiddleware(cfg))
	r.Use(observability.RequestLogMiddleware(log))
	r.Use(observability.MetricsMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	db          *gorm.DB
	orderSvc    orderdomain.Service
	materialSvc materialdomain.Service
	presetSvc   presetdomain.Service
	reportSvc   reportdomain.Service
	catalog     *config.PresetCatalogHolder
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	DB          *gorm.DB
	OrderSvc    orderdomain.Service
	MaterialSvc materialdomain.Service
	PresetSvc   presetdomain.Service
	ReportSvc   reportdomain.Service
	Catalog     *config.PresetCatalogHolder
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		db:          p.DB,
		orderSvc:    p.OrderSvc,
		materialSvc: p.MaterialSvc,
		presetSvc:   p.PresetSvc,
		reportSvc:   p.ReportSvc,
		catalog:     p.Catalog,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) registerAPIRoutes() {
	r := s.engine

	r.POST("/orders", s.CreateOrder)
	r.GET("/orders", s.ListOrders)
	r.DELETE("/orders/:id", s.DeleteOrder)
	r.PUT("/orders/:id/status", s.UpdateOrderStatus)
	r.POST("/orders/:id/prepayment", s.RecordPrepayment)
	r.POST("/orders/:id/items", s.AddOrderItem)
	r.DELETE("/orders/:id/items/:itemId", s.DeleteOrderItem)

	r.GET("/materials", s.ListMaterials)
	r.POST("/materials", s.UpsertMaterial)
	r.DELETE("/materials/:id", s.DeleteMaterial)

	r.GET("/presets", s.ListPresets)
	r.POST("/product-materials", s.ReplaceProductMaterials)
	r.GET("/product-materials/:category/:description", s.GetProductMaterials)

	r.GET("/daily-reports", s.ListDailyReports)
	r.GET("/daily/:date", s.GetDailyReport)
	r.PATCH("/daily/:date", s.PatchDailyReport)
	r.PUT("/daily/:date", s.UpsertDailyReport)
}
