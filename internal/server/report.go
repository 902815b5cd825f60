package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	reportdomain "github.com/inkwell-labs/printdesk/internal/report/domain"
)

type patchReportRequest struct {
	OrdersCount  *int     `json:"orders_count"`
	TotalRevenue *float64 `json:"total_revenue"`
}

type upsertReportRequest struct {
	OrdersCount  int     `json:"orders_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

func (s *Server) ListDailyReports(c *gin.Context) {
	resp, err := s.reportSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetDailyReport(c *gin.Context) {
	resp, err := s.reportSvc.GetByDate(c.Request.Context(), strings.TrimSpace(c.Param("date")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) PatchDailyReport(c *gin.Context) {
	var req patchReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.reportSvc.Patch(c.Request.Context(), reportdomain.PatchReportRequest{
		Date:         strings.TrimSpace(c.Param("date")),
		OrdersCount:  req.OrdersCount,
		TotalRevenue: req.TotalRevenue,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) UpsertDailyReport(c *gin.Context) {
	var req upsertReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.reportSvc.Upsert(c.Request.Context(), reportdomain.UpsertReportRequest{
		Date:         strings.TrimSpace(c.Param("date")),
		OrdersCount:  req.OrdersCount,
		TotalRevenue: req.TotalRevenue,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
