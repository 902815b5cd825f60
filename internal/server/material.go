package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	materialdomain "github.com/inkwell-labs/printdesk/internal/material/domain"
)

type upsertMaterialRequest struct {
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`
}

func (s *Server) ListMaterials(c *gin.Context) {
	resp, err := s.materialSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) UpsertMaterial(c *gin.Context) {
	var req upsertMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.materialSvc.Upsert(c.Request.Context(), materialdomain.UpsertMaterialRequest{
		Name:     strings.TrimSpace(req.Name),
		Unit:     strings.TrimSpace(req.Unit),
		Quantity: req.Quantity,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) DeleteMaterial(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, materialdomain.ErrInvalidID)
		return
	}

	if err := s.materialSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
