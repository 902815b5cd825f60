package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	presetdomain "github.com/inkwell-labs/printdesk/internal/preset/domain"
)

type mappingInputPayload struct {
	MaterialID int64   `json:"materialId"`
	QtyPerItem float64 `json:"qtyPerItem"`
}

type replaceMappingRequest struct {
	PresetCategory    string                `json:"presetCategory"`
	PresetDescription string                `json:"presetDescription"`
	Materials         []mappingInputPayload `json:"materials"`
}

// ListPresets serves the hot-reloadable preset catalog.
func (s *Server) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Get())
}

func (s *Server) ReplaceProductMaterials(c *gin.Context) {
	var req replaceMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	materials := make([]presetdomain.MappingInput, 0, len(req.Materials))
	for _, m := range req.Materials {
		materials = append(materials, presetdomain.MappingInput{
			MaterialID: m.MaterialID,
			QtyPerItem: m.QtyPerItem,
		})
	}

	err := s.presetSvc.ReplaceForPreset(c.Request.Context(), presetdomain.ReplaceMappingRequest{
		PresetCategory:    strings.TrimSpace(req.PresetCategory),
		PresetDescription: strings.TrimSpace(req.PresetDescription),
		Materials:         materials,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) GetProductMaterials(c *gin.Context) {
	resp, err := s.presetSvc.GetForPreset(c.Request.Context(), presetdomain.GetMappingRequest{
		PresetCategory:    strings.TrimSpace(c.Param("category")),
		PresetDescription: strings.TrimSpace(c.Param("description")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
