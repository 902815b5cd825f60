package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	orderdomain "github.com/inkwell-labs/printdesk/internal/order/domain"
)

type createOrderRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}

func (s *Server) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	// Customer details are optional; an empty body creates a bare order.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.orderSvc.Create(c.Request.Context(), orderdomain.CreateOrderRequest{
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) ListOrders(c *gin.Context) {
	resp, err := s.orderSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

type updateStatusRequest struct {
	Status int `json:"status"`
}

func (s *Server) UpdateOrderStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, orderdomain.ErrInvalidID)
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.orderSvc.UpdateStatus(c.Request.Context(), orderdomain.UpdateStatusRequest{
		OrderID: id,
		Status:  orderdomain.Status(req.Status),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

type recordPrepaymentRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

func (s *Server) RecordPrepayment(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, orderdomain.ErrInvalidID)
		return
	}

	var req recordPrepaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.orderSvc.RecordPrepayment(c.Request.Context(), orderdomain.RecordPrepaymentRequest{
		OrderID: id,
		Amount:  req.Amount,
		Method:  strings.TrimSpace(req.Method),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

type addItemRequest struct {
	Type   string         `json:"type"`
	Params map[string]any `json:"params"`
	Price  float64        `json:"price"`
}

func (s *Server) AddOrderItem(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, orderdomain.ErrInvalidID)
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.orderSvc.AddItem(c.Request.Context(), orderdomain.AddItemRequest{
		OrderID: id,
		Type:    strings.TrimSpace(req.Type),
		Params:  itemParamsFromPayload(req.Params),
		Price:   req.Price,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) DeleteOrderItem(c *gin.Context) {
	orderID, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, orderdomain.ErrInvalidID)
		return
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		AbortWithError(c, orderdomain.ErrInvalidID)
		return
	}

	if err := s.orderSvc.DeleteItem(c.Request.Context(), orderID, itemID); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) DeleteOrder(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, orderdomain.ErrInvalidID)
		return
	}

	if err := s.orderSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// itemParamsFromPayload splits the wire params object into the description
// and the remaining preset component overrides.
func itemParamsFromPayload(raw map[string]any) orderdomain.ItemParams {
	params := orderdomain.ItemParams{}
	if raw == nil {
		return params
	}

	if description, ok := raw["description"].(string); ok {
		params.Description = description
	}
	components := datatypes.JSONMap{}
	for key, value := range raw {
		if key == "description" {
			continue
		}
		components[key] = value
	}
	if len(components) > 0 {
		params.Components = components
	}
	return params
}

func pathID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
}
