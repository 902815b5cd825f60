package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inkwell-labs/printdesk/internal/config"
	materialdomain "github.com/inkwell-labs/printdesk/internal/material/domain"
	orderdomain "github.com/inkwell-labs/printdesk/internal/order/domain"
	presetdomain "github.com/inkwell-labs/printdesk/internal/preset/domain"
	reportdomain "github.com/inkwell-labs/printdesk/internal/report/domain"
)

var ErrInvalidRequest = errors.New("invalid_request")

type errorResponse struct {
	Message string `json:"message"`
}

// ErrorHandlingMiddleware turns the last recorded error into a JSON body with
// a single human-readable message. Handlers record errors and abort; only
// this middleware writes error responses.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, payload)
	}
}

// recoveryMiddleware keeps panics from killing the process. Outside
// production the response carries the stack to speed up debugging.
func recoveryMiddleware(cfg config.Config) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		body := gin.H{"error": fmt.Sprint(recovered)}
		if !cfg.IsProduction() {
			body["stack"] = string(debug.Stack())
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorResponse) {
	var stockErr *orderdomain.InsufficientStockError
	if errors.As(err, &stockErr) {
		return http.StatusBadRequest, errorResponse{Message: stockErr.Error()}
	}

	switch {
	case isNotFoundError(err):
		return http.StatusNotFound, errorResponse{Message: "not found"}
	case errors.Is(err, materialdomain.ErrDuplicateName):
		return http.StatusConflict, errorResponse{Message: "material name already exists"}
	case isValidationError(err):
		return http.StatusBadRequest, errorResponse{Message: validationMessage(err)}
	default:
		return http.StatusInternalServerError, errorResponse{Message: "internal server error"}
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, orderdomain.ErrNotFound),
		errors.Is(err, orderdomain.ErrItemNotFound),
		errors.Is(err, materialdomain.ErrNotFound),
		errors.Is(err, reportdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, orderdomain.ErrInvalidID),
		errors.Is(err, orderdomain.ErrInvalidType),
		errors.Is(err, orderdomain.ErrInvalidDescription),
		errors.Is(err, orderdomain.ErrInvalidPrice),
		errors.Is(err, orderdomain.ErrInvalidStatus),
		errors.Is(err, orderdomain.ErrInvalidPrepayment),
		errors.Is(err, orderdomain.ErrIllegalTransition),
		errors.Is(err, materialdomain.ErrInvalidID),
		errors.Is(err, materialdomain.ErrInvalidName),
		errors.Is(err, materialdomain.ErrInvalidUnit),
		errors.Is(err, materialdomain.ErrInvalidQuantity),
		errors.Is(err, presetdomain.ErrInvalidCategory),
		errors.Is(err, presetdomain.ErrInvalidDescription),
		errors.Is(err, presetdomain.ErrInvalidMaterial),
		errors.Is(err, presetdomain.ErrInvalidQty),
		errors.Is(err, presetdomain.ErrUnknownMaterial),
		errors.Is(err, reportdomain.ErrInvalidDate),
		errors.Is(err, reportdomain.ErrInvalidCount),
		errors.Is(err, reportdomain.ErrInvalidRevenue),
		errors.Is(err, reportdomain.ErrNoFieldsProvided):
		return true
	default:
		return false
	}
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return "invalid request body"
	case errors.Is(err, orderdomain.ErrIllegalTransition):
		return "illegal status transition"
	case errors.Is(err, presetdomain.ErrUnknownMaterial):
		return "unknown material in mapping"
	case errors.Is(err, reportdomain.ErrNoFieldsProvided):
		return "no fields provided"
	default:
		// Domain sentinels use snake codes; render them readable.
		return strings.ReplaceAll(err.Error(), "_", " ")
	}
}
