package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/inkwell-labs/printdesk/internal/config"
	materialdomain "github.com/inkwell-labs/printdesk/internal/material/domain"
	materialrepo "github.com/inkwell-labs/printdesk/internal/material/repository"
	materialservice "github.com/inkwell-labs/printdesk/internal/material/service"
	orderdomain "github.com/inkwell-labs/printdesk/internal/order/domain"
	orderrepo "github.com/inkwell-labs/printdesk/internal/order/repository"
	orderservice "github.com/inkwell-labs/printdesk/internal/order/service"
	presetdomain "github.com/inkwell-labs/printdesk/internal/preset/domain"
	presetrepo "github.com/inkwell-labs/printdesk/internal/preset/repository"
	presetservice "github.com/inkwell-labs/printdesk/internal/preset/service"
	reportdomain "github.com/inkwell-labs/printdesk/internal/report/domain"
	reportrepo "github.com/inkwell-labs/printdesk/internal/report/repository"
	reportservice "github.com/inkwell-labs/printdesk/internal/report/service"
)

func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, conn.AutoMigrate(
		&orderdomain.Order{},
		&orderdomain.Item{},
		&materialdomain.Material{},
		&presetdomain.ProductMaterialRule{},
		&reportdomain.DailyReport{},
	))

	log := zap.NewNop()
	materialRepo := materialrepo.Provide()
	presetRepo := presetrepo.Provide()

	catalog, err := config.NewPresetCatalogHolder()
	require.NoError(t, err)

	r := gin.New()
	r.Use(ErrorHandlingMiddleware())

	srv := NewServer(ServerParams{
		Gin: r,
		Cfg: config.Config{},
		DB:  conn,
		OrderSvc: orderservice.New(orderservice.Params{
			DB:        conn,
			Log:       log,
			Repo:      orderrepo.Provide(),
			Materials: materialRepo,
			Presets:   presetRepo,
		}),
		MaterialSvc: materialservice.New(materialservice.Params{
			DB:   conn,
			Log:  log,
			Repo: materialRepo,
		}),
		PresetSvc: presetservice.New(presetservice.Params{
			DB:   conn,
			Log:  log,
			Repo: presetRepo,
		}),
		ReportSvc: reportservice.New(reportservice.Params{
			DB:   conn,
			Log:  log,
			Repo: reportrepo.Provide(),
		}),
		Catalog: catalog,
	})
	return srv, conn
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/orders", map[string]any{"customerName": "Ada"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	assert.Equal(t, "ORD-0001", created["number"])
	assert.Equal(t, []any{}, created["items"])
	orderID := int64(created["id"].(float64))

	rec = doJSON(t, srv, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodPut, fmt.Sprintf("/orders/%d/status", orderID), map[string]any{"status": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/orders/%d/prepayment", orderID), map[string]any{"amount": 50, "method": "cash"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(50), decodeBody(t, rec)["prepaymentAmount"])

	rec = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/orders/%d", orderID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/orders/%d", orderID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decodeBody(t, rec)["message"])
}

func TestCreateOrder_EmptyBody(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/orders", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/orders", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	orderID := int64(decodeBody(t, rec)["id"].(float64))

	rec = doJSON(t, srv, http.MethodPut, fmt.Sprintf("/orders/%d/status", orderID), map[string]any{"status": 5})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "illegal status transition", decodeBody(t, rec)["message"])

	rec = doJSON(t, srv, http.MethodPut, "/orders/abc/status", map[string]any{"status": 2})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddItem_InsufficientStockOverHTTP(t *testing.T) {
	srv, conn := newTestServer(t)

	material := materialdomain.Material{Name: "vinyl", Unit: "m2", Quantity: 1}
	require.NoError(t, conn.Create(&material).Error)
	rule := presetdomain.ProductMaterialRule{
		PresetCategory:    "banners",
		PresetDescription: "2x1m",
		MaterialID:        material.ID,
		QtyPerItem:        2,
	}
	require.NoError(t, conn.Create(&rule).Error)

	rec := doJSON(t, srv, http.MethodPost, "/orders", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	orderID := int64(decodeBody(t, rec)["id"].(float64))

	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/orders/%d/items", orderID), map[string]any{
		"type":   "banners",
		"params": map[string]any{"description": "2x1m"},
		"price":  80,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, fmt.Sprintf("insufficient stock for material %d", material.ID), decodeBody(t, rec)["message"])
}

func TestAddItem_ComponentOverridesOverHTTP(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/orders", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	orderID := int64(decodeBody(t, rec)["id"].(float64))

	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/orders/%d/items", orderID), map[string]any{
		"type": "business_cards",
		"params": map[string]any{
			"description": "premium laminated",
			"paper":       "matte",
			"sides":       2,
		},
		"price": 40,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	item := decodeBody(t, rec)
	params := item["params"].(map[string]any)
	assert.Equal(t, "premium laminated", params["description"])
	components := params["components"].(map[string]any)
	assert.Equal(t, "matte", components["paper"])
	assert.Equal(t, float64(2), components["sides"])
}

func TestMaterialEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/materials", map[string]any{"name": "paper", "unit": "sheet", "quantity": 100})
	require.Equal(t, http.StatusCreated, rec.Code)
	materialID := int64(decodeBody(t, rec)["id"].(float64))

	rec = doJSON(t, srv, http.MethodGet, "/materials", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/materials", map[string]any{"name": " ", "unit": "sheet", "quantity": 1})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/materials/%d", materialID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/materials/%d", materialID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductMaterialEndpoints(t *testing.T) {
	srv, conn := newTestServer(t)

	material := materialdomain.Material{Name: "paper", Unit: "sheet", Quantity: 100}
	require.NoError(t, conn.Create(&material).Error)

	rec := doJSON(t, srv, http.MethodPost, "/product-materials", map[string]any{
		"presetCategory":    "flyers",
		"presetDescription": "A5",
		"materials": []map[string]any{
			{"materialId": material.ID, "qtyPerItem": 0.5},
		},
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/product-materials/flyers/A5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var views []presetdomain.MappingView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, material.ID, views[0].MaterialID)

	rec = doJSON(t, srv, http.MethodPost, "/product-materials", map[string]any{
		"presetCategory":    "flyers",
		"presetDescription": "A5",
		"materials": []map[string]any{
			{"materialId": material.ID + 99, "qtyPerItem": 1},
		},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unknown material in mapping", decodeBody(t, rec)["message"])
}

func TestPresetCatalogEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/presets", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var presets []config.Preset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &presets))
	assert.NotEmpty(t, presets)
}

func TestDailyReportEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPatch, "/daily/2026-08-30", map[string]any{"orders_count": 3})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, srv, http.MethodPut, "/daily/2026-08-30", map[string]any{"orders_count": 4, "total_revenue": 120.5})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodPatch, "/daily/2026-08-30", map[string]any{"total_revenue": 200})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(4), body["orders_count"])
	assert.Equal(t, float64(200), body["total_revenue"])

	rec = doJSON(t, srv, http.MethodPatch, "/daily/2026-08-30", map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "no fields provided", decodeBody(t, rec)["message"])

	rec = doJSON(t, srv, http.MethodGet, "/daily/2026-08-30", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/daily/not-a-date", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/daily-reports", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
