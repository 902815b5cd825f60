package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/inkwell-labs/printdesk/internal/material/domain"
	materialrepo "github.com/inkwell-labs/printdesk/internal/material/repository"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, conn.AutoMigrate(&domain.Material{}))

	return New(Params{
		DB:   conn,
		Log:  zap.NewNop(),
		Repo: materialrepo.Provide(),
	})
}

func TestUpsert_CreatesThenOverwritesByName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Upsert(ctx, domain.UpsertMaterialRequest{Name: "paper", Unit: "sheet", Quantity: 100})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// Same name updates unit and quantity in place.
	updated, err := svc.Upsert(ctx, domain.UpsertMaterialRequest{Name: "paper", Unit: "ream", Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "ream", updated.Unit)
	assert.Equal(t, float64(5), updated.Quantity)

	materials, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, materials, 1)
}

func TestUpsert_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, domain.UpsertMaterialRequest{Name: " ", Unit: "sheet", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Upsert(ctx, domain.UpsertMaterialRequest{Name: "paper", Unit: "", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidUnit)

	_, err = svc.Upsert(ctx, domain.UpsertMaterialRequest{Name: "paper", Unit: "sheet", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Upsert(ctx, domain.UpsertMaterialRequest{Name: "paper", Unit: "sheet", Quantity: 100})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 0), domain.ErrInvalidID)

	materials, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, materials)
}
