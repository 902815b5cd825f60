package domain

import (
	"context"
	"errors"
)

type UpsertMaterialRequest struct {
	Name     string
	Unit     string
	Quantity float64
}

type Service interface {
	List(ctx context.Context) ([]Material, error)
	Upsert(ctx context.Context, req UpsertMaterialRequest) (Material, error)
	Delete(ctx context.Context, id int64) error
}

var (
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidUnit     = errors.New("invalid_unit")
	ErrInvalidQuantity = errors.New("invalid_quantity")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
	ErrDuplicateName   = errors.New("duplicate_name")
)
