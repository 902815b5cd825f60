package domain

import (
	"context"
	"errors"
)

type MappingInput struct {
	MaterialID int64
	QtyPerItem float64
}

type ReplaceMappingRequest struct {
	PresetCategory    string
	PresetDescription string
	Materials         []MappingInput
}

type GetMappingRequest struct {
	PresetCategory    string
	PresetDescription string
}

type Service interface {
	// ReplaceForPreset swaps the entire rule set for a preset key in one
	// transaction; a failure rolls back to the previous set.
	ReplaceForPreset(ctx context.Context, req ReplaceMappingRequest) error
	GetForPreset(ctx context.Context, req GetMappingRequest) ([]MappingView, error)
}

var (
	ErrInvalidCategory    = errors.New("invalid_preset_category")
	ErrInvalidDescription = errors.New("invalid_preset_description")
	ErrInvalidMaterial    = errors.New("invalid_material")
	ErrInvalidQty         = errors.New("invalid_qty_per_item")
	ErrUnknownMaterial    = errors.New("unknown_material")
)
