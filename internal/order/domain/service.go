package domain

import (
	"context"
	"errors"
	"fmt"
)

type CreateOrderRequest struct {
	CustomerName  string
	CustomerPhone string
}

type UpdateStatusRequest struct {
	OrderID int64
	Status  Status
}

type RecordPrepaymentRequest struct {
	OrderID int64
	Amount  float64
	Method  string
}

type AddItemRequest struct {
	OrderID int64
	Type    string
	Params  ItemParams
	Price   float64
}

type Service interface {
	Create(ctx context.Context, req CreateOrderRequest) (Order, error)
	List(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (Order, error)
	RecordPrepayment(ctx context.Context, req RecordPrepaymentRequest) (Order, error)
	Delete(ctx context.Context, id int64) error

	// AddItem is the transactional core: it resolves the preset's material
	// requirements, deducts stock and inserts the item as one atomic unit.
	AddItem(ctx context.Context, req AddItemRequest) (Item, error)
	DeleteItem(ctx context.Context, orderID, itemID int64) error
}

var (
	ErrInvalidID          = errors.New("invalid_id")
	ErrInvalidType        = errors.New("invalid_type")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrInvalidPrice       = errors.New("invalid_price")
	ErrInvalidStatus      = errors.New("invalid_status")
	ErrInvalidPrepayment  = errors.New("invalid_prepayment")
	ErrIllegalTransition  = errors.New("illegal_status_transition")
	ErrNotFound           = errors.New("not_found")
	ErrItemNotFound       = errors.New("item_not_found")
)

// InsufficientStockError rejects an item addition that would drive a
// material's quantity negative. It identifies the first material that fell
// short, in requirement order.
type InsufficientStockError struct {
	MaterialID int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for material %d", e.MaterialID)
}
