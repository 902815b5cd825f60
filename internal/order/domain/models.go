package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Order is an order header plus its line items. The shop-facing number is
// derived from the row id after insert ("ORD-%04d"), so it is assigned in a
// second statement once the id is known.
type Order struct {
	ID               int64     `gorm:"primaryKey" json:"id"`
	Number           string    `gorm:"uniqueIndex;size:32" json:"number"`
	Status           Status    `gorm:"not null;default:1" json:"status"`
	CustomerName     string    `json:"customerName,omitempty"`
	CustomerPhone    string    `json:"customerPhone,omitempty"`
	PrepaymentAmount float64   `json:"prepaymentAmount,omitempty"`
	PrepaymentMethod string    `json:"prepaymentMethod,omitempty"`
	Items            []Item    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt        time.Time `gorm:"not null" json:"createdAt"`
}

func (Order) TableName() string {
	return "orders"
}

// Item is a single line entry on an order, instantiated from a preset.
type Item struct {
	ID      int64      `gorm:"primaryKey" json:"id"`
	OrderID int64      `gorm:"not null;index" json:"orderId"`
	Type    string     `gorm:"not null" json:"type"`
	Params  ItemParams `gorm:"serializer:json" json:"params"`
	Price   float64    `gorm:"not null" json:"price"`
}

func (Item) TableName() string {
	return "items"
}

// ItemParams is the structured payload persisted as JSON on every item. It
// always round-trips through the store as structured data, never as an
// opaque string.
type ItemParams struct {
	Description string            `json:"description"`
	Components  datatypes.JSONMap `json:"components,omitempty"`
}
