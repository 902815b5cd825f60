package domain

// Material is a consumable inventory unit (paper, ink, vinyl) tracked by
// quantity-on-hand. Quantity is only ever decremented by the order item
// transaction and must never go negative.
type Material struct {
	ID       int64   `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"not null;uniqueIndex" json:"name"`
	Unit     string  `gorm:"not null" json:"unit"`
	Quantity float64 `gorm:"not null;default:0" json:"quantity"`
}

func (Material) TableName() string {
	return "materials"
}
