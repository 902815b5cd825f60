package domain

import "time"

// DailyReport aggregates order count and revenue for one calendar date.
// ReportDate is stored as a plain "YYYY-MM-DD" key so the uniqueness
// constraint behaves identically on every dialect.
type DailyReport struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	ReportDate   string    `gorm:"column:report_date;size:10;not null;uniqueIndex" json:"report_date"`
	OrdersCount  int       `gorm:"not null;default:0" json:"orders_count"`
	TotalRevenue float64   `gorm:"not null;default:0" json:"total_revenue"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (DailyReport) TableName() string {
	return "daily_reports"
}
