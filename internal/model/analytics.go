package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// QRScan is append-only: rows are inserted by the public scan endpoint and
// never updated or deleted (audit trail for the analytics dashboard).
type QRScan struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	StoreID    uint  `gorm:"index;not null" json:"store_id"`
	SectionID  *uint `gorm:"index" json:"section_id,omitempty"`
	CustomerID *uint `gorm:"index" json:"customer_id,omitempty"`

	IPAddress string    `gorm:"size:45" json:"ip_address"`
	UserAgent string    `gorm:"size:512" json:"user_agent"`
	ScanTime  time.Time `gorm:"index;not null" json:"scan_time"`
}

type Feedback struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	StoreID    uint  `gorm:"index;not null" json:"store_id"`
	CustomerID *uint `gorm:"index" json:"customer_id,omitempty"`

	OverallRating        int `gorm:"not null" json:"overall_rating"`
	ProductQualityRating int `json:"product_quality_rating,omitempty"`
	PricingRating        int `json:"pricing_rating,omitempty"`
	ServiceRating        int `json:"service_rating,omitempty"`
	CleanlinessRating    int `json:"cleanliness_rating,omitempty"`

	Comments  string    `gorm:"type:text" json:"comments,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SalesDataRow is a per-day aggregate, one row per store per day. Derived
// analytics read it as-is; the only write paths are upload and manual entry.
type SalesDataRow struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	StoreID uint      `gorm:"uniqueIndex:idx_sales_store_date;not null" json:"store_id"`
	Date    time.Time `gorm:"type:date;uniqueIndex:idx_sales_store_date;not null" json:"date"`

	TotalSales    decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_sales"`
	TotalOrders   int             `json:"total_orders"`
	AvgOrderValue decimal.Decimal `gorm:"type:decimal(12,2)" json:"avg_order_value"`

	CreatedAt time.Time `json:"created_at"`
}
