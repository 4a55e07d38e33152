package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sale struct {
	ID      string `gorm:"primaryKey;size:64;not null"` // uuid
	StoreID uint   `gorm:"index;not null"`

	CustomerName  string          `gorm:"size:128"`
	CustomerPhone string          `gorm:"size:20"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	PaymentMethod string          `gorm:"size:32"` // CASH, CARD, UPI
	PaymentStatus string          `gorm:"size:32;index;not null"`

	SaleTime  time.Time `gorm:"index"`
	CreatedAt time.Time
}

type SaleItem struct {
	ID uint `gorm:"primaryKey"`
	// FK -> sale.id
	SaleID string `gorm:"size:64;index;not null"`

	ProductName string          `gorm:"size:256;not null"`
	Quantity    int32           `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	CreatedAt time.Time
}
