package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OfferStatus string

const (
	OfferActive   OfferStatus = "active"
	OfferInactive OfferStatus = "inactive"
	OfferDeleted  OfferStatus = "deleted"
)

type Offer struct {
	ID        uint  `gorm:"primaryKey"`
	StoreID   uint  `gorm:"index;not null"`
	SectionID *uint `gorm:"index"`

	Title           string          `gorm:"size:256;not null"`
	Description     string          `gorm:"type:text"`
	OriginalPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountedPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2)"`

	StartDate time.Time
	EndDate   time.Time

	Status OfferStatus `gorm:"size:16;index;not null;default:'active'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
