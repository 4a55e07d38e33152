package model

import "time"

type Customer struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:128"`
	Email    string `gorm:"size:128"`
	Phone    string `gorm:"size:20;uniqueIndex;not null"`
	Verified bool   `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OTPVerification is a single-use code. A code is spent the first time it
// verifies successfully; expired or used codes never verify again.
type OTPVerification struct {
	ID        uint   `gorm:"primaryKey"`
	Phone     string `gorm:"size:20;index;not null"`
	Code      string `gorm:"size:8;not null"`
	ExpiresAt time.Time
	Used      bool `gorm:"not null;default:false"`

	CreatedAt time.Time
}
