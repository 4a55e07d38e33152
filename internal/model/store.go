package model

import "time"

type Store struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:128;not null"`
	Email        string `gorm:"size:128;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:128;not null" json:"-"`
	Address      string `gorm:"size:256"`
	Phone        string `gorm:"size:20"`
	// base64 data URL of the store's main QR code
	QRImage   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type StoreSection struct {
	ID      uint   `gorm:"primaryKey"`
	StoreID uint   `gorm:"index;not null"`
	Name    string `gorm:"size:128;not null"`
	QRImage string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
