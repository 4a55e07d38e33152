package repository

import (
	"shopease-api/internal/model"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&model.Store{},
		&model.StoreSection{},
		&model.Offer{},
		&model.Customer{},
		&model.OTPVerification{},
		&model.QRScan{},
		&model.Feedback{},
		&model.SalesDataRow{},
		&model.Sale{},
		&model.SaleItem{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func seedStore(t *testing.T, db *gorm.DB, email string) *model.Store {
	t.Helper()

	store := &model.Store{
		Name:         "Test Store",
		Email:        email,
		PasswordHash: "x",
	}
	if err := db.Create(store).Error; err != nil {
		t.Fatalf("seed store: %v", err)
	}

	return store
}
