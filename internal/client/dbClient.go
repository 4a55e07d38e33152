package client

import (
	"log"
	"shopease-api/internal/model"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func InitMysqlClient(databaseURL string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	// Connection pool (public scan endpoint is unauthenticated traffic)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
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
	); err != nil {
		log.Fatal(err)
	}

	return db
}
