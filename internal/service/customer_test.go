package service

import (
	"context"
	"shopease-api/internal/dto"
	"shopease-api/internal/metrics"
	"shopease-api/internal/model"
	"shopease-api/internal/repository"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCustomerService(t *testing.T) (CustomerService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Customer{}, &model.OTPVerification{}))

	svc := NewCustomerService(
		db,
		repository.NewCustomerRepository(db),
		repository.NewOTPRepository(db),
		testLogger(),
		metrics.Registry("test"),
	)
	return svc, db
}

func issuedCode(t *testing.T, db *gorm.DB, phone string) string {
	t.Helper()

	var otp model.OTPVerification
	err := db.Where("phone = ? AND used = ?", phone, false).
		Order("id DESC").
		First(&otp).Error
	require.NoError(t, err)
	return otp.Code
}

func TestVerifyOTPSingleUse(t *testing.T) {
	svc, db := newCustomerService(t)
	ctx := context.Background()

	customer, err := svc.Register(ctx, &dto.CustomerRegisterRequest{
		Name: "Asha", Email: "asha@example.com", Phone: "9990001111",
	})
	require.NoError(t, err)
	assert.False(t, customer.Verified)

	code := issuedCode(t, db, "9990001111")

	verified, err := svc.VerifyOTP(ctx, "9990001111", code)
	require.NoError(t, err)
	assert.True(t, verified.Verified)

	// spent codes never verify again
	_, err = svc.VerifyOTP(ctx, "9990001111", code)
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyOTPExpired(t *testing.T) {
	svc, db := newCustomerService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Customer{
		Name: "Ravi", Phone: "8880002222",
	}).Error)
	require.NoError(t, db.Create(&model.OTPVerification{
		Phone:     "8880002222",
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}).Error)

	_, err := svc.VerifyOTP(ctx, "8880002222", "123456")
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	svc, _ := newCustomerService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.CustomerRegisterRequest{
		Name: "Mina", Phone: "7770003333",
	})
	require.NoError(t, err)

	_, err = svc.VerifyOTP(ctx, "7770003333", "000000")
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestResendOTPInvalidatesOldCode(t *testing.T) {
	svc, db := newCustomerService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.CustomerRegisterRequest{
		Name: "Dev", Phone: "6660004444",
	})
	require.NoError(t, err)
	oldCode := issuedCode(t, db, "6660004444")

	require.NoError(t, svc.ResendOTP(ctx, "6660004444"))
	newCode := issuedCode(t, db, "6660004444")

	if oldCode != newCode {
		_, err = svc.VerifyOTP(ctx, "6660004444", oldCode)
		assert.ErrorIs(t, err, ErrInvalidOTP)
	}

	verified, err := svc.VerifyOTP(ctx, "6660004444", newCode)
	require.NoError(t, err)
	assert.True(t, verified.Verified)
}

func TestResendOTPUnknownCustomer(t *testing.T) {
	svc, _ := newCustomerService(t)

	err := svc.ResendOTP(context.Background(), "0000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}
