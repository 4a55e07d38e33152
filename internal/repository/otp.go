package repository

import (
	"context"
	"shopease-api/internal/model"
	"time"

	"gorm.io/gorm"
)

type OTPRepository interface {
	Create(ctx context.Context, otp *model.OTPVerification) error
	FindValid(ctx context.Context, phone, code string, now time.Time) (*model.OTPVerification, error)
	MarkUsed(ctx context.Context, tx *gorm.DB, otpID uint) error
	InvalidateActive(ctx context.Context, phone string) error
}

type otpRepoImpl struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepoImpl{
		db: db,
	}
}

func (r *otpRepoImpl) Create(ctx context.Context, otp *model.OTPVerification) error {
	return r.db.WithContext(ctx).Create(otp).Error
}

// FindValid returns the most recent unused, unexpired code for the phone.
func (r *otpRepoImpl) FindValid(ctx context.Context, phone, code string, now time.Time) (*model.OTPVerification, error) {
	var otp model.OTPVerification
	err := r.db.WithContext(ctx).
		Where("phone = ? AND code = ?", phone, code).
		Where("used = ?", false).
		Where("expires_at > ?", now).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		return nil, err
	}

	return &otp, nil
}

func (r *otpRepoImpl) MarkUsed(ctx context.Context, tx *gorm.DB, otpID uint) error {
	result := tx.WithContext(ctx).
		Model(&model.OTPVerification{}).
		Where("id = ? AND used = ?", otpID, false).
		Update("used", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// InvalidateActive burns all outstanding codes for a phone before a resend.
func (r *otpRepoImpl) InvalidateActive(ctx context.Context, phone string) error {
	return r.db.WithContext(ctx).
		Model(&model.OTPVerification{}).
		Where("phone = ? AND used = ?", phone, false).
		Update("used", true).Error
}
