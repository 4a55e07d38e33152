package repository

import (
	"context"
	"shopease-api/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository interface {
	UpsertByPhone(ctx context.Context, customer *model.Customer) error
	FindByID(ctx context.Context, customerID uint) (*model.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*model.Customer, error)
	MarkVerified(ctx context.Context, tx *gorm.DB, phone string) error
}

type customerRepoImpl struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepoImpl{
		db: db,
	}
}

func (r *customerRepoImpl) UpsertByPhone(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "phone"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"name":       customer.Name,
			"email":      customer.Email,
			"updated_at": time.Now(),
		}),
	}).Create(&customer).Error
}

func (r *customerRepoImpl) FindByID(ctx context.Context, customerID uint) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).
		Where("id = ?", customerID).
		First(&customer).Error
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (r *customerRepoImpl) FindByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&customer).Error
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (r *customerRepoImpl) MarkVerified(ctx context.Context, tx *gorm.DB, phone string) error {
	result := tx.WithContext(ctx).
		Model(&model.Customer{}).
		Where("phone = ?", phone).
		Updates(map[string]interface{}{
			"verified":   true,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
