package repository

import (
	"context"
	"shopease-api/internal/model"
	"time"

	"gorm.io/gorm"
)

type StoreRepository interface {
	Create(ctx context.Context, store *model.Store) error
	FindByID(ctx context.Context, storeID uint) (*model.Store, error)
	FindByEmail(ctx context.Context, email string) (*model.Store, error)
	Update(ctx context.Context, store *model.Store) error
	SaveQRImage(ctx context.Context, storeID uint, dataURL string) error
}

type storeRepoImpl struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepoImpl{
		db: db,
	}
}

func (r *storeRepoImpl) Create(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepoImpl) FindByID(ctx context.Context, storeID uint) (*model.Store, error) {
	var store model.Store
	err := r.db.WithContext(ctx).
		Where("id = ?", storeID).
		First(&store).Error
	if err != nil {
		return nil, err
	}

	return &store, nil
}

func (r *storeRepoImpl) FindByEmail(ctx context.Context, email string) (*model.Store, error) {
	var store model.Store
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&store).Error
	if err != nil {
		return nil, err
	}

	return &store, nil
}

func (r *storeRepoImpl) Update(ctx context.Context, store *model.Store) error {
	result := r.db.WithContext(ctx).
		Model(&model.Store{}).
		Where("id = ?", store.ID).
		Updates(map[string]interface{}{
			"name":       store.Name,
			"address":    store.Address,
			"phone":      store.Phone,
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

func (r *storeRepoImpl) SaveQRImage(ctx context.Context, storeID uint, dataURL string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Store{}).
		Where("id = ?", storeID).
		Update("qr_image", dataURL)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
