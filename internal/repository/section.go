package repository

import (
	"context"
	"shopease-api/internal/model"
	"time"

	"gorm.io/gorm"
)

type SectionRepository interface {
	Create(ctx context.Context, section *model.StoreSection) error
	FindByID(ctx context.Context, sectionID uint) (*model.StoreSection, error)
	ListByStore(ctx context.Context, storeID uint) ([]*model.StoreSection, error)
	Update(ctx context.Context, section *model.StoreSection) error
	Delete(ctx context.Context, sectionID uint) error
	BelongsToStore(ctx context.Context, sectionID, storeID uint) (bool, error)
	SaveQRImage(ctx context.Context, sectionID uint, dataURL string) error
}

type sectionRepoImpl struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepoImpl{
		db: db,
	}
}

func (r *sectionRepoImpl) Create(ctx context.Context, section *model.StoreSection) error {
	return r.db.WithContext(ctx).Create(section).Error
}

func (r *sectionRepoImpl) FindByID(ctx context.Context, sectionID uint) (*model.StoreSection, error) {
	var section model.StoreSection
	err := r.db.WithContext(ctx).
		Where("id = ?", sectionID).
		First(&section).Error
	if err != nil {
		return nil, err
	}

	return &section, nil
}

func (r *sectionRepoImpl) ListByStore(ctx context.Context, storeID uint) ([]*model.StoreSection, error) {
	var sections []*model.StoreSection
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("name ASC").
		Find(&sections).Error
	if err != nil {
		return nil, err
	}

	return sections, nil
}

func (r *sectionRepoImpl) Update(ctx context.Context, section *model.StoreSection) error {
	result := r.db.WithContext(ctx).
		Model(&model.StoreSection{}).
		Where("id = ? AND store_id = ?", section.ID, section.StoreID).
		Updates(map[string]interface{}{
			"name":       section.Name,
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

func (r *sectionRepoImpl) Delete(ctx context.Context, sectionID uint) error {
	return r.db.WithContext(ctx).
		Delete(&model.StoreSection{}, sectionID).Error
}

func (r *sectionRepoImpl) BelongsToStore(ctx context.Context, sectionID, storeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.StoreSection{}).
		Where("id = ? AND store_id = ?", sectionID, storeID).
		Count(&count).Error

	return count > 0, err
}

func (r *sectionRepoImpl) SaveQRImage(ctx context.Context, sectionID uint, dataURL string) error {
	result := r.db.WithContext(ctx).
		Model(&model.StoreSection{}).
		Where("id = ?", sectionID).
		Update("qr_image", dataURL)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
