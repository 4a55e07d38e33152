package repository

import (
	"context"
	"shopease-api/internal/model"
	"time"

	"gorm.io/gorm"
)

type OfferRepository interface {
	Create(ctx context.Context, offer *model.Offer) error
	FindByID(ctx context.Context, offerID uint) (*model.Offer, error)
	ListByStore(ctx context.Context, storeID uint, status model.OfferStatus) ([]*model.Offer, error)
	ListPublic(ctx context.Context, storeID uint, sectionID *uint, at time.Time) ([]*model.Offer, error)
	Update(ctx context.Context, offer *model.Offer) error
	SetStatus(ctx context.Context, offerID uint, status model.OfferStatus) error
}

type offerRepoImpl struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &offerRepoImpl{
		db: db,
	}
}

func (r *offerRepoImpl) Create(ctx context.Context, offer *model.Offer) error {
	return r.db.WithContext(ctx).Create(offer).Error
}

func (r *offerRepoImpl) FindByID(ctx context.Context, offerID uint) (*model.Offer, error) {
	var offer model.Offer
	err := r.db.WithContext(ctx).
		Where("id = ?", offerID).
		First(&offer).Error
	if err != nil {
		return nil, err
	}

	return &offer, nil
}

// ListByStore returns the store's offers. Deleted offers are excluded unless
// explicitly asked for via status.
func (r *offerRepoImpl) ListByStore(ctx context.Context, storeID uint, status model.OfferStatus) ([]*model.Offer, error) {
	q := r.db.WithContext(ctx).Where("store_id = ?", storeID)
	if status != "" {
		q = q.Where("status = ?", status)
	} else {
		q = q.Where("status <> ?", model.OfferDeleted)
	}

	var offers []*model.Offer
	err := q.Order("created_at DESC").Find(&offers).Error
	if err != nil {
		return nil, err
	}

	return offers, nil
}

// ListPublic returns active offers inside their validity window, for the
// shopper-facing storefront. The window is compared at day granularity so
// an offer stays visible through the whole of its end date.
func (r *offerRepoImpl) ListPublic(ctx context.Context, storeID uint, sectionID *uint, at time.Time) ([]*model.Offer, error) {
	day := at.Format("2006-01-02")
	q := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Where("status = ?", model.OfferActive).
		Where("DATE(start_date) <= ? AND DATE(end_date) >= ?", day, day)

	if sectionID != nil {
		q = q.Where("section_id = ?", *sectionID)
	}

	var offers []*model.Offer
	err := q.Order("discount_percent DESC").Find(&offers).Error
	if err != nil {
		return nil, err
	}

	return offers, nil
}

func (r *offerRepoImpl) Update(ctx context.Context, offer *model.Offer) error {
	result := r.db.WithContext(ctx).
		Model(&model.Offer{}).
		Where("id = ? AND store_id = ?", offer.ID, offer.StoreID).
		Updates(map[string]interface{}{
			"section_id":       offer.SectionID,
			"title":            offer.Title,
			"description":      offer.Description,
			"original_price":   offer.OriginalPrice,
			"discounted_price": offer.DiscountedPrice,
			"discount_percent": offer.DiscountPercent,
			"start_date":       offer.StartDate,
			"end_date":         offer.EndDate,
			"updated_at":       time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *offerRepoImpl) SetStatus(ctx context.Context, offerID uint, status model.OfferStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.Offer{}).
		Where("id = ?", offerID).
		Updates(map[string]interface{}{
			"status":     status,
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
