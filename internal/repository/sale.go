package repository

import (
	"context"
	"shopease-api/internal/model"

	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(ctx context.Context, tx *gorm.DB, sale *model.Sale) error
	CreateItems(ctx context.Context, tx *gorm.DB, items []*model.SaleItem) error
	FindByID(ctx context.Context, saleID string) (*model.Sale, error)
	List(ctx context.Context, storeID uint, dr DateRange) ([]*model.Sale, error)
	GetItems(ctx context.Context, saleID string) ([]*model.SaleItem, error)
}

type saleRepoImpl struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepoImpl{
		db: db,
	}
}

func (r *saleRepoImpl) Create(ctx context.Context, tx *gorm.DB, sale *model.Sale) error {
	return tx.WithContext(ctx).Create(sale).Error
}

func (r *saleRepoImpl) CreateItems(ctx context.Context, tx *gorm.DB, items []*model.SaleItem) error {
	return tx.WithContext(ctx).Create(&items).Error
}

func (r *saleRepoImpl) FindByID(ctx context.Context, saleID string) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.WithContext(ctx).
		Where("id = ?", saleID).
		First(&sale).Error
	if err != nil {
		return nil, err
	}

	return &sale, nil
}

func (r *saleRepoImpl) List(ctx context.Context, storeID uint, dr DateRange) ([]*model.Sale, error) {
	q := r.db.WithContext(ctx).Where("store_id = ?", storeID)
	if dr.Start != "" {
		q = q.Where("DATE(sale_time) >= ?", dr.Start)
	}
	if dr.End != "" {
		q = q.Where("DATE(sale_time) <= ?", dr.End)
	}

	var sales []*model.Sale
	err := q.Order("sale_time DESC").Find(&sales).Error
	if err != nil {
		return nil, err
	}

	return sales, nil
}

func (r *saleRepoImpl) GetItems(ctx context.Context, saleID string) ([]*model.SaleItem, error) {
	var items []*model.SaleItem
	err := r.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}
