package repository

import (
	"context"
	"shopease-api/internal/model"

	"gorm.io/gorm"
)

type SalesDataRepository interface {
	Create(ctx context.Context, row *model.SalesDataRow) error
	ExistsForDate(ctx context.Context, storeID uint, date string) (bool, error)
	List(ctx context.Context, storeID uint, dr DateRange) ([]*model.SalesDataRow, error)
}

type salesDataRepoImpl struct {
	db *gorm.DB
}

func NewSalesDataRepository(db *gorm.DB) SalesDataRepository {
	return &salesDataRepoImpl{
		db: db,
	}
}

func (r *salesDataRepoImpl) Create(ctx context.Context, row *model.SalesDataRow) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *salesDataRepoImpl) ExistsForDate(ctx context.Context, storeID uint, date string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SalesDataRow{}).
		Where("store_id = ? AND DATE(date) = ?", storeID, date).
		Count(&count).Error

	return count > 0, err
}

func (r *salesDataRepoImpl) List(ctx context.Context, storeID uint, dr DateRange) ([]*model.SalesDataRow, error) {
	q := r.db.WithContext(ctx).Where("store_id = ?", storeID)
	if dr.Start != "" {
		q = q.Where("DATE(date) >= ?", dr.Start)
	}
	if dr.End != "" {
		q = q.Where("DATE(date) <= ?", dr.End)
	}

	var rows []*model.SalesDataRow
	err := q.Order("date DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
