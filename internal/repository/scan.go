package repository

import (
	"context"
	"shopease-api/internal/model"

	"gorm.io/gorm"
)

// ScanRepository is insert-and-read only. Scan rows are an audit trail: no
// update or delete methods exist.
type ScanRepository interface {
	Insert(ctx context.Context, scan *model.QRScan) error
	List(ctx context.Context, storeID uint, dr DateRange) ([]*model.QRScan, error)
}

type scanRepoImpl struct {
	db *gorm.DB
}

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepoImpl{
		db: db,
	}
}

func (r *scanRepoImpl) Insert(ctx context.Context, scan *model.QRScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *scanRepoImpl) List(ctx context.Context, storeID uint, dr DateRange) ([]*model.QRScan, error) {
	q := r.db.WithContext(ctx).Where("store_id = ?", storeID)
	if dr.Start != "" {
		q = q.Where("DATE(scan_time) >= ?", dr.Start)
	}
	if dr.End != "" {
		q = q.Where("DATE(scan_time) <= ?", dr.End)
	}

	var scans []*model.QRScan
	err := q.Order("scan_time DESC").Find(&scans).Error
	if err != nil {
		return nil, err
	}

	return scans, nil
}
