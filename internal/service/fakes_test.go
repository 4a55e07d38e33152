package service

import (
	"context"
	"shopease-api/internal/model"
	"shopease-api/internal/repository"
	"time"

	"gorm.io/gorm"
)

type fakeStoreRepo struct {
	stores map[uint]*model.Store
}

func (f *fakeStoreRepo) Create(ctx context.Context, store *model.Store) error { return nil }

func (f *fakeStoreRepo) FindByID(ctx context.Context, storeID uint) (*model.Store, error) {
	store, ok := f.stores[storeID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return store, nil
}

func (f *fakeStoreRepo) FindByEmail(ctx context.Context, email string) (*model.Store, error) {
	for _, store := range f.stores {
		if store.Email == email {
			return store, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStoreRepo) Update(ctx context.Context, store *model.Store) error { return nil }

func (f *fakeStoreRepo) SaveQRImage(ctx context.Context, storeID uint, dataURL string) error {
	return nil
}

type fakeSectionRepo struct {
	sections map[uint]*model.StoreSection
}

func (f *fakeSectionRepo) Create(ctx context.Context, section *model.StoreSection) error {
	return nil
}

func (f *fakeSectionRepo) FindByID(ctx context.Context, sectionID uint) (*model.StoreSection, error) {
	section, ok := f.sections[sectionID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return section, nil
}

func (f *fakeSectionRepo) ListByStore(ctx context.Context, storeID uint) ([]*model.StoreSection, error) {
	var out []*model.StoreSection
	for _, section := range f.sections {
		if section.StoreID == storeID {
			out = append(out, section)
		}
	}
	return out, nil
}

func (f *fakeSectionRepo) Update(ctx context.Context, section *model.StoreSection) error {
	return nil
}

func (f *fakeSectionRepo) Delete(ctx context.Context, sectionID uint) error { return nil }

func (f *fakeSectionRepo) BelongsToStore(ctx context.Context, sectionID, storeID uint) (bool, error) {
	section, ok := f.sections[sectionID]
	return ok && section.StoreID == storeID, nil
}

func (f *fakeSectionRepo) SaveQRImage(ctx context.Context, sectionID uint, dataURL string) error {
	return nil
}

type fakeScanRepo struct {
	scans []*model.QRScan
}

func (f *fakeScanRepo) Insert(ctx context.Context, scan *model.QRScan) error {
	scan.ID = uint(len(f.scans) + 1)
	f.scans = append(f.scans, scan)
	return nil
}

func (f *fakeScanRepo) List(ctx context.Context, storeID uint, dr repository.DateRange) ([]*model.QRScan, error) {
	var out []*model.QRScan
	for _, scan := range f.scans {
		if scan.StoreID == storeID {
			out = append(out, scan)
		}
	}
	return out, nil
}

type fakeSalesDataRepo struct {
	rows []*model.SalesDataRow
}

func (f *fakeSalesDataRepo) Create(ctx context.Context, row *model.SalesDataRow) error {
	row.ID = uint(len(f.rows) + 1)
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeSalesDataRepo) ExistsForDate(ctx context.Context, storeID uint, date string) (bool, error) {
	for _, row := range f.rows {
		if row.StoreID == storeID && row.Date.Format("2006-01-02") == date {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSalesDataRepo) List(ctx context.Context, storeID uint, dr repository.DateRange) ([]*model.SalesDataRow, error) {
	var out []*model.SalesDataRow
	for _, row := range f.rows {
		if row.StoreID == storeID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeOfferRepo struct {
	offers    []*model.Offer
	failTitle string // Create fails for offers with this title
}

func (f *fakeOfferRepo) Create(ctx context.Context, offer *model.Offer) error {
	if f.failTitle != "" && offer.Title == f.failTitle {
		return gorm.ErrInvalidData
	}
	offer.ID = uint(len(f.offers) + 1)
	f.offers = append(f.offers, offer)
	return nil
}

func (f *fakeOfferRepo) FindByID(ctx context.Context, offerID uint) (*model.Offer, error) {
	for _, offer := range f.offers {
		if offer.ID == offerID {
			return offer, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOfferRepo) ListByStore(ctx context.Context, storeID uint, status model.OfferStatus) ([]*model.Offer, error) {
	return f.offers, nil
}

func (f *fakeOfferRepo) ListPublic(ctx context.Context, storeID uint, sectionID *uint, at time.Time) ([]*model.Offer, error) {
	return f.offers, nil
}

func (f *fakeOfferRepo) Update(ctx context.Context, offer *model.Offer) error { return nil }

func (f *fakeOfferRepo) SetStatus(ctx context.Context, offerID uint, status model.OfferStatus) error {
	for _, offer := range f.offers {
		if offer.ID == offerID {
			offer.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeAnalyticsRepo struct {
	scanSummary  repository.ScanSummaryRow
	sections     []*repository.SectionCountRow
	hourly       []*repository.HourlyCountRow
	salesSummary repository.SalesSummaryRow
	trend        []*model.SalesDataRow
	feedback     repository.FeedbackSummaryRow
}

func (f *fakeAnalyticsRepo) ScanSummary(ctx context.Context, storeID uint, dr repository.DateRange) (*repository.ScanSummaryRow, error) {
	row := f.scanSummary
	return &row, nil
}

func (f *fakeAnalyticsRepo) SectionBreakdown(ctx context.Context, storeID uint, dr repository.DateRange) ([]*repository.SectionCountRow, error) {
	return f.sections, nil
}

func (f *fakeAnalyticsRepo) HourlyDistribution(ctx context.Context, storeID uint, dr repository.DateRange) ([]*repository.HourlyCountRow, error) {
	return f.hourly, nil
}

func (f *fakeAnalyticsRepo) SalesSummary(ctx context.Context, storeID uint, dr repository.DateRange) (*repository.SalesSummaryRow, error) {
	row := f.salesSummary
	return &row, nil
}

func (f *fakeAnalyticsRepo) DailyTrend(ctx context.Context, storeID uint, dr repository.DateRange, limit int) ([]*model.SalesDataRow, error) {
	if len(f.trend) > limit {
		return f.trend[:limit], nil
	}
	return f.trend, nil
}

func (f *fakeAnalyticsRepo) FeedbackSummary(ctx context.Context, storeID uint, dr repository.DateRange) (*repository.FeedbackSummaryRow, error) {
	row := f.feedback
	return &row, nil
}
