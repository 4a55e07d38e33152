package service

import (
	"context"
	"log/slog"
	"shopease-api/internal/dto"
	"shopease-api/internal/metrics"
	"shopease-api/internal/model"
	"shopease-api/internal/repository"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestConversionRateZeroScans(t *testing.T) {
	assert.Equal(t, float64(0), ConversionRate(decimal.NewFromInt(5000), 0))
}

func TestConversionRateArithmetic(t *testing.T) {
	// revenue per scan expressed as a percentage, rounded to 2 decimals
	assert.Equal(t, 250.0, ConversionRate(decimal.NewFromInt(150), 60))
	assert.Equal(t, 1763.57, ConversionRate(decimal.RequireFromString("123.45"), 7))
	assert.Equal(t, 0.0, ConversionRate(decimal.Zero, 10))
}

func newAnalyticsService(storeRepo repository.StoreRepository, sectionRepo repository.SectionRepository, scanRepo repository.ScanRepository, analyticsRepo repository.AnalyticsRepository) AnalyticsService {
	return NewAnalyticsService(
		storeRepo, sectionRepo, scanRepo,
		&fakeSalesDataRepo{}, analyticsRepo,
		nil, testLogger(), metrics.Registry("test"),
	)
}

func TestRecordScanUnknownStore(t *testing.T) {
	svc := newAnalyticsService(
		&fakeStoreRepo{stores: map[uint]*model.Store{}},
		&fakeSectionRepo{}, &fakeScanRepo{}, &fakeAnalyticsRepo{},
	)

	_, err := svc.RecordScan(context.Background(), &dto.RecordScanRequest{StoreID: 42}, "1.2.3.4", "ua")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRecordScanForeignSectionRejected(t *testing.T) {
	sectionID := uint(7)
	scanRepo := &fakeScanRepo{}
	svc := newAnalyticsService(
		&fakeStoreRepo{stores: map[uint]*model.Store{1: {ID: 1}}},
		&fakeSectionRepo{sections: map[uint]*model.StoreSection{7: {ID: 7, StoreID: 2}}},
		scanRepo, &fakeAnalyticsRepo{},
	)

	_, err := svc.RecordScan(context.Background(), &dto.RecordScanRequest{
		StoreID:   1,
		SectionID: &sectionID,
	}, "1.2.3.4", "ua")
	require.ErrorIs(t, err, ErrSectionMismatch)
	assert.Empty(t, scanRepo.scans, "no row may be inserted on rejection")
}

func TestRecordScanInsertsRow(t *testing.T) {
	scanRepo := &fakeScanRepo{}
	svc := newAnalyticsService(
		&fakeStoreRepo{stores: map[uint]*model.Store{1: {ID: 1}}},
		&fakeSectionRepo{}, scanRepo, &fakeAnalyticsRepo{},
	)

	scan, err := svc.RecordScan(context.Background(), &dto.RecordScanRequest{StoreID: 1}, "9.9.9.9", "browser")
	require.NoError(t, err)
	assert.Equal(t, uint(1), scan.StoreID)
	assert.Equal(t, "9.9.9.9", scan.IPAddress)
	assert.Len(t, scanRepo.scans, 1)
}

func TestDashboardAssemblesAggregates(t *testing.T) {
	analyticsRepo := &fakeAnalyticsRepo{
		scanSummary: repository.ScanSummaryRow{
			TotalScans:         200,
			ScanDays:           5,
			UniqueVisitors:     80,
			AuthenticatedScans: 12,
		},
		sections: []*repository.SectionCountRow{
			{SectionID: 1, SectionName: "Produce", ScanCount: 120},
			{SectionID: 2, SectionName: "Bakery", ScanCount: 0},
		},
		// hours with no scans are absent, not zero-filled
		hourly: []*repository.HourlyCountRow{
			{Hour: 9, ScanCount: 40},
			{Hour: 14, ScanCount: 160},
		},
		salesSummary: repository.SalesSummaryRow{
			TotalRevenue:  decimal.NewFromInt(500),
			TotalOrders:   25,
			AvgOrderValue: decimal.NewFromInt(20),
		},
		feedback: repository.FeedbackSummaryRow{Count: 10, AverageRating: 4.2, Positive: 7, Negative: 1},
	}

	svc := newAnalyticsService(&fakeStoreRepo{}, &fakeSectionRepo{}, &fakeScanRepo{}, analyticsRepo)

	dashboard, err := svc.Dashboard(context.Background(), 1, repository.DateRange{})
	require.NoError(t, err)

	assert.Equal(t, int64(200), dashboard.Scans.TotalScans)
	require.Len(t, dashboard.Sections, 2)
	assert.Equal(t, "Bakery", dashboard.Sections[1].SectionName)
	assert.Equal(t, int64(0), dashboard.Sections[1].ScanCount, "zero-scan sections survive")

	require.Len(t, dashboard.Hourly, 2)
	assert.Equal(t, 9, dashboard.Hourly[0].Hour)
	assert.Equal(t, 14, dashboard.Hourly[1].Hour)

	// (500 / 200) * 100 = 250.00
	assert.Equal(t, 250.0, dashboard.ConversionRate)
	assert.Equal(t, int64(7), dashboard.Feedback.Positive)
}

func TestDashboardZeroScansSafeConversion(t *testing.T) {
	analyticsRepo := &fakeAnalyticsRepo{
		salesSummary: repository.SalesSummaryRow{TotalRevenue: decimal.NewFromInt(999)},
	}
	svc := newAnalyticsService(&fakeStoreRepo{}, &fakeSectionRepo{}, &fakeScanRepo{}, analyticsRepo)

	dashboard, err := svc.Dashboard(context.Background(), 1, repository.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, float64(0), dashboard.ConversionRate)
}
