package service

import (
	"bytes"
	"context"
	"shopease-api/internal/metrics"
	"shopease-api/internal/model"
	"shopease-api/internal/spreadsheet"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workbook(t *testing.T, headers []string, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	buf, err := spreadsheet.Write("Sheet1", headers, rows)
	require.NoError(t, err)
	return buf
}

func TestUploadSalesDataRowTolerance(t *testing.T) {
	salesRepo := &fakeSalesDataRepo{
		rows: []*model.SalesDataRow{
			{StoreID: 1, Date: time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC), TotalSales: decimal.NewFromInt(10)},
		},
	}
	svc := NewAnalyticsService(
		&fakeStoreRepo{}, &fakeSectionRepo{}, &fakeScanRepo{},
		salesRepo, &fakeAnalyticsRepo{},
		nil, testLogger(), metrics.Registry("test"),
	)

	buf := workbook(t,
		[]string{"Date", "Total Sales", "Total Orders", "Avg Order Value"},
		[][]interface{}{
			{"2026-05-01", "1200.50", "10", "120.05"}, // ok
			{"2026-05-02", "500", "", ""},             // duplicate date
			{"not-a-date", "300", "", ""},             // bad date
			{"2026-05-04", "-5", "", ""},              // negative total
			{"02/06/2026", "750", "5", ""},            // ok, alternate date form
		})

	result, err := svc.UploadSalesData(context.Background(), 1, buf)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 3, result.Failed)
	require.Len(t, result.Errors, 3)
	// error rows are numbered against the spreadsheet, header included
	assert.Contains(t, result.Errors[0], "Row 3:")
	assert.Contains(t, result.Errors[0], "2026-05-02")
	assert.Contains(t, result.Errors[1], "Row 4:")
	assert.Contains(t, result.Errors[2], "Row 5:")

	// the duplicate never produced a second row
	count := 0
	for _, row := range salesRepo.rows {
		if row.Date.Format("2006-01-02") == "2026-05-02" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	// aov derived from total/orders when the column is blank
	for _, row := range salesRepo.rows {
		if row.Date.Format("2006-01-02") == "2026-06-02" {
			assert.True(t, decimal.NewFromInt(150).Equal(row.AvgOrderValue))
		}
	}
}

func TestUploadSalesDataRejectsMalformedOrderCounts(t *testing.T) {
	salesRepo := &fakeSalesDataRepo{}
	svc := NewAnalyticsService(
		&fakeStoreRepo{}, &fakeSectionRepo{}, &fakeScanRepo{},
		salesRepo, &fakeAnalyticsRepo{},
		nil, testLogger(), metrics.Registry("test"),
	)

	buf := workbook(t,
		[]string{"Date", "Total Sales", "Total Orders", "Avg Order Value"},
		[][]interface{}{
			{"2026-05-01", "1200", "12abc", ""}, // trailing garbage
			{"2026-05-02", "800", "12.5", ""},   // not an integer
			{"2026-05-03", "600", "6", ""},      // ok
		})

	result, err := svc.UploadSalesData(context.Background(), 1, buf)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 2, result.Failed)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "Row 2:")
	assert.Contains(t, result.Errors[0], "total orders")
	assert.Contains(t, result.Errors[1], "Row 3:")

	require.Len(t, salesRepo.rows, 1)
	assert.Equal(t, 6, salesRepo.rows[0].TotalOrders)
}

func TestBulkImportOffers(t *testing.T) {
	offerRepo := &fakeOfferRepo{}
	sectionRepo := &fakeSectionRepo{sections: map[uint]*model.StoreSection{
		3: {ID: 3, StoreID: 1, Name: "Dairy"},
	}}
	svc := NewOfferService(offerRepo, sectionRepo, metrics.Registry("test"))

	buf := workbook(t,
		[]string{"Title", "Original Price", "Discounted Price", "Start Date", "End Date", "Section"},
		[][]interface{}{
			{"Milk deal", "10", "8", "2026-05-01", "2026-05-31", "Dairy"},
			{"", "10", "8", "2026-05-01", "2026-05-31", ""},             // missing title
			{"Bad price", "abc", "8", "2026-05-01", "2026-05-31", ""},   // unparseable price
			{"Bad section", "10", "8", "2026-05-01", "2026-05-31", "X"}, // unknown section
			{"Backwards", "10", "8", "2026-05-31", "2026-05-01", ""},    // end before start
			{"No section deal", "20", "15", "2026-05-01", "2026-05-31", ""},
		})

	result, err := svc.BulkImport(context.Background(), 1, buf)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 4, result.Failed)
	require.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors[0], "Row 3:")
	assert.Contains(t, result.Errors[3], "Row 6:")

	require.Len(t, offerRepo.offers, 2)
	first := offerRepo.offers[0]
	require.NotNil(t, first.SectionID)
	assert.Equal(t, uint(3), *first.SectionID)
	assert.True(t, decimal.NewFromInt(20).Equal(first.DiscountPercent))
	assert.Equal(t, model.OfferActive, first.Status)
}

func TestBulkImportInsertFailureDoesNotBlockRest(t *testing.T) {
	offerRepo := &fakeOfferRepo{failTitle: "Poisoned"}
	svc := NewOfferService(offerRepo, &fakeSectionRepo{}, metrics.Registry("test"))

	buf := workbook(t,
		[]string{"Title", "Original Price", "Discounted Price", "Start Date", "End Date", "Section"},
		[][]interface{}{
			{"First", "10", "8", "2026-05-01", "2026-05-31", ""},
			{"Poisoned", "10", "8", "2026-05-01", "2026-05-31", ""},
			{"Third", "10", "8", "2026-05-01", "2026-05-31", ""},
		})

	result, err := svc.BulkImport(context.Background(), 1, buf)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Row 3:")
	assert.Len(t, offerRepo.offers, 2)
}
