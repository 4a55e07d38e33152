package repository

import (
	"context"
	"shopease-api/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSectionBreakdownKeepsZeroScanSections(t *testing.T) {
	db := newTestDB(t)
	store := seedStore(t, db, "breakdown@example.com")
	sectionRepo := NewSectionRepository(db)
	scanRepo := NewScanRepository(db)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	busy := &model.StoreSection{StoreID: store.ID, Name: "Produce"}
	quiet := &model.StoreSection{StoreID: store.ID, Name: "Bakery"}
	require.NoError(t, sectionRepo.Create(ctx, busy))
	require.NoError(t, sectionRepo.Create(ctx, quiet))

	at := time.Date(2026, 6, 1, 14, 30, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		require.NoError(t, scanRepo.Insert(ctx, &model.QRScan{
			StoreID:   store.ID,
			SectionID: &busy.ID,
			ScanTime:  at,
		}))
	}

	rows, err := repo.SectionBreakdown(ctx, store.ID, DateRange{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Produce", rows[0].SectionName)
	require.Equal(t, int64(2), rows[0].ScanCount)
	require.Equal(t, "Bakery", rows[1].SectionName)
	require.Equal(t, int64(0), rows[1].ScanCount)
}

func TestSectionBreakdownDateFilterPreservesSections(t *testing.T) {
	db := newTestDB(t)
	store := seedStore(t, db, "breakdown-range@example.com")
	sectionRepo := NewSectionRepository(db)
	scanRepo := NewScanRepository(db)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	section := &model.StoreSection{StoreID: store.ID, Name: "Dairy"}
	require.NoError(t, sectionRepo.Create(ctx, section))
	require.NoError(t, scanRepo.Insert(ctx, &model.QRScan{
		StoreID:   store.ID,
		SectionID: &section.ID,
		ScanTime:  time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
	}))

	// a window with no scans must zero the count, not drop the section
	rows, err := repo.SectionBreakdown(ctx, store.ID, DateRange{Start: "2026-07-01", End: "2026-07-31"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Dairy", rows[0].SectionName)
	require.Equal(t, int64(0), rows[0].ScanCount)
}

func TestHourlyDistributionOmitsEmptyHours(t *testing.T) {
	db := newTestDB(t)
	store := seedStore(t, db, "hourly@example.com")
	scanRepo := NewScanRepository(db)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, hour := range []int{9, 9, 14} {
		require.NoError(t, scanRepo.Insert(ctx, &model.QRScan{
			StoreID:  store.ID,
			ScanTime: day.Add(time.Duration(hour) * time.Hour),
		}))
	}

	rows, err := repo.HourlyDistribution(ctx, store.ID, DateRange{})
	require.NoError(t, err)
	require.Len(t, rows, 2, "hours with no scans are absent, not zero-filled")
	require.Equal(t, 9, rows[0].Hour)
	require.Equal(t, int64(2), rows[0].ScanCount)
	require.Equal(t, 14, rows[1].Hour)
	require.Equal(t, int64(1), rows[1].ScanCount)
}
