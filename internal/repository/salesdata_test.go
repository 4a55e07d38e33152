package repository

import (
	"context"
	"shopease-api/internal/model"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSalesDataExistsForDate(t *testing.T) {
	db := newTestDB(t)
	store := seedStore(t, db, "sales@example.com")
	repo := NewSalesDataRepository(db)
	ctx := context.Background()

	date := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
	err := repo.Create(ctx, &model.SalesDataRow{
		StoreID:     store.ID,
		Date:        date,
		TotalSales:  decimal.NewFromInt(1500),
		TotalOrders: 12,
	})
	require.NoError(t, err)

	exists, err := repo.ExistsForDate(ctx, store.ID, "2026-02-14")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.ExistsForDate(ctx, store.ID, "2026-02-15")
	require.NoError(t, err)
	require.False(t, exists)

	// same date for another store is a separate row
	other := seedStore(t, db, "sales-other@example.com")
	exists, err = repo.ExistsForDate(ctx, other.ID, "2026-02-14")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestSalesDataUniquePerStoreDate(t *testing.T) {
	db := newTestDB(t)
	store := seedStore(t, db, "sales-dup@example.com")
	repo := NewSalesDataRepository(db)
	ctx := context.Background()

	date := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
	row := &model.SalesDataRow{StoreID: store.ID, Date: date, TotalSales: decimal.NewFromInt(100)}
	require.NoError(t, repo.Create(ctx, row))

	dup := &model.SalesDataRow{StoreID: store.ID, Date: date, TotalSales: decimal.NewFromInt(200)}
	require.Error(t, repo.Create(ctx, dup), "unique index on (store_id, date) must reject the duplicate")

	rows, err := repo.List(ctx, store.ID, DateRange{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestSalesDataListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	store := seedStore(t, db, "sales-order@example.com")
	repo := NewSalesDataRepository(db)
	ctx := context.Background()

	for _, day := range []int{10, 12, 11} {
		err := repo.Create(ctx, &model.SalesDataRow{
			StoreID:    store.ID,
			Date:       time.Date(2026, 4, day, 0, 0, 0, 0, time.UTC),
			TotalSales: decimal.NewFromInt(int64(day)),
		})
		require.NoError(t, err)
	}

	rows, err := repo.List(ctx, store.ID, DateRange{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, 12, rows[0].Date.Day())
	require.Equal(t, 10, rows[2].Date.Day())
}
