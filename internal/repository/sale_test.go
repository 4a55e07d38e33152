package repository

import (
	"context"
	"errors"
	"shopease-api/internal/model"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSaleWithItemsCommits(t *testing.T) {
	db := newTestDB(t)
	store := seedStore(t, db, "sale@example.com")
	repo := NewSaleRepository(db)
	ctx := context.Background()

	sale := &model.Sale{
		ID:            "sale-1",
		StoreID:       store.ID,
		TotalAmount:   decimal.NewFromInt(30),
		PaymentMethod: "CASH",
		PaymentStatus: "COMPLETED",
		SaleTime:      time.Now(),
	}
	items := []*model.SaleItem{
		{SaleID: sale.ID, ProductName: "Soap", Quantity: 2, UnitPrice: decimal.NewFromInt(5)},
		{SaleID: sale.ID, ProductName: "Shampoo", Quantity: 1, UnitPrice: decimal.NewFromInt(20)},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := repo.Create(ctx, tx, sale); err != nil {
			return err
		}
		return repo.CreateItems(ctx, tx, items)
	})
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, sale.ID)
	require.NoError(t, err)
	require.Equal(t, store.ID, stored.StoreID)

	storedItems, err := repo.GetItems(ctx, sale.ID)
	require.NoError(t, err)
	require.Len(t, storedItems, 2)
}

func TestSaleRollsBackOnItemFailure(t *testing.T) {
	db := newTestDB(t)
	store := seedStore(t, db, "sale-rollback@example.com")
	repo := NewSaleRepository(db)
	ctx := context.Background()

	sale := &model.Sale{
		ID:            "sale-2",
		StoreID:       store.ID,
		TotalAmount:   decimal.NewFromInt(10),
		PaymentMethod: "CARD",
		PaymentStatus: "COMPLETED",
		SaleTime:      time.Now(),
	}
	// second item collides with the first item's primary key, forcing a
	// constraint violation mid-batch
	items := []*model.SaleItem{
		{ID: 1, SaleID: sale.ID, ProductName: "A", Quantity: 1, UnitPrice: decimal.NewFromInt(5)},
		{ID: 1, SaleID: sale.ID, ProductName: "B", Quantity: 1, UnitPrice: decimal.NewFromInt(5)},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := repo.Create(ctx, tx, sale); err != nil {
			return err
		}
		return repo.CreateItems(ctx, tx, items)
	})
	require.Error(t, err)

	// the parent row must not survive the rollback
	_, err = repo.FindByID(ctx, sale.ID)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound), "no orphan sale row expected, got %v", err)

	storedItems, err := repo.GetItems(ctx, sale.ID)
	require.NoError(t, err)
	require.Empty(t, storedItems)
}
