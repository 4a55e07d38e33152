package service

import (
	"context"
	"fmt"
	"shopease-api/internal/dto"
	"shopease-api/internal/model"
	"shopease-api/internal/repository"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleService interface {
	Create(ctx context.Context, storeID uint, req *dto.CreateSaleRequest) (*model.Sale, error)
	List(ctx context.Context, storeID uint, dr repository.DateRange) ([]*model.Sale, error)
	GetWithItems(ctx context.Context, storeID uint, saleID string) (*model.Sale, []*model.SaleItem, error)
}

type saleServiceImpl struct {
	db       *gorm.DB
	saleRepo repository.SaleRepository
}

func NewSaleService(db *gorm.DB, saleRepo repository.SaleRepository) SaleService {
	return &saleServiceImpl{
		db:       db,
		saleRepo: saleRepo,
	}
}

// Create inserts the sale and its items in one transaction. A failure on any
// item rolls back the parent row: no orphan sales.
func (s *saleServiceImpl) Create(ctx context.Context, storeID uint, req *dto.CreateSaleRequest) (*model.Sale, error) {
	expected := decimal.Zero
	for _, item := range req.Items {
		expected = expected.Add(item.UnitPrice.Mul(decimal.NewFromInt32(item.Quantity)))
	}
	if !expected.Equal(req.TotalAmount) {
		return nil, ErrTotalMismatch
	}

	sale := &model.Sale{
		ID:            uuid.NewString(),
		StoreID:       storeID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		TotalAmount:   req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: "COMPLETED",
		SaleTime:      time.Now(),
	}

	items := make([]*model.SaleItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = &model.SaleItem{
			SaleID:      sale.ID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.saleRepo.Create(ctx, tx, sale); err != nil {
			return fmt.Errorf("store sale: %w", err)
		}
		if err := s.saleRepo.CreateItems(ctx, tx, items); err != nil {
			return fmt.Errorf("store sale items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sale, nil
}

func (s *saleServiceImpl) List(ctx context.Context, storeID uint, dr repository.DateRange) ([]*model.Sale, error) {
	return s.saleRepo.List(ctx, storeID, dr)
}

func (s *saleServiceImpl) GetWithItems(ctx context.Context, storeID uint, saleID string) (*model.Sale, []*model.SaleItem, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, nil, ErrNotFound
	}
	if sale.StoreID != storeID {
		return nil, nil, ErrForbidden
	}

	items, err := s.saleRepo.GetItems(ctx, saleID)
	if err != nil {
		return nil, nil, fmt.Errorf("load sale items: %w", err)
	}

	return sale, items, nil
}
