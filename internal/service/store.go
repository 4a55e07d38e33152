package service

import (
	"context"
	"errors"
	"fmt"
	"shopease-api/internal/dto"
	"shopease-api/internal/model"
	"shopease-api/internal/repository"

	"gorm.io/gorm"
)

type StoreService interface {
	GetStore(ctx context.Context, storeID uint) (*model.Store, error)
	UpdateStore(ctx context.Context, storeID uint, req *dto.UpdateStoreRequest) (*model.Store, error)
}

type storeServiceImpl struct {
	storeRepo repository.StoreRepository
}

func NewStoreService(storeRepo repository.StoreRepository) StoreService {
	return &storeServiceImpl{
		storeRepo: storeRepo,
	}
}

func (s *storeServiceImpl) GetStore(ctx context.Context, storeID uint) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find store: %w", err)
	}

	return store, nil
}

func (s *storeServiceImpl) UpdateStore(ctx context.Context, storeID uint, req *dto.UpdateStoreRequest) (*model.Store, error) {
	err := s.storeRepo.Update(ctx, &model.Store{
		ID:      storeID,
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update store: %w", err)
	}

	return s.GetStore(ctx, storeID)
}
