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

type SectionService interface {
	Create(ctx context.Context, storeID uint, req *dto.CreateSectionRequest) (*model.StoreSection, error)
	List(ctx context.Context, storeID uint) ([]*model.StoreSection, error)
	Update(ctx context.Context, storeID, sectionID uint, req *dto.CreateSectionRequest) (*model.StoreSection, error)
	Delete(ctx context.Context, storeID, sectionID uint) error
}

type sectionServiceImpl struct {
	sectionRepo repository.SectionRepository
}

func NewSectionService(sectionRepo repository.SectionRepository) SectionService {
	return &sectionServiceImpl{
		sectionRepo: sectionRepo,
	}
}

func (s *sectionServiceImpl) Create(ctx context.Context, storeID uint, req *dto.CreateSectionRequest) (*model.StoreSection, error) {
	section := &model.StoreSection{
		StoreID: storeID,
		Name:    req.Name,
	}
	if err := s.sectionRepo.Create(ctx, section); err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}

	return section, nil
}

func (s *sectionServiceImpl) List(ctx context.Context, storeID uint) ([]*model.StoreSection, error) {
	return s.sectionRepo.ListByStore(ctx, storeID)
}

func (s *sectionServiceImpl) Update(ctx context.Context, storeID, sectionID uint, req *dto.CreateSectionRequest) (*model.StoreSection, error) {
	err := s.sectionRepo.Update(ctx, &model.StoreSection{
		ID:      sectionID,
		StoreID: storeID,
		Name:    req.Name,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update section: %w", err)
	}

	return s.sectionRepo.FindByID(ctx, sectionID)
}

func (s *sectionServiceImpl) Delete(ctx context.Context, storeID, sectionID uint) error {
	if err := s.ownedSection(ctx, storeID, sectionID); err != nil {
		return err
	}

	// historical scans keep their section_id; only the section row goes
	return s.sectionRepo.Delete(ctx, sectionID)
}

func (s *sectionServiceImpl) ownedSection(ctx context.Context, storeID, sectionID uint) error {
	owned, err := s.sectionRepo.BelongsToStore(ctx, sectionID, storeID)
	if err != nil {
		return fmt.Errorf("check section ownership: %w", err)
	}
	if !owned {
		return ErrForbidden
	}
	return nil
}
