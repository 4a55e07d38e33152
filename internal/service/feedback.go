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

type FeedbackService interface {
	Submit(ctx context.Context, req *dto.FeedbackRequest) (*model.Feedback, error)
	List(ctx context.Context, storeID uint, dr repository.DateRange) ([]*model.Feedback, error)
}

type feedbackServiceImpl struct {
	storeRepo    repository.StoreRepository
	feedbackRepo repository.FeedbackRepository
}

func NewFeedbackService(storeRepo repository.StoreRepository, feedbackRepo repository.FeedbackRepository) FeedbackService {
	return &feedbackServiceImpl{
		storeRepo:    storeRepo,
		feedbackRepo: feedbackRepo,
	}
}

func (s *feedbackServiceImpl) Submit(ctx context.Context, req *dto.FeedbackRequest) (*model.Feedback, error) {
	if _, err := s.storeRepo.FindByID(ctx, req.StoreID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find store: %w", err)
	}

	feedback := &model.Feedback{
		StoreID:              req.StoreID,
		CustomerID:           req.CustomerID,
		OverallRating:        req.OverallRating,
		ProductQualityRating: req.ProductQualityRating,
		PricingRating:        req.PricingRating,
		ServiceRating:        req.ServiceRating,
		CleanlinessRating:    req.CleanlinessRating,
		Comments:             req.Comments,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}

	return feedback, nil
}

func (s *feedbackServiceImpl) List(ctx context.Context, storeID uint, dr repository.DateRange) ([]*model.Feedback, error) {
	return s.feedbackRepo.ListByStore(ctx, storeID, dr)
}
