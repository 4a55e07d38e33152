package repository

import (
	"context"
	"shopease-api/internal/model"

	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	ListByStore(ctx context.Context, storeID uint, dr DateRange) ([]*model.Feedback, error)
}

type feedbackRepoImpl struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepoImpl{
		db: db,
	}
}

func (r *feedbackRepoImpl) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepoImpl) ListByStore(ctx context.Context, storeID uint, dr DateRange) ([]*model.Feedback, error) {
	q := r.db.WithContext(ctx).Where("store_id = ?", storeID)
	if dr.Start != "" {
		q = q.Where("DATE(created_at) >= ?", dr.Start)
	}
	if dr.End != "" {
		q = q.Where("DATE(created_at) <= ?", dr.End)
	}

	var feedbacks []*model.Feedback
	err := q.Order("created_at DESC").Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}

	return feedbacks, nil
}
