package services

import (
	"context"
	"time"

	"storefront-service/models"
	"storefront-service/repository"

	"go.uber.org/zap"
)

// PromotionService exposes the running promotional campaigns, read-only.
type PromotionService interface {
	ListActivePromotions(ctx context.Context) ([]models.Promotion, *ServiceError)
}

// promotionServiceImpl implements PromotionService.
type promotionServiceImpl struct {
	repo   repository.PromotionRepository
	logger *zap.Logger
}

// NewPromotionService creates a new PromotionService.
func NewPromotionService(repo repository.PromotionRepository, logger *zap.Logger) PromotionService {
	return &promotionServiceImpl{repo: repo, logger: logger}
}

// ListActivePromotions returns promotions currently within their date
// window.
func (s *promotionServiceImpl) ListActivePromotions(ctx context.Context) ([]models.Promotion, *ServiceError) {
	promotions, err := s.repo.FindActive(ctx, time.Now())
	if err != nil {
		s.logger.Error("Failed to list promotions", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list promotions"}
	}
	return promotions, nil
}
