package services

import (
	"context"

	"github.com/ahanaf-mohosen/DailyMoodCheck/config"
	"github.com/ahanaf-mohosen/DailyMoodCheck/models"
)

// GormQuoteRepository 基于数据库的名言查询实现
type GormQuoteRepository struct{}

func (r *GormQuoteRepository) GetQuotesByMood(ctx context.Context, mood models.Mood) ([]models.Quote, error) {
	var quotes []models.Quote
	if err := config.DB.WithContext(ctx).Where("mood_tag = ?", mood).Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}
