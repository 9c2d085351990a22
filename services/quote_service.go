package services

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/ahanaf-mohosen/DailyMoodCheck/models"
)

// ErrNoQuoteAvailable 该情绪标签下没有任何名言
var ErrNoQuoteAvailable = errors.New("该情绪下没有可用的名言")

// QuoteRepository 名言查询接口，空结果返回空切片而不是错误
type QuoteRepository interface {
	GetQuotesByMood(ctx context.Context, mood models.Mood) ([]models.Quote, error)
}

// QuoteService 按情绪标签随机选取名言
type QuoteService struct {
	repo QuoteRepository
	mu   sync.Mutex
	rng  *rand.Rand
}

// NewQuoteService 创建名言服务，rng 为 nil 时使用时间种子
func NewQuoteService(repo QuoteRepository, rng *rand.Rand) *QuoteService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &QuoteService{
		repo: repo,
		rng:  rng,
	}
}

// PickQuote 在指定情绪的名言中等概率随机选一条
// 返回的名言标签一定等于请求的情绪
func (s *QuoteService) PickQuote(ctx context.Context, mood models.Mood) (*models.Quote, error) {
	quotes, err := s.repo.GetQuotesByMood(ctx, mood)
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, ErrNoQuoteAvailable
	}

	s.mu.Lock()
	i := s.rng.Intn(len(quotes))
	s.mu.Unlock()

	return &quotes[i], nil
}
