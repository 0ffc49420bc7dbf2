package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"jobpath/internal/dataset"
	"jobpath/internal/domain/recommend"
)

// RecommendationItem is one recommended vacancy with its position resolved
// against the jobs table.
type RecommendationItem struct {
	JobID    string  `json:"job_id"`
	Position string  `json:"position"`
	Score    float64 `json:"score"`
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, userID string) ([]RecommendationItem, error)
}

// RecommendationCache is the optional response cache. Implementations must
// degrade to misses when the backing store is unavailable.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type Recommendation struct {
	store  *dataset.Store
	cache  RecommendationCache
	ttl    time.Duration
	logger *log.Logger
}

func NewRecommendationUsecase(store *dataset.Store, cache RecommendationCache, ttl time.Duration, logger *log.Logger) *Recommendation {
	if logger == nil {
		logger = log.Default()
	}
	return &Recommendation{store: store, cache: cache, ttl: ttl, logger: logger}
}

func (u *Recommendation) Recommend(ctx context.Context, userID string) ([]RecommendationItem, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}

	key := "recommend:user:" + userID
	if u.cache != nil {
		var cached []RecommendationItem
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	items, err := recommend.Recommend(u.store, userID)
	if err != nil {
		// Malformed reference data; abort with a diagnostic instead of
		// returning a silently wrong ranking.
		u.logger.Printf("recommendation failed for user %s: %v", userID, err)
		return nil, err
	}

	out := make([]RecommendationItem, 0, len(items))
	for _, it := range items {
		position := ""
		if j, ok := u.store.JobByID(it.JobID); ok {
			position = j.Position
		}
		out = append(out, RecommendationItem{JobID: it.JobID, Position: position, Score: it.Score})
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, u.ttl); err != nil {
			u.logger.Printf("cache write failed for user %s: %v", userID, err)
		}
	}

	return out, nil
}
