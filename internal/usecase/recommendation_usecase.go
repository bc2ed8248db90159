package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillpath/internal/catalog"
	"skillpath/internal/domain/career"
	"skillpath/internal/domain/matching"
	"skillpath/internal/logger"

	"go.uber.org/zap"
)

type RecommendationUsecase interface {
	Recommend(ctx context.Context, q career.Query) (career.MatchResult, error)
}

type Recommendation struct {
	catalog catalog.Source
	cache   RecommendationCache
	ttl     time.Duration
	logger  *zap.Logger
}

func NewRecommendationUsecase(src catalog.Source, cache RecommendationCache, ttl time.Duration, logger *zap.Logger) *Recommendation {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recommendation{catalog: src, cache: cache, ttl: ttl, logger: logger}
}

func (u *Recommendation) Recommend(ctx context.Context, q career.Query) (career.MatchResult, error) {
	if q.Skills == nil || q.Interests == nil {
		return career.MatchResult{}, ErrInvalidInput
	}

	cat, err := u.catalog.Load(ctx)
	if err != nil {
		return career.MatchResult{}, catalogError(err)
	}

	key := RecommendationCacheKey(cat.Version, q)
	if u.cache != nil {
		var cached career.MatchResult
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			u.logger.Warn("recommendation cache read failed", zap.String("key", key), zap.Error(err))
		} else if hit {
			u.logger.Debug("recommendation cache hit", zap.String("key", key))
			return cached, nil
		}
	}

	res, err := matching.Match(cat.Records, q)
	if err != nil {
		return career.MatchResult{}, err
	}

	fields := []zap.Field{
		logger.Terms("skills", q.Skills, 10),
		logger.Terms("interests", q.Interests, 10),
		zap.Int("catalog_size", cat.Len()),
		zap.Int("score", res.Score),
	}
	if res.Matched() {
		fields = append(fields, zap.String("career", res.Career.Name))
	}
	u.logger.Debug("recommendation computed", fields...)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, res, u.ttl); err != nil {
			u.logger.Warn("recommendation cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return res, nil
}

// catalogError keeps catalog error kinds intact and marks anything else
// a source returns as internal.
func catalogError(err error) error {
	if errors.Is(err, career.ErrCatalogUnavailable) || errors.Is(err, career.ErrInvalidCatalogEntry) {
		return err
	}
	return fmt.Errorf("%w: load catalog: %v", ErrInternal, err)
}
