package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"trending-board/domain/dto"
	"trending-board/domain/repository"
	"trending-board/infrastructure/logger"
)

const (
	// DefaultRegionCode is used when no region is configured or submitted.
	DefaultRegionCode = "KR"
	// DefaultMaxResults is used when no result count is configured or submitted.
	DefaultMaxResults = 30

	maxResultsFloor = 1
	maxResultsCeil  = 50
)

// ITrendingUsecase serves the trending chart with per-tuple memoization.
type ITrendingUsecase interface {
	FetchTrending(ctx context.Context, apiKey, regionCode string, maxResults int) ([]dto.TrendingVideo, error)
	Refresh(ctx context.Context) error
}

type TrendingUsecase struct {
	trendingRepo repository.ITrending
	cache        repository.ITrendingCache
}

func NewTrendingUsecase(trendingRepo repository.ITrending, cache repository.ITrendingCache) ITrendingUsecase {
	return &TrendingUsecase{trendingRepo: trendingRepo, cache: cache}
}

// FetchTrending clamps the parameters, then serves from cache when the exact
// (apiKey, regionCode, maxResults) tuple was fetched before in this session.
// At most one upstream call is issued per distinct tuple.
func (u *TrendingUsecase) FetchTrending(ctx context.Context, apiKey, regionCode string, maxResults int) ([]dto.TrendingVideo, error) {
	if regionCode == "" {
		regionCode = DefaultRegionCode
	}
	if maxResults < maxResultsFloor {
		maxResults = maxResultsFloor
	}
	if maxResults > maxResultsCeil {
		maxResults = maxResultsCeil
	}

	q := dto.TrendingQuery{
		Part:       "snippet,statistics",
		Chart:      "mostPopular",
		RegionCode: regionCode,
		MaxResults: maxResults,
		Key:        apiKey,
	}

	key := cacheKey(q)
	if items, ok := u.cache.Get(ctx, key); ok {
		logger.GetLogger().WithField("region", regionCode).Debug("Trending served from cache")
		return items, nil
	}

	items, err := u.trendingRepo.FetchTrending(ctx, q)
	if err != nil {
		return nil, err
	}
	u.cache.Set(ctx, key, items)
	return items, nil
}

// Refresh invalidates the entire cache so every tuple is re-fetched on its
// next request.
func (u *TrendingUsecase) Refresh(ctx context.Context) error {
	return u.cache.InvalidateAll(ctx)
}

// cacheKey hashes the exact parameter tuple; hashing keeps the API key out of
// shared cache backends while preserving exact-match semantics.
func cacheKey(q dto.TrendingQuery) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d", q.Key, q.RegionCode, q.MaxResults)))
	return hex.EncodeToString(sum[:])
}
