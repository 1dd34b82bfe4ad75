package repository

import (
	"context"

	"trending-board/domain/dto"
)

// ITrending fetches the trending chart from the upstream video API.
type ITrending interface {
	FetchTrending(ctx context.Context, q dto.TrendingQuery) ([]dto.TrendingVideo, error)
}

// ITrendingCache memoizes fetched results keyed by the exact query tuple.
// A hit requires an exact key match; InvalidateAll drops every entry, not just
// the current key.
type ITrendingCache interface {
	Get(ctx context.Context, key string) ([]dto.TrendingVideo, bool)
	Set(ctx context.Context, key string, items []dto.TrendingVideo)
	InvalidateAll(ctx context.Context) error
}
