package youtube_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trending-board/domain/dto"
	"trending-board/infrastructure/clients/youtube"
)

func query() dto.TrendingQuery {
	return dto.TrendingQuery{
		Part:       "snippet,statistics",
		Chart:      "mostPopular",
		RegionCode: "KR",
		MaxResults: 30,
		Key:        "test-key",
	}
}

func TestFetchTrending_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "snippet,statistics", r.URL.Query().Get("part"))
		assert.Equal(t, "mostPopular", r.URL.Query().Get("chart"))
		assert.Equal(t, "KR", r.URL.Query().Get("regionCode"))
		assert.Equal(t, "30", r.URL.Query().Get("maxResults"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":"abc","snippet":{"title":"T","channelTitle":"C","thumbnails":{"medium":{"url":"u"}}},"statistics":{"viewCount":"12345"}}]}`))
	}))
	defer srv.Close()

	client := youtube.NewClientWithEndpoint(srv.URL, nil)
	items, err := client.FetchTrending(context.Background(), query())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "abc", items[0].ID)
	assert.Equal(t, "T", items[0].Snippet.Title)
	assert.Equal(t, "C", items[0].Snippet.ChannelTitle)
	assert.Equal(t, "u", items[0].Snippet.Thumbnails.Medium.URL)
	assert.Equal(t, "12345", items[0].Statistics.ViewCount)
}

func TestFetchTrending_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	client := youtube.NewClientWithEndpoint(srv.URL, nil)
	_, err := client.FetchTrending(context.Background(), query())
	require.Error(t, err)

	var apiErr *youtube.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "quota exceeded", apiErr.Body)
}

func TestFetchTrending_APIErrorRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	client := youtube.NewClientWithEndpoint(srv.URL, nil)
	_, err := client.FetchTrending(context.Background(), query())

	var apiErr *youtube.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream exploded", apiErr.Body)
}

func TestFetchTrending_MissingItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := youtube.NewClientWithEndpoint(srv.URL, nil)
	_, err := client.FetchTrending(context.Background(), query())
	assert.ErrorIs(t, err, youtube.ErrMalformedResponse)
}

func TestFetchTrending_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := youtube.NewClientWithEndpoint(srv.URL, &http.Client{Timeout: 20 * time.Millisecond})
	_, err := client.FetchTrending(context.Background(), query())
	assert.ErrorIs(t, err, youtube.ErrTimeout)
}

func TestFetchTrending_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := youtube.NewClientWithEndpoint(srv.URL, nil)
	_, err := client.FetchTrending(context.Background(), query())
	assert.ErrorIs(t, err, youtube.ErrNetwork)
}
