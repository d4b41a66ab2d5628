package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/scottwatt/ITGportal-sub000/pkg/errors"
)

type stubCacheRepo struct {
	store   map[string][]byte
	deleted []string
}

func (s *stubCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	payload, ok := s.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

func (s *stubCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if s.store == nil {
		s.store = make(map[string][]byte)
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.store[key] = payload
	return nil
}

func (s *stubCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	s.deleted = append(s.deleted, pattern)
	return nil
}

func TestCacheServiceRoundTrip(t *testing.T) {
	repo := &stubCacheRepo{}
	svc := NewCacheService(repo, nil, time.Minute, zap.NewNop(), true)

	key := BoardKey("2025-03-10")
	svc.Set(context.Background(), key, map[string]string{"weekday": "MONDAY"})

	var cached map[string]string
	hit, err := svc.Get(context.Background(), key, &cached)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "MONDAY", cached["weekday"])

	hit, err = svc.Get(context.Background(), BoardKey("2025-03-11"), &cached)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheServiceInvalidation(t *testing.T) {
	repo := &stubCacheRepo{}
	svc := NewCacheService(repo, nil, time.Minute, zap.NewNop(), true)

	svc.InvalidateBoard(context.Background(), "2025-03-10")
	svc.InvalidateAllBoards(context.Background())
	assert.Equal(t, []string{"board:2025-03-10*", "board:*"}, repo.deleted)
}

func TestCacheServiceDisabled(t *testing.T) {
	repo := &stubCacheRepo{}
	svc := NewCacheService(repo, nil, time.Minute, zap.NewNop(), false)

	svc.Set(context.Background(), "k", "v")
	hit, err := svc.Get(context.Background(), "k", new(string))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Empty(t, repo.store)

	// A nil service is safe everywhere it is consulted.
	var nilSvc *CacheService
	assert.False(t, nilSvc.Enabled())
}
