package mocks

import (
	"context"

	"github.com/trekline/server/pkg/infrastructure/oauth"
	"github.com/trekline/server/pkg/integrations/strava"
)

// --- Mock KV Store ---

type MockKVStore struct {
	GetFunc    func(ctx context.Context, key string) ([]byte, bool, error)
	SetFunc    func(ctx context.Context, key string, value []byte) error
	DeleteFunc func(ctx context.Context, key string) error
}

func (m *MockKVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return nil, false, nil
}

func (m *MockKVStore) Set(ctx context.Context, key string, value []byte) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}
	return nil
}

func (m *MockKVStore) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}

// --- Mock Token Source ---

type MockTokenSource struct {
	TokenFunc        func(ctx context.Context) (*oauth.Token, error)
	ForceRefreshFunc func(ctx context.Context) (*oauth.Token, error)
}

func (m *MockTokenSource) Token(ctx context.Context) (*oauth.Token, error) {
	if m.TokenFunc != nil {
		return m.TokenFunc(ctx)
	}
	return &oauth.Token{AccessToken: "mock-access-token"}, nil
}

func (m *MockTokenSource) ForceRefresh(ctx context.Context) (*oauth.Token, error) {
	if m.ForceRefreshFunc != nil {
		return m.ForceRefreshFunc(ctx)
	}
	return &oauth.Token{AccessToken: "mock-refreshed-token"}, nil
}

// --- Mock Activity Feed ---

type MockActivityFeed struct {
	ListActivitiesFunc func(ctx context.Context, page int, after int64) ([]strava.Activity, error)
}

func (m *MockActivityFeed) ListActivities(ctx context.Context, page int, after int64) ([]strava.Activity, error) {
	if m.ListActivitiesFunc != nil {
		return m.ListActivitiesFunc(ctx, page, after)
	}
	return nil, nil
}
