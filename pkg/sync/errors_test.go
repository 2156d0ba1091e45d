package sync

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	httputil "github.com/trekline/server/pkg/infrastructure/http"
	"github.com/trekline/server/pkg/infrastructure/oauth"
	"github.com/trekline/server/pkg/integrations/strava"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{
			name: "no token yet",
			err:  fmt.Errorf("list activities: %w", oauth.ErrNotAuthenticated),
			want: CategoryNotAuthenticated,
		},
		{
			name: "revoked access",
			err:  &httputil.HTTPError{StatusCode: 401, Status: "401 Unauthorized"},
			want: CategoryUnauthorized,
		},
		{
			name: "rate limited",
			err:  fmt.Errorf("page 3: %w", &httputil.HTTPError{StatusCode: 429, Status: "429 Too Many Requests"}),
			want: CategoryRateLimited,
		},
		{
			name: "provider down",
			err:  &httputil.HTTPError{StatusCode: 503, Status: "503 Service Unavailable"},
			want: CategoryProviderUnavailable,
		},
		{
			name: "unexpected client status",
			err:  &httputil.HTTPError{StatusCode: 404, Status: "404 Not Found"},
			want: CategoryInvalidResponse,
		},
		{
			name: "undecodable body",
			err:  fmt.Errorf("decode activities: %w", strava.ErrMalformedResponse),
			want: CategoryInvalidResponse,
		},
		{
			name: "transport failure",
			err:  errors.New("dial tcp: connection refused"),
			want: CategoryNetworkError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cerr := Classify(tt.err)
			assert.Equal(t, tt.want, cerr.Category)
			assert.ErrorIs(t, cerr, tt.err, "original error must stay reachable")
			assert.NotEmpty(t, cerr.UserMessage())
		})
	}
}

func TestErrorUserMessagesAreDistinct(t *testing.T) {
	categories := []Category{
		CategoryNotAuthenticated,
		CategoryRateLimited,
		CategoryUnauthorized,
		CategoryInvalidResponse,
		CategoryNetworkError,
		CategoryProviderUnavailable,
	}

	seen := make(map[string]Category)
	for _, c := range categories {
		msg := (&Error{Category: c, Err: errors.New("x")}).UserMessage()
		if prev, dup := seen[msg]; dup {
			t.Errorf("categories %s and %s share message %q", prev, c, msg)
		}
		seen[msg] = c
	}
}
