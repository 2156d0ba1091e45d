package sync

import (
	"errors"
	"fmt"

	httputil "github.com/trekline/server/pkg/infrastructure/http"
	"github.com/trekline/server/pkg/infrastructure/oauth"
	"github.com/trekline/server/pkg/integrations/strava"
)

// Category buckets a failed sync into something the UI can explain.
type Category string

const (
	CategoryNotAuthenticated    Category = "not_authenticated"
	CategoryRateLimited         Category = "rate_limited"
	CategoryUnauthorized        Category = "unauthorized"
	CategoryInvalidResponse     Category = "invalid_response"
	CategoryNetworkError        Category = "network_error"
	CategoryProviderUnavailable Category = "provider_unavailable"
)

// Error is a categorized sync failure. The underlying error is preserved
// for logs; UserMessage is what a consumer should display.
type Error struct {
	Category Category
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Category, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage returns a short description suitable for direct display.
func (e *Error) UserMessage() string {
	switch e.Category {
	case CategoryNotAuthenticated:
		return "Connect your Strava account to sync activities."
	case CategoryRateLimited:
		return "Strava is limiting requests right now. Try again in a few minutes."
	case CategoryUnauthorized:
		return "Strava access was revoked. Please reconnect your account."
	case CategoryInvalidResponse:
		return "Strava returned a response we couldn't read."
	case CategoryProviderUnavailable:
		return "Strava is unavailable right now. Try again later."
	default:
		return "Couldn't reach Strava. Check your connection and try again."
	}
}

// Classify wraps err into a categorized *Error. Transport-level failures
// that match nothing more specific land in CategoryNetworkError.
func Classify(err error) *Error {
	var httpErr *httputil.HTTPError

	switch {
	case errors.Is(err, oauth.ErrNotAuthenticated):
		return &Error{Category: CategoryNotAuthenticated, Err: err}
	case errors.As(err, &httpErr):
		switch {
		case httpErr.StatusCode == 401:
			return &Error{Category: CategoryUnauthorized, Err: err}
		case httpErr.StatusCode == 429:
			return &Error{Category: CategoryRateLimited, Err: err}
		case httpErr.StatusCode >= 500:
			return &Error{Category: CategoryProviderUnavailable, Err: err}
		default:
			return &Error{Category: CategoryInvalidResponse, Err: err}
		}
	case errors.Is(err, strava.ErrMalformedResponse):
		return &Error{Category: CategoryInvalidResponse, Err: err}
	default:
		return &Error{Category: CategoryNetworkError, Err: err}
	}
}
