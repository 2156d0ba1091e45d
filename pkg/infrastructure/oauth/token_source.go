package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	shared "github.com/trekline/server/pkg"
)

const stravaTokenURL = "https://www.strava.com/oauth/token"

// ErrNotAuthenticated is returned when no usable credential exists, or a
// refresh attempt could not produce one. Callers surface this as a
// "connect your account" condition rather than a transient failure.
var ErrNotAuthenticated = errors.New("not authenticated")

// Token represents the OAuth token structure we care about.
type Token struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	Expiry       time.Time `json:"expiry"`
}

// TokenSource returns a valid token.
// It is safe for concurrent use by multiple goroutines.
type TokenSource interface {
	Token(context.Context) (*Token, error)
	ForceRefresh(context.Context) (*Token, error)
}

// StoreTokenSource keeps the Strava token in the durable key-value store
// and refreshes it when needed.
type StoreTokenSource struct {
	store  shared.KVStore
	key    string
	client *http.Client
	mu     sync.Mutex
}

func NewStoreTokenSource(store shared.KVStore) *StoreTokenSource {
	return &StoreTokenSource{
		store:  store,
		key:    shared.KeyStravaToken,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Token returns a token, refreshing it proactively if it expires within
// the next minute.
func (s *StoreTokenSource) Token(ctx context.Context) (*Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if !tok.Expiry.IsZero() && time.Now().Add(1*time.Minute).After(tok.Expiry) {
		return s.refresh(ctx, tok.RefreshToken)
	}

	return tok, nil
}

// ForceRefresh forcibly refreshes the token regardless of expiry.
func (s *StoreTokenSource) ForceRefresh(ctx context.Context) (*Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return s.refresh(ctx, tok.RefreshToken)
}

// Save persists a token, replacing whatever was stored. Used by the
// connect tooling after the initial authorization exchange.
func (s *StoreTokenSource) Save(ctx context.Context, tok *Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(ctx, tok)
}

func (s *StoreTokenSource) load(ctx context.Context) (*Token, error) {
	raw, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: no stored credential", ErrNotAuthenticated)
	}

	var tok Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("%w: stored credential unreadable", ErrNotAuthenticated)
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("%w: missing access token", ErrNotAuthenticated)
	}
	if tok.RefreshToken == "" {
		return nil, fmt.Errorf("%w: missing refresh token", ErrNotAuthenticated)
	}
	return &tok, nil
}

// refresh performs the HTTP exchange for a new token and persists it.
// Callers must hold s.mu.
func (s *StoreTokenSource) refresh(ctx context.Context, refreshToken string) (*Token, error) {
	clientID, err := getSecret("client-id")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}
	clientSecret, err := getSecret("client-secret")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}

	data := url.Values{}
	data.Set("client_id", clientID)
	data.Set("client_secret", clientSecret)
	data.Set("grant_type", "refresh_token")
	data.Set("refresh_token", refreshToken)

	req, err := http.NewRequestWithContext(ctx, "POST", stravaTokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: refresh request failed: %v", ErrNotAuthenticated, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("%w: refresh failed with status %d", ErrNotAuthenticated, resp.StatusCode)
	}

	var result struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
		ExpiresAt    int64  `json:"expires_at"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode refresh response: %v", ErrNotAuthenticated, err)
	}

	newExpiry := time.Now().Add(time.Duration(result.ExpiresIn) * time.Second)
	if result.ExpiresAt != 0 {
		newExpiry = time.Unix(result.ExpiresAt, 0)
	}

	// Strava rotates refresh tokens; keep the old one only if the
	// response omitted a new one.
	newRefreshToken := result.RefreshToken
	if newRefreshToken == "" {
		newRefreshToken = refreshToken
	}

	tok := &Token{
		AccessToken:  result.AccessToken,
		RefreshToken: newRefreshToken,
		Expiry:       newExpiry,
	}
	if err := s.persist(ctx, tok); err != nil {
		return nil, err
	}
	return tok, nil
}

func (s *StoreTokenSource) persist(ctx context.Context, tok *Token) error {
	raw, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	if err := s.store.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

func getSecret(keyType string) (string, error) {
	// Environment variables use uppercase with underscores,
	// e.g. "client-id" becomes "STRAVA_CLIENT_ID".
	envVarName := "STRAVA_" + strings.ToUpper(strings.ReplaceAll(keyType, "-", "_"))

	value := os.Getenv(envVarName)
	if value == "" {
		return "", fmt.Errorf("environment variable %s not found", envVarName)
	}

	return value, nil
}
