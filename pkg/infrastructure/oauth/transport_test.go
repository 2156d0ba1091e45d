package oauth

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
)

type stubSource struct {
	token        *Token
	tokenErr     error
	refreshed    *Token
	refreshErr   error
	refreshCalls int
}

func (s *stubSource) Token(ctx context.Context) (*Token, error) {
	return s.token, s.tokenErr
}

func (s *stubSource) ForceRefresh(ctx context.Context) (*Token, error) {
	s.refreshCalls++
	return s.refreshed, s.refreshErr
}

func TestTransport_SetsBearerHeader(t *testing.T) {
	var got string
	tr := &Transport{
		Source: &stubSource{token: &Token{AccessToken: "abc"}},
		Base: &mockTransport{DoFunc: func(req *http.Request) (*http.Response, error) {
			got = req.Header.Get("Authorization")
			return &http.Response{StatusCode: 200, Body: io.NopCloser(bytes.NewBuffer(nil))}, nil
		}},
	}

	req, _ := http.NewRequest("GET", "https://example.com/x", nil)
	resp, err := tr.RoundTrip(req)
	if err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
	resp.Body.Close()
	if got != "Bearer abc" {
		t.Errorf("Authorization = %q", got)
	}
	if req.Header.Get("Authorization") != "" {
		t.Error("original request mutated")
	}
}

func TestTransport_RetriesOnceAfter401(t *testing.T) {
	source := &stubSource{
		token:     &Token{AccessToken: "stale"},
		refreshed: &Token{AccessToken: "fresh"},
	}

	var headers []string
	tr := &Transport{
		Source: source,
		Base: &mockTransport{DoFunc: func(req *http.Request) (*http.Response, error) {
			headers = append(headers, req.Header.Get("Authorization"))
			status := 401
			if len(headers) > 1 {
				status = 200
			}
			return &http.Response{StatusCode: status, Body: io.NopCloser(bytes.NewBuffer(nil))}, nil
		}},
	}

	req, _ := http.NewRequest("GET", "https://example.com/x", nil)
	resp, err := tr.RoundTrip(req)
	if err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200 after retry", resp.StatusCode)
	}
	if len(headers) != 2 || headers[0] != "Bearer stale" || headers[1] != "Bearer fresh" {
		t.Errorf("headers = %v", headers)
	}
	if source.refreshCalls != 1 {
		t.Errorf("refresh calls = %d, want 1", source.refreshCalls)
	}
}

func TestTransport_TokenFailurePropagates(t *testing.T) {
	tr := &Transport{
		Source: &stubSource{tokenErr: ErrNotAuthenticated},
		Base: &mockTransport{DoFunc: func(req *http.Request) (*http.Response, error) {
			t.Fatal("request sent without a token")
			return nil, nil
		}},
	}

	req, _ := http.NewRequest("GET", "https://example.com/x", nil)
	_, err := tr.RoundTrip(req)
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("error = %v, want ErrNotAuthenticated", err)
	}
}
