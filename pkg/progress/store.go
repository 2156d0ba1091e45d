// Package progress owns the per-route progress record and projects it,
// together with the synced lifetime totals, into the view consumers read.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	shared "github.com/trekline/server/pkg"
	"github.com/trekline/server/pkg/routes"
)

// State is the persisted route-progress record. BaselineMiles is the
// lifetime total captured at the moment the active route was selected; it
// changes only on the next switch.
type State struct {
	ActiveRouteID     string   `json:"active_route_id"`
	BaselineMiles     float64  `json:"baseline_miles"`
	CompletedRouteIDs []string `json:"completed_route_ids"`
}

// Store is the single owner of the route-progress record. Every mutation
// is written through to the durable store immediately.
type Store struct {
	kv     shared.KVStore
	logger *slog.Logger

	mu    sync.Mutex
	state State
}

// NewStore loads the persisted record, initializing a fresh one on first
// use with the default route and a zero baseline.
func NewStore(ctx context.Context, kv shared.KVStore, logger *slog.Logger) (*Store, error) {
	s := &Store{kv: kv, logger: logger.With("component", "progress")}

	raw, ok, err := kv.Get(ctx, shared.KeyRouteProgress)
	if err != nil {
		return nil, fmt.Errorf("read progress state: %w", err)
	}
	if !ok {
		s.state = State{ActiveRouteID: routes.DefaultID}
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		return s, nil
	}

	if err := json.Unmarshal(raw, &s.state); err != nil {
		return nil, fmt.Errorf("decode progress state: %w", err)
	}
	// A persisted id from an older catalog may no longer resolve.
	if _, found := routes.Lookup(s.state.ActiveRouteID); !found {
		s.logger.Warn("Persisted route id unknown, falling back to default",
			"route_id", s.state.ActiveRouteID)
		s.state.ActiveRouteID = routes.DefaultID
	}
	return s, nil
}

// State returns a copy of the current record.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state
	out.CompletedRouteIDs = append([]string(nil), s.state.CompletedRouteIDs...)
	return out
}

// ActiveRoute resolves the active route, defaulting when stale.
func (s *Store) ActiveRoute() routes.Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return routes.Resolve(s.state.ActiveRouteID)
}

// ProgressMiles derives the miles accrued on the active route. Never
// negative, whatever the baseline/total relationship.
func (s *Store) ProgressMiles(totalMiles float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clampMiles(totalMiles - s.state.BaselineMiles)
}

// Switch activates newRouteID and re-baselines at currentTotalMiles, so
// only miles accrued after the switch count toward the new route. If the
// outgoing route had already reached its nominal total it is banked into
// the completed set first.
func (s *Store) Switch(ctx context.Context, newRouteID string, currentTotalMiles float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := routes.Resolve(s.state.ActiveRouteID)
	if clampMiles(currentTotalMiles-s.state.BaselineMiles) >= current.NominalTotalMiles {
		s.addCompleted(current.ID)
	}

	next := routes.Resolve(newRouteID)
	s.state.ActiveRouteID = next.ID
	s.state.BaselineMiles = currentTotalMiles

	s.logger.Info("Switched route", "route_id", next.ID, "baseline_miles", currentTotalMiles)
	return s.persist(ctx)
}

// MarkComplete idempotently adds routeID to the completed set. Used when
// completion is detected passively rather than via a switch.
func (s *Store) MarkComplete(ctx context.Context, routeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.addCompleted(routeID) {
		return nil
	}
	return s.persist(ctx)
}

// IsCompleted reports whether routeID is in the completed set.
func (s *Store) IsCompleted(routeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.state.CompletedRouteIDs {
		if id == routeID {
			return true
		}
	}
	return false
}

// DebugReset re-arms the active route from zero without touching lifetime
// totals: completed set cleared, baseline moved to currentTotalMiles.
// Tooling hook only; nothing on the serving surface reaches it.
func (s *Store) DebugReset(ctx context.Context, currentTotalMiles float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.CompletedRouteIDs = nil
	s.state.BaselineMiles = currentTotalMiles

	s.logger.Warn("Debug reset applied", "baseline_miles", currentTotalMiles)
	return s.persist(ctx)
}

// addCompleted returns false when routeID was already present.
// Callers must hold s.mu.
func (s *Store) addCompleted(routeID string) bool {
	for _, id := range s.state.CompletedRouteIDs {
		if id == routeID {
			return false
		}
	}
	s.state.CompletedRouteIDs = append(s.state.CompletedRouteIDs, routeID)
	return true
}

// persist writes the whole record as one blob. Callers must hold s.mu.
func (s *Store) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("encode progress state: %w", err)
	}
	if err := s.kv.Set(ctx, shared.KeyRouteProgress, raw); err != nil {
		return fmt.Errorf("write progress state: %w", err)
	}
	return nil
}

func clampMiles(miles float64) float64 {
	if miles < 0 {
		return 0
	}
	return miles
}
