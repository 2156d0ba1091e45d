// Package tracker is the engine's front door: it combines the route
// progress store, the activity sync engine and the catalog into the
// operations consumers call.
package tracker

import (
	"context"
	"log/slog"

	"github.com/trekline/server/pkg/geo"
	"github.com/trekline/server/pkg/progress"
	"github.com/trekline/server/pkg/routes"
	activitysync "github.com/trekline/server/pkg/sync"
)

type Tracker struct {
	store  *progress.Store
	engine *activitysync.Engine
	logger *slog.Logger
}

func New(store *progress.Store, engine *activitysync.Engine, logger *slog.Logger) *Tracker {
	return &Tracker{
		store:  store,
		engine: engine,
		logger: logger.With("component", "tracker"),
	}
}

// ActiveRoute returns the currently active route.
func (t *Tracker) ActiveRoute() routes.Route {
	return t.store.ActiveRoute()
}

// Routes returns the full catalog in display order.
func (t *Tracker) Routes() []routes.Route {
	return routes.All()
}

// Progress recomputes the current snapshot. Completion reached passively
// (without a route switch) is banked here.
func (t *Tracker) Progress(ctx context.Context) (progress.Snapshot, error) {
	st, err := t.engine.State(ctx)
	if err != nil {
		return progress.Snapshot{}, err
	}

	snap := progress.Project(t.store.State(), st.TotalMiles, st.LatestActivityMiles)

	if snap.IsComplete && !t.store.IsCompleted(snap.Route.ID) {
		if err := t.store.MarkComplete(ctx, snap.Route.ID); err != nil {
			t.logger.Warn("Failed to record route completion", "route_id", snap.Route.ID, "error", err)
		}
	}

	return snap, nil
}

// PathSplit returns the completed and remaining polylines of the active
// route at the current progress.
func (t *Tracker) PathSplit(ctx context.Context) (completed, remaining []geo.Coordinate, err error) {
	st, err := t.engine.State(ctx)
	if err != nil {
		return nil, nil, err
	}
	completed, remaining = progress.SplitPath(t.store.State(), st.TotalMiles)
	return completed, remaining, nil
}

// SwitchRoute activates newRouteID, baselining it at the current lifetime
// total so only future miles count toward it.
func (t *Tracker) SwitchRoute(ctx context.Context, newRouteID string) error {
	st, err := t.engine.State(ctx)
	if err != nil {
		return err
	}
	return t.store.Switch(ctx, newRouteID, st.TotalMiles)
}

// Sync runs one sync invocation against the activity feed.
func (t *Tracker) Sync(ctx context.Context) activitysync.Result {
	return t.engine.Sync(ctx)
}

// NearestPointsOfInterest returns up to limit POIs closest to the current
// position on the active route.
func (t *Tracker) NearestPointsOfInterest(ctx context.Context, limit int) ([]routes.Landmark, error) {
	st, err := t.engine.State(ctx)
	if err != nil {
		return nil, err
	}
	return progress.NearestPointsOfInterest(t.store.State(), st.TotalMiles, limit), nil
}

// DebugReset re-arms the active route from zero. Reachable only from the
// trekctl tooling.
func (t *Tracker) DebugReset(ctx context.Context) error {
	st, err := t.engine.State(ctx)
	if err != nil {
		return err
	}
	return t.store.DebugReset(ctx, st.TotalMiles)
}
