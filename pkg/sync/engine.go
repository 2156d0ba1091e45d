// Package sync keeps the lifetime distance totals synchronized against the
// external activity feed, without double-counting an activity or losing
// one to a failed page fetch.
package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	shared "github.com/trekline/server/pkg"
	"github.com/trekline/server/pkg/integrations/strava"
)

const (
	// safetyWindow backs the incremental cursor off the last sync mark.
	// The provider's "recently created" ordering can lag, so a cursor at
	// exactly LastSyncedAt risks missing activities uploaded late. No
	// documented upper bound exists for that lag; this is a tuning value.
	safetyWindow = 2 * time.Hour

	// defaultPageDelay spaces page fetches to stay under the provider's
	// rate ceiling. Skipped after the final page.
	defaultPageDelay = 500 * time.Millisecond
)

// runTypes are the activity types that count toward route progress.
var runTypes = map[string]bool{
	"Run":        true,
	"TrailRun":   true,
	"VirtualRun": true,
}

// ActivityFeed is the paginated external activity feed, newest first.
type ActivityFeed interface {
	ListActivities(ctx context.Context, page int, after int64) ([]strava.Activity, error)
}

// Result is the caller-visible outcome of one sync invocation. GainMiles
// is the increase in lifetime total this invocation produced; it is
// forced to 0 on failure and on the first-ever sync.
type Result struct {
	GainMiles float64
	Err       *Error
}

// Engine owns the persisted sync state. At most one sync runs at a time;
// a concurrently requested sync no-ops immediately.
type Engine struct {
	feed      ActivityFeed
	store     shared.KVStore
	logger    *slog.Logger
	pageDelay time.Duration
	counts    func(activityType string) bool

	mu sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithPageDelay overrides the inter-page delay (tests use 0).
func WithPageDelay(d time.Duration) Option {
	return func(e *Engine) { e.pageDelay = d }
}

// WithActivityFilter overrides which activity types count.
func WithActivityFilter(counts func(activityType string) bool) Option {
	return func(e *Engine) { e.counts = counts }
}

func NewEngine(feed ActivityFeed, store shared.KVStore, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		feed:      feed,
		store:     store,
		logger:    logger.With("component", "sync"),
		pageDelay: defaultPageDelay,
		counts:    func(t string) bool { return runTypes[t] },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the last committed sync state; a fresh empty state when
// nothing has ever synced.
func (e *Engine) State(ctx context.Context) (*State, error) {
	st, err := e.loadState(ctx)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return newState(), nil
	}
	return st, nil
}

// Sync brings the stored state up to date against the feed. The commit is
// all-or-nothing: any failure leaves the previously committed state
// untouched and reports gain 0.
func (e *Engine) Sync(ctx context.Context) Result {
	if !e.mu.TryLock() {
		e.logger.Debug("Sync already in progress, skipping")
		return Result{}
	}
	defer e.mu.Unlock()

	logger := e.logger.With("sync_id", uuid.NewString())

	prior, err := e.loadState(ctx)
	if err != nil {
		cerr := Classify(err)
		logger.Error("Sync failed reading state", "category", cerr.Category, "error", err)
		return Result{Err: cerr}
	}

	firstEver := prior == nil || len(prior.SeenActivityIDs) == 0

	work := newState()
	if prior != nil {
		work = prior.clone()
	}
	priorTotal := work.TotalMiles

	if firstEver {
		logger.Info("Starting full sync")
		err = e.fullSync(ctx, logger, work)
	} else {
		logger.Info("Starting incremental sync", "last_synced_at", work.LastSyncedAt)
		err = e.incrementalSync(ctx, logger, work)
	}
	if err != nil {
		cerr := Classify(err)
		logger.Error("Sync failed", "category", cerr.Category, "error", err)
		return Result{Err: cerr}
	}

	work.LastSyncedAt = time.Now()

	// Best-effort refresh of the "last run" figure even when the
	// incremental window found nothing new. Failures never surface.
	e.refreshLatest(ctx, logger, work)

	if err := e.saveState(ctx, work); err != nil {
		cerr := Classify(err)
		logger.Error("Sync failed committing state", "category", cerr.Category, "error", err)
		return Result{Err: cerr}
	}

	gain := work.TotalMiles - priorTotal
	if firstEver {
		// No meaningful baseline existed before the first connection.
		gain = 0
	}

	logger.Info("Sync complete",
		"gain_miles", gain,
		"total_miles", work.TotalMiles,
		"activity_count", work.ActivityCount,
	)
	return Result{GainMiles: gain}
}

// fullSync pages through the entire feed from the beginning.
func (e *Engine) fullSync(ctx context.Context, logger *slog.Logger, work *State) error {
	for page := 1; ; page++ {
		activities, err := e.feed.ListActivities(ctx, page, 0)
		if err != nil {
			return fmt.Errorf("page %d: %w", page, err)
		}

		added := e.fold(work, activities)
		logger.Debug("Fetched page", "page", page, "activities", len(activities), "added", added)

		if len(activities) < strava.PageSize {
			return nil
		}
		if err := e.pause(ctx); err != nil {
			return err
		}
	}
}

// incrementalSync pages from a cursor just before the last sync mark,
// skipping anything already in the dedupe set.
func (e *Engine) incrementalSync(ctx context.Context, logger *slog.Logger, work *State) error {
	after := work.LastSyncedAt.Add(-safetyWindow).Unix()
	if after < 0 {
		after = 0
	}

	for page := 1; ; page++ {
		activities, err := e.feed.ListActivities(ctx, page, after)
		if err != nil {
			return fmt.Errorf("page %d: %w", page, err)
		}

		added := e.fold(work, activities)
		logger.Debug("Fetched page", "page", page, "activities", len(activities), "added", added)

		if len(activities) < strava.PageSize {
			return nil
		}
		if err := e.pause(ctx); err != nil {
			return err
		}
	}
}

// fold accumulates genuinely-new counted activities into work. It updates
// LatestActivityMiles only when an activity newer than the recorded
// latest shows up, so a late upload of an older activity leaves the
// figure untouched.
func (e *Engine) fold(work *State, activities []strava.Activity) int {
	added := 0
	for _, a := range activities {
		if !e.counts(a.Type) {
			continue
		}
		if work.SeenActivityIDs[a.ID] {
			continue
		}
		work.SeenActivityIDs[a.ID] = true
		work.TotalMiles += a.Miles()
		work.ActivityCount++
		added++

		if a.StartDate.After(work.LatestActivityStart) {
			work.LatestActivityStart = a.StartDate
			work.LatestActivityMiles = a.Miles()
		}
	}
	return added
}

// refreshLatest fetches the single most recent page with no cursor and
// updates the most-recent-activity distance. Best effort only.
func (e *Engine) refreshLatest(ctx context.Context, logger *slog.Logger, work *State) {
	activities, err := e.feed.ListActivities(ctx, 1, 0)
	if err != nil {
		logger.Debug("Latest-activity refresh failed, ignoring", "error", err)
		return
	}
	// Feed is newest first; the first counted entry is the latest run.
	for _, a := range activities {
		if e.counts(a.Type) {
			work.LatestActivityMiles = a.Miles()
			work.LatestActivityStart = a.StartDate
			return
		}
	}
}

func (e *Engine) pause(ctx context.Context) error {
	if e.pageDelay <= 0 {
		return nil
	}
	select {
	case <-time.After(e.pageDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Engine) loadState(ctx context.Context) (*State, error) {
	raw, ok, err := e.store.Get(ctx, shared.KeyActivitySync)
	if err != nil {
		return nil, fmt.Errorf("read sync state: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("decode sync state: %w", err)
	}
	if st.SeenActivityIDs == nil {
		st.SeenActivityIDs = make(map[int64]bool)
	}
	return &st, nil
}

func (e *Engine) saveState(ctx context.Context, st *State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode sync state: %w", err)
	}
	if err := e.store.Set(ctx, shared.KeyActivitySync, raw); err != nil {
		return fmt.Errorf("write sync state: %w", err)
	}
	return nil
}
