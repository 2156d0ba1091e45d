package sync

import "time"

// State is the persisted record of everything already folded in from the
// activity feed. It is committed as one blob: a failed sync never writes
// a partial update.
type State struct {
	// TotalMiles is the lifetime distance across all counted activities.
	TotalMiles float64 `json:"total_miles"`
	// ActivityCount is the lifetime number of counted activities.
	ActivityCount int64 `json:"activity_count"`
	// LatestActivityMiles is the distance of the most recent single
	// counted activity.
	LatestActivityMiles float64 `json:"latest_activity_miles"`
	// LatestActivityStart is the start time of that activity. Folds only
	// advance the figure: a late-uploaded older activity never overwrites
	// a newer one already recorded.
	LatestActivityStart time.Time `json:"latest_activity_start"`
	// LastSyncedAt marks the newest activity boundary already folded in.
	LastSyncedAt time.Time `json:"last_synced_at"`
	// SeenActivityIDs is the dedupe set of already-counted activity ids.
	SeenActivityIDs map[int64]bool `json:"seen_activity_ids"`
}

func newState() *State {
	return &State{SeenActivityIDs: make(map[int64]bool)}
}

func (s *State) clone() *State {
	out := *s
	out.SeenActivityIDs = make(map[int64]bool, len(s.SeenActivityIDs))
	for id, v := range s.SeenActivityIDs {
		out.SeenActivityIDs[id] = v
	}
	return &out
}
