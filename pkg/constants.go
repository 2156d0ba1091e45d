package shared

const (
	ServiceName = "trekline"

	// Keys for the persisted state records. Each record is one JSON blob
	// under one key; there are no field-level partial writes.
	KeyRouteProgress = "route_progress_state"
	KeyActivitySync  = "activity_sync_state"
	KeyStravaToken   = "strava_token"

	// MetersPerMile converts provider distances (meters) to display miles.
	// The conversion happens exactly once, at the feed-client boundary.
	MetersPerMile = 1609.344
)
