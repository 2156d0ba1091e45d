package progress

import (
	"sort"

	"github.com/trekline/server/pkg/geo"
	"github.com/trekline/server/pkg/routes"
)

const (
	// originThresholdMiles: below this much progress the nearest-landmark
	// answer is usually misleadingly far away, so we report the route's
	// origin label instead.
	originThresholdMiles = 3.0

	// maxUpcomingLandmarks caps the "ahead" list for display.
	maxUpcomingLandmarks = 5

	// defaultPOILimit is used when a caller asks for a non-positive
	// number of points of interest.
	defaultPOILimit = 3
)

// Snapshot is the externally consumed view of route progress. It is
// recomputed on demand and never persisted.
type Snapshot struct {
	Route               routes.Route      `json:"route"`
	ProgressMiles       float64           `json:"progress_miles"`
	PercentComplete     float64           `json:"percent_complete"`
	Coordinate          geo.Coordinate    `json:"coordinate"`
	NearestLocationName string            `json:"nearest_location_name"`
	IsComplete          bool              `json:"is_complete"`
	UpcomingLandmarks   []routes.Landmark `json:"upcoming_landmarks"`
	TotalMiles          float64           `json:"total_miles"`
	LatestActivityMiles float64           `json:"latest_activity_miles"`
}

// Project combines the route-progress record with the synced lifetime
// totals into a Snapshot.
func Project(st State, totalMiles, latestActivityMiles float64) Snapshot {
	route := routes.Resolve(st.ActiveRouteID)
	progress := clampMiles(totalMiles - st.BaselineMiles)

	percent := 0.0
	if route.NominalTotalMiles > 0 {
		percent = progress / route.NominalTotalMiles * 100
		if percent > 100 {
			percent = 100
		}
	}

	nearest := route.OriginLabel
	if progress >= originThresholdMiles {
		if lm, ok := geo.NearestByMiles(route.Landmarks, landmarkMiles, progress); ok {
			nearest = lm.Name
		}
	}

	return Snapshot{
		Route:               route,
		ProgressMiles:       progress,
		PercentComplete:     percent,
		Coordinate:          geo.PositionAt(progress, route.NominalTotalMiles, route.Path),
		NearestLocationName: nearest,
		IsComplete:          progress >= route.NominalTotalMiles,
		UpcomingLandmarks:   upcoming(route.Landmarks, progress),
		TotalMiles:          totalMiles,
		LatestActivityMiles: latestActivityMiles,
	}
}

// SplitPath returns the completed and remaining polylines for the active
// route at the given lifetime total.
func SplitPath(st State, totalMiles float64) (completed, remaining []geo.Coordinate) {
	route := routes.Resolve(st.ActiveRouteID)
	progress := clampMiles(totalMiles - st.BaselineMiles)
	return geo.Split(progress, route.NominalTotalMiles, route.Path)
}

// NearestPointsOfInterest returns up to limit POIs ordered by how close
// their distance-from-start is to the current progress.
func NearestPointsOfInterest(st State, totalMiles float64, limit int) []routes.Landmark {
	if limit <= 0 {
		limit = defaultPOILimit
	}

	route := routes.Resolve(st.ActiveRouteID)
	progress := clampMiles(totalMiles - st.BaselineMiles)

	pois := append([]routes.Landmark(nil), route.PointsOfInterest...)
	sort.SliceStable(pois, func(i, j int) bool {
		return absDiff(pois[i].MilesFromStart, progress) < absDiff(pois[j].MilesFromStart, progress)
	})

	if len(pois) > limit {
		pois = pois[:limit]
	}
	return pois
}

// upcoming returns the landmarks still ahead of progress, nearest first,
// capped for display.
func upcoming(landmarks []routes.Landmark, progress float64) []routes.Landmark {
	var ahead []routes.Landmark
	for _, lm := range landmarks {
		if lm.MilesFromStart > progress {
			ahead = append(ahead, lm)
		}
	}
	sort.SliceStable(ahead, func(i, j int) bool {
		return ahead[i].MilesFromStart < ahead[j].MilesFromStart
	})
	if len(ahead) > maxUpcomingLandmarks {
		ahead = ahead[:maxUpcomingLandmarks]
	}
	return ahead
}

func landmarkMiles(lm routes.Landmark) float64 {
	return lm.MilesFromStart
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
