package progress

import (
	"testing"

	"github.com/trekline/server/pkg/routes"
)

func TestProject_OriginOverrideNearStart(t *testing.T) {
	st := State{ActiveRouteID: "hadrians-wall"}

	// Below the threshold the nearest-landmark answer is suppressed in
	// favor of the origin label.
	snap := Project(st, 1.5, 1.5)
	if snap.NearestLocationName != "Wallsend" {
		t.Errorf("nearest = %q, want origin label Wallsend", snap.NearestLocationName)
	}

	// Past the threshold the closest curated landmark wins.
	snap = Project(st, 16, 3)
	if snap.NearestLocationName != "Heddon-on-the-Wall" {
		t.Errorf("nearest = %q, want Heddon-on-the-Wall", snap.NearestLocationName)
	}
}

func TestProject_PercentAndCompletion(t *testing.T) {
	st := State{ActiveRouteID: "hadrians-wall"}

	snap := Project(st, 42, 0)
	if snap.PercentComplete != 50 {
		t.Errorf("percent = %.1f, want 50", snap.PercentComplete)
	}
	if snap.IsComplete {
		t.Error("route reported complete at half distance")
	}

	snap = Project(st, 84, 0)
	if !snap.IsComplete {
		t.Error("route not complete at nominal total")
	}

	// Overshoot clamps the percentage but keeps the completion flag.
	snap = Project(st, 120, 0)
	if snap.PercentComplete != 100 || !snap.IsComplete {
		t.Errorf("overshoot: percent=%.1f complete=%v", snap.PercentComplete, snap.IsComplete)
	}
}

func TestProject_BaselineClamp(t *testing.T) {
	st := State{ActiveRouteID: "hadrians-wall", BaselineMiles: 100}

	snap := Project(st, 40, 0)
	if snap.ProgressMiles != 0 {
		t.Errorf("progress = %.1f, want 0 when total is below baseline", snap.ProgressMiles)
	}
	if snap.Coordinate != snap.Route.Path[0] {
		t.Errorf("coordinate = %v, want route start", snap.Coordinate)
	}
}

func TestProject_StaleRouteFallsBack(t *testing.T) {
	st := State{ActiveRouteID: "no-longer-in-catalog"}

	snap := Project(st, 10, 0)
	if snap.Route.ID != routes.DefaultID {
		t.Errorf("route = %s, want default", snap.Route.ID)
	}
}

func TestProject_UpcomingLandmarks(t *testing.T) {
	st := State{ActiveRouteID: "camino-frances"}

	snap := Project(st, 120, 0)
	up := snap.UpcomingLandmarks
	if len(up) != maxUpcomingLandmarks {
		t.Fatalf("upcoming = %d entries, want cap of %d", len(up), maxUpcomingLandmarks)
	}
	if up[0].ID != "burgos" {
		t.Errorf("first upcoming = %s, want burgos (next ahead of mile 120)", up[0].ID)
	}
	for i := 1; i < len(up); i++ {
		if up[i].MilesFromStart < up[i-1].MilesFromStart {
			t.Error("upcoming landmarks not ascending")
		}
	}
	for _, lm := range up {
		if lm.MilesFromStart <= 120 {
			t.Errorf("landmark %s at %.1f is not ahead of progress", lm.ID, lm.MilesFromStart)
		}
	}
}

func TestProject_UpcomingEmptyWhenDone(t *testing.T) {
	st := State{ActiveRouteID: "hadrians-wall"}
	snap := Project(st, 84, 0)
	if len(snap.UpcomingLandmarks) != 0 {
		t.Errorf("upcoming at completion = %v, want empty", snap.UpcomingLandmarks)
	}
}

func TestNearestPointsOfInterest(t *testing.T) {
	st := State{ActiveRouteID: "hadrians-wall"}

	pois := NearestPointsOfInterest(st, 38, 3)
	if len(pois) != 3 {
		t.Fatalf("got %d POIs, want 3", len(pois))
	}
	if pois[0].ID != "sycamore-gap" {
		t.Errorf("closest POI = %s, want sycamore-gap at mile 38", pois[0].ID)
	}

	// Non-positive limit uses the default.
	pois = NearestPointsOfInterest(st, 38, 0)
	if len(pois) != defaultPOILimit {
		t.Errorf("default limit returned %d, want %d", len(pois), defaultPOILimit)
	}

	// A limit beyond the list returns everything.
	all := NearestPointsOfInterest(st, 38, 1000)
	route := routes.Resolve("hadrians-wall")
	if len(all) != len(route.PointsOfInterest) {
		t.Errorf("oversized limit returned %d, want %d", len(all), len(route.PointsOfInterest))
	}
}

func TestSplitPath(t *testing.T) {
	st := State{ActiveRouteID: "hadrians-wall"}

	completed, remaining := SplitPath(st, 42)
	if len(completed) == 0 || len(remaining) == 0 {
		t.Fatal("empty polyline halves")
	}
	if completed[len(completed)-1] != remaining[0] {
		t.Error("halves do not share the split point")
	}

	route := routes.Resolve("hadrians-wall")
	if completed[0] != route.Path[0] {
		t.Error("completed half does not start at the route start")
	}
	if remaining[len(remaining)-1] != route.Path[len(route.Path)-1] {
		t.Error("remaining half does not end at the route end")
	}
}
