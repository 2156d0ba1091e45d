// Package geo maps a scalar progress distance onto a multi-segment
// geographic path. All functions are pure and never fail: short or empty
// paths degrade to boundary coordinates, since a missing position is worse
// for callers than an approximate one.
package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

const earthRadiusMeters = 6371000.0

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Distance returns the great-circle distance between two coordinates in meters.
func Distance(a, b Coordinate) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p1.Distance(p2).Radians() * earthRadiusMeters
}

// PathLength returns the sum of great-circle segment lengths in meters.
func PathLength(path []Coordinate) float64 {
	total := 0.0
	for i := 0; i < len(path)-1; i++ {
		total += Distance(path[i], path[i+1])
	}
	return total
}

// PositionAt maps progress onto the path. The progress value and
// nominalTotal share whatever unit the route advertises; the geometric
// length of the path is deliberately kept out of the fraction so that 0
// always lands on the first coordinate and nominalTotal on the last, even
// when the waypoints only approximate the real road.
func PositionAt(progress, nominalTotal float64, path []Coordinate) Coordinate {
	if len(path) == 0 {
		return Coordinate{}
	}
	if len(path) == 1 {
		return path[0]
	}

	// The boundary fractions must land on the exact endpoint coordinates;
	// interpolating the final segment at fraction 1 does not round-trip
	// in floats.
	f := fractionOf(progress, nominalTotal)
	if f <= 0 {
		return path[0]
	}
	if f >= 1 {
		return path[len(path)-1]
	}

	target := f * PathLength(path)

	accum := 0.0
	for i := 0; i < len(path)-1; i++ {
		seg := Distance(path[i], path[i+1])
		if accum+seg >= target {
			if seg == 0 {
				return path[i]
			}
			return interpolate(path[i], path[i+1], (target-accum)/seg)
		}
		accum += seg
	}
	return path[len(path)-1]
}

// Split divides the path at the interpolated position for progress. The
// completed half is prefixed with the path's first coordinate and the
// remaining half is suffixed with the last, so both are always renderable
// polylines sharing exactly the split point.
func Split(progress, nominalTotal float64, path []Coordinate) (completed, remaining []Coordinate) {
	if len(path) == 0 {
		return nil, nil
	}
	if len(path) == 1 {
		return []Coordinate{path[0]}, []Coordinate{path[0]}
	}

	// Same endpoint guarantee as PositionAt: at full progress the split
	// point is exactly the last coordinate, never an interpolation of it.
	f := fractionOf(progress, nominalTotal)
	if f >= 1 {
		last := path[len(path)-1]
		completed = append([]Coordinate(nil), path...)
		return completed, []Coordinate{last}
	}

	target := f * PathLength(path)

	accum := 0.0
	for i := 0; i < len(path)-1; i++ {
		seg := Distance(path[i], path[i+1])
		if accum+seg >= target {
			split := path[i]
			if seg > 0 {
				split = interpolate(path[i], path[i+1], (target-accum)/seg)
			}
			completed = append([]Coordinate{path[0]}, path[1:i+1]...)
			completed = append(completed, split)
			remaining = append([]Coordinate{split}, path[i+1:]...)
			return completed, remaining
		}
		accum += seg
	}

	// Float drift past the final segment: everything is completed.
	last := path[len(path)-1]
	completed = append([]Coordinate(nil), path...)
	return completed, []Coordinate{last}
}

// NearestByMiles returns the candidate whose distance-from-start is closest
// to progress, by absolute difference. Ties keep the first-encountered
// candidate. ok is false only for an empty candidate list.
func NearestByMiles[T any](candidates []T, milesFromStart func(T) float64, progress float64) (best T, ok bool) {
	if len(candidates) == 0 {
		return best, false
	}
	best = candidates[0]
	bestDiff := math.Abs(progress - milesFromStart(best))
	for _, c := range candidates[1:] {
		if d := math.Abs(progress - milesFromStart(c)); d < bestDiff {
			best, bestDiff = c, d
		}
	}
	return best, true
}

func fractionOf(progress, nominalTotal float64) float64 {
	if nominalTotal <= 0 {
		return 0
	}
	f := progress / nominalTotal
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func interpolate(a, b Coordinate, fraction float64) Coordinate {
	return Coordinate{
		Lat: a.Lat + (b.Lat-a.Lat)*fraction,
		Lng: a.Lng + (b.Lng-a.Lng)*fraction,
	}
}
