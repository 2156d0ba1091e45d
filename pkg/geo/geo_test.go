package geo

import (
	"math"
	"testing"
)

// An 8-point path with known endpoints, advertised at 28 miles.
var testPath = []Coordinate{
	{Lat: 40.7764, Lng: -73.9731},
	{Lat: 40.7851, Lng: -73.9745},
	{Lat: 40.7968, Lng: -73.9549},
	{Lat: 40.7992, Lng: -73.9583},
	{Lat: 40.7950, Lng: -73.9760},
	{Lat: 40.7851, Lng: -73.9780},
	{Lat: 40.7735, Lng: -73.9760},
	{Lat: 40.7688, Lng: -73.9735},
}

const testNominal = 28.0

func TestPositionAt_Endpoints(t *testing.T) {
	start := PositionAt(0, testNominal, testPath)
	if start != testPath[0] {
		t.Errorf("PositionAt(0) = %v, want first coordinate %v", start, testPath[0])
	}

	end := PositionAt(testNominal, testNominal, testPath)
	if end != testPath[len(testPath)-1] {
		t.Errorf("PositionAt(total) = %v, want last coordinate %v", end, testPath[len(testPath)-1])
	}

	// Past the nominal total clamps to the last coordinate.
	past := PositionAt(testNominal*3, testNominal, testPath)
	if past != testPath[len(testPath)-1] {
		t.Errorf("PositionAt(3*total) = %v, want last coordinate", past)
	}

	// Negative progress clamps to the first coordinate.
	neg := PositionAt(-5, testNominal, testPath)
	if neg != testPath[0] {
		t.Errorf("PositionAt(-5) = %v, want first coordinate", neg)
	}
}

func TestPositionAt_EndpointExactOnAwkwardFloats(t *testing.T) {
	// Coordinates chosen so that interpolating the final segment at a
	// fraction of ~1 lands an epsilon away from the true endpoint; the
	// boundary must still map to the exact coordinate.
	paths := [][]Coordinate{
		{
			{Lat: -25.598470269544947, Lng: 131.03069627646305},
			{Lat: -25.344427761759033, Lng: 131.0369215374558},
			{Lat: -25.244846234968347, Lng: 130.98943544689329},
		},
		{
			{Lat: 48.858370099764542, Lng: 2.2944813226699224},
			{Lat: 48.860611066352733, Lng: 2.3376407159333299},
			{Lat: 48.853408771287356, Lng: 2.3499021010371835},
			{Lat: 48.846221021983194, Lng: 2.3462209401861858},
		},
	}

	for _, path := range paths {
		last := path[len(path)-1]
		nominal := 12.7

		if got := PositionAt(nominal, nominal, path); got != last {
			t.Errorf("PositionAt(total) = %v, want exact last coordinate %v", got, last)
		}
		if got := PositionAt(0, nominal, path); got != path[0] {
			t.Errorf("PositionAt(0) = %v, want exact first coordinate %v", got, path[0])
		}

		completed, remaining := Split(nominal, nominal, path)
		if completed[len(completed)-1] != last {
			t.Errorf("Split(total) completed ends at %v, want %v", completed[len(completed)-1], last)
		}
		if len(remaining) != 1 || remaining[0] != last {
			t.Errorf("Split(total) remaining = %v, want exactly the last coordinate", remaining)
		}
	}
}

func TestPositionAt_Midpoint(t *testing.T) {
	mid := PositionAt(testNominal/2, testNominal, testPath)
	if mid == testPath[0] || mid == testPath[len(testPath)-1] {
		t.Errorf("PositionAt(total/2) = %v, expected a point strictly between the endpoints", mid)
	}

	// The midpoint must sit half way along the geometric path.
	completed, _ := Split(testNominal/2, testNominal, testPath)
	got := PathLength(completed)
	want := PathLength(testPath) / 2
	if math.Abs(got-want) > 1.0 { // meter-scale tolerance
		t.Errorf("length to midpoint = %.2fm, want %.2fm", got, want)
	}
}

func TestPositionAt_Monotonic(t *testing.T) {
	prev := 0.0
	for p := 0.0; p <= testNominal; p += 0.25 {
		completed, _ := Split(p, testNominal, testPath)
		l := PathLength(completed)
		if l < prev-1e-6 {
			t.Fatalf("accumulated length decreased at progress %.2f: %.4f < %.4f", p, l, prev)
		}
		prev = l
	}
}

func TestPositionAt_Degenerate(t *testing.T) {
	if got := PositionAt(5, 10, nil); got != (Coordinate{}) {
		t.Errorf("empty path: got %v, want zero coordinate", got)
	}

	single := []Coordinate{{Lat: 1, Lng: 2}}
	if got := PositionAt(5, 10, single); got != single[0] {
		t.Errorf("single-point path: got %v, want %v", got, single[0])
	}

	if got := PositionAt(5, 0, testPath); got != testPath[0] {
		t.Errorf("zero nominal total: got %v, want first coordinate", got)
	}
}

func TestSplit_SharesBoundaryPoint(t *testing.T) {
	for _, p := range []float64{0, 3.7, testNominal / 2, testNominal - 0.1, testNominal, testNominal + 5} {
		completed, remaining := Split(p, testNominal, testPath)
		if len(completed) == 0 || len(remaining) == 0 {
			t.Fatalf("progress %.2f: empty half (completed %d, remaining %d)", p, len(completed), len(remaining))
		}
		last := completed[len(completed)-1]
		first := remaining[0]
		if last != first {
			t.Errorf("progress %.2f: halves do not share the split point: %v vs %v", p, last, first)
		}
	}
}

func TestSplit_SpansOriginalEndpoints(t *testing.T) {
	completed, remaining := Split(10, testNominal, testPath)
	if completed[0] != testPath[0] {
		t.Errorf("completed starts at %v, want %v", completed[0], testPath[0])
	}
	if remaining[len(remaining)-1] != testPath[len(testPath)-1] {
		t.Errorf("remaining ends at %v, want %v", remaining[len(remaining)-1], testPath[len(testPath)-1])
	}

	// Concatenating the halves minus the duplicated boundary walks the
	// same distance as the original path.
	joined := append(append([]Coordinate(nil), completed...), remaining[1:]...)
	if math.Abs(PathLength(joined)-PathLength(testPath)) > 1.0 {
		t.Errorf("joined length %.2fm, want %.2fm", PathLength(joined), PathLength(testPath))
	}
}

func TestSplit_Degenerate(t *testing.T) {
	completed, remaining := Split(5, 10, nil)
	if completed != nil || remaining != nil {
		t.Errorf("empty path: got %v / %v, want nil halves", completed, remaining)
	}

	single := []Coordinate{{Lat: 1, Lng: 2}}
	completed, remaining = Split(5, 10, single)
	if len(completed) != 1 || len(remaining) != 1 || completed[0] != single[0] || remaining[0] != single[0] {
		t.Errorf("single-point path: got %v / %v", completed, remaining)
	}
}

func TestNearestByMiles(t *testing.T) {
	type marker struct {
		name  string
		miles float64
	}
	markers := []marker{
		{"a", 0},
		{"b", 10},
		{"c", 20},
		{"d", 20}, // tie with c
	}
	milesOf := func(m marker) float64 { return m.miles }

	got, ok := NearestByMiles(markers, milesOf, 12)
	if !ok || got.name != "b" {
		t.Errorf("NearestByMiles(12) = %v, %v; want b", got, ok)
	}

	// Ties keep the first-encountered candidate.
	got, _ = NearestByMiles(markers, milesOf, 25)
	if got.name != "c" {
		t.Errorf("NearestByMiles(25) = %v, want c (first of the tie)", got)
	}

	_, ok = NearestByMiles(nil, milesOf, 5)
	if ok {
		t.Error("NearestByMiles on empty candidates reported ok")
	}
}

func TestDistance_KnownValue(t *testing.T) {
	// London to Paris, roughly 344 km.
	london := Coordinate{Lat: 51.5074, Lng: -0.1278}
	paris := Coordinate{Lat: 48.8566, Lng: 2.3522}

	d := Distance(london, paris)
	if d < 330000 || d > 360000 {
		t.Errorf("Distance(london, paris) = %.0fm, want roughly 344km", d)
	}

	if Distance(london, london) != 0 {
		t.Errorf("Distance to self = %f, want 0", Distance(london, london))
	}
}
