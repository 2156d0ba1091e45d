package routes

import "testing"

func TestLookup(t *testing.T) {
	r, ok := Lookup("hadrians-wall")
	if !ok {
		t.Fatal("expected hadrians-wall in catalog")
	}
	if r.ID != "hadrians-wall" || r.NominalTotalMiles != 84 {
		t.Errorf("unexpected route: %+v", r)
	}

	if _, ok := Lookup("no-such-route"); ok {
		t.Error("unknown id reported found")
	}
}

func TestResolve_FallsBackToDefault(t *testing.T) {
	r := Resolve("deleted-in-v2")
	if r.ID != DefaultID {
		t.Errorf("Resolve(unknown) = %s, want default %s", r.ID, DefaultID)
	}

	r = Resolve("route-66")
	if r.ID != "route-66" {
		t.Errorf("Resolve(route-66) = %s", r.ID)
	}
}

func TestAll_DisplayOrder(t *testing.T) {
	all := All()
	if len(all) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(all))
	}
	if all[0].ID != DefaultID {
		t.Errorf("default route should lead the display order, got %s", all[0].ID)
	}
	for i := 1; i < len(all); i++ {
		if all[i].ID == all[i-1].ID {
			t.Errorf("duplicate route at position %d", i)
		}
	}
}

func TestCatalog_Wellformed(t *testing.T) {
	for _, r := range All() {
		if len(r.Path) < 2 {
			t.Errorf("%s: path has %d points, want >= 2", r.ID, len(r.Path))
		}
		if r.NominalTotalMiles <= 0 {
			t.Errorf("%s: nominal total %.1f", r.ID, r.NominalTotalMiles)
		}
		if r.OriginLabel == "" || r.DestinationLabel == "" {
			t.Errorf("%s: missing origin/destination labels", r.ID)
		}

		for _, list := range [][]Landmark{r.Landmarks, r.PointsOfInterest} {
			prev := -1.0
			for _, lm := range list {
				if lm.MilesFromStart < 0 || lm.MilesFromStart > r.NominalTotalMiles {
					t.Errorf("%s/%s: miles-from-start %.1f outside [0, %.1f]",
						r.ID, lm.ID, lm.MilesFromStart, r.NominalTotalMiles)
				}
				if lm.MilesFromStart < prev {
					t.Errorf("%s/%s: landmarks out of ascending order", r.ID, lm.ID)
				}
				prev = lm.MilesFromStart
				if lm.Name == "" {
					t.Errorf("%s: landmark %s has no name", r.ID, lm.ID)
				}
			}
		}
	}
}
