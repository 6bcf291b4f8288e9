package wargame

import "testing"

func TestObsTrackerUnobservedByDefault(t *testing.T) {
	tr := NewObsTracker(Dims{Width: 3, Height: 3}, Wrap2d{})
	obs := tr.Get(Location{X: 1, Y: 1})
	if obs.Observed {
		t.Fatal("expected fresh tracker to report unobserved")
	}
	if tr.Count() != 0 {
		t.Fatalf("got count %d, want 0", tr.Count())
	}
}

func TestObsTrackerTrackObservationIncrementsCountOnce(t *testing.T) {
	tr := NewObsTracker(Dims{Width: 3, Height: 3}, Wrap2d{})
	loc := Location{X: 1, Y: 1}
	tile := Tile{Loc: loc, Terrain: Land}

	_, fresh := tr.TrackObservation(loc, tile, nil, nil, 1)
	if !fresh.Observed || !fresh.Current {
		t.Fatalf("got %+v", fresh)
	}
	if tr.Count() != 1 {
		t.Fatalf("got count %d, want 1", tr.Count())
	}

	// Re-observing the same tile must not inflate the count.
	tr.TrackObservation(loc, tile, nil, nil, 2)
	if tr.Count() != 1 {
		t.Fatalf("got count %d after re-observation, want 1", tr.Count())
	}
}

func TestObsTrackerArchivePreservesSnapshotButClearsCurrent(t *testing.T) {
	tr := NewObsTracker(Dims{Width: 2, Height: 2}, Wrap2d{})
	loc := Location{X: 0, Y: 0}
	tr.TrackObservation(loc, Tile{Loc: loc, Terrain: Land}, nil, nil, 1)

	tr.Archive()
	obs := tr.Get(loc)
	if !obs.Observed {
		t.Fatal("expected snapshot to survive archiving")
	}
	if obs.Current {
		t.Fatal("expected Current to be cleared by Archive")
	}
}

func TestObsTrackerCloneIndependence(t *testing.T) {
	tr := NewObsTracker(Dims{Width: 2, Height: 2}, Wrap2d{})
	loc := Location{X: 0, Y: 0}
	tr.TrackObservation(loc, Tile{Loc: loc, Terrain: Land}, &UnitSnapshot{ID: 1}, nil, 1)

	c := tr.Clone()
	c.TrackObservation(Location{X: 1, Y: 1}, Tile{Loc: Location{X: 1, Y: 1}, Terrain: Water}, nil, nil, 2)

	if tr.Count() != 1 {
		t.Fatalf("expected original tracker unaffected by clone mutation, count=%d", tr.Count())
	}

	// Mutating the clone's unit snapshot must not affect the original's.
	c.Get(loc)
	co := c.Get(loc)
	co.Unit.HP = 99
	orig := tr.Get(loc)
	if orig.Unit.HP == 99 {
		t.Fatal("expected unit snapshot to be deep-copied by Clone")
	}
}

func TestObsTrackerGetOutOfBounds(t *testing.T) {
	tr := NewObsTracker(Dims{Width: 2, Height: 2}, Wrap2d{})
	obs := tr.Get(Location{X: 9, Y: 9})
	if obs.Observed {
		t.Fatal("expected out-of-bounds Get to report unobserved")
	}
}
