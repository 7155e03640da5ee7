package stacker

import "testing"

// stateOnTop builds a game whose tower top (slot 3) is ref, above the
// default base, with the given falling box.
func stateOnTop(falling FallingBox, ref PlacedBox) GameState {
	gs := NewGameState(DefaultParams())
	gs.Falling = falling
	gs.Tower.Place(3, ref)
	return gs
}

func TestDropExactAlignment(t *testing.T) {
	gs := NewGameState(DefaultParams())
	gs.Falling = FallingBox{X: 32, Y: 8, Width: 64, Speed: 2}

	res := gs.Drop()

	if res.Outcome != OutcomePlaced {
		t.Fatalf("Outcome = %v, expected placed", res.Outcome)
	}
	if res.Index != 3 {
		t.Errorf("Index = %d, expected 3", res.Index)
	}
	want := PlacedBox{Width: 64, LeftX: 32}
	if got, _ := gs.Tower.Slot(3); got != want {
		t.Errorf("Slot(3) = %+v, expected %+v", got, want)
	}
	if gs.Score != 1 {
		t.Errorf("Score = %d, expected 1", gs.Score)
	}
	if gs.Falling != (FallingBox{X: 32, Y: 8, Width: 64, Speed: 2}) {
		t.Errorf("falling box should not narrow, got %+v", gs.Falling)
	}
}

func TestDropLeftOverhang(t *testing.T) {
	gs := stateOnTop(FallingBox{X: 10, Y: 8, Width: 50, Speed: 2}, PlacedBox{Width: 40, LeftX: 20})

	res := gs.Drop()

	if res.Outcome != OutcomePlaced || res.Index != 2 {
		t.Fatalf("Drop() = %+v, expected placed at 2", res)
	}
	want := PlacedBox{Width: 40, LeftX: 20}
	if res.Placed != want {
		t.Errorf("Placed = %+v, expected %+v", res.Placed, want)
	}
	if got, _ := gs.Tower.Slot(2); got != want {
		t.Errorf("Slot(2) = %+v, expected %+v", got, want)
	}
	if gs.Falling.Width != 40 {
		t.Errorf("falling width = %d, expected 40", gs.Falling.Width)
	}
	// x += (w + overlap) / 2 = 10 + 45
	if gs.Falling.X != 55 {
		t.Errorf("falling x = %d, expected 55", gs.Falling.X)
	}
	if gs.Score != 1 {
		t.Errorf("Score = %d, expected 1", gs.Score)
	}
}

func TestDropRightOverhang(t *testing.T) {
	gs := stateOnTop(FallingBox{X: 30, Y: 8, Width: 40, Speed: -2}, PlacedBox{Width: 40, LeftX: 20})

	res := gs.Drop()

	if res.Outcome != OutcomePlaced {
		t.Fatalf("Outcome = %v, expected placed", res.Outcome)
	}
	// overlap = (x + w) - (lx + lw) = 70 - 60, left edge from the pre-drop x
	want := PlacedBox{Width: 10, LeftX: 30}
	if res.Placed != want {
		t.Errorf("Placed = %+v, expected %+v", res.Placed, want)
	}
	if res.Before.X != 30 || res.Before.Width != 40 {
		t.Errorf("Before = %+v, expected the pre-drop box", res.Before)
	}
	if gs.Falling.X != 55 || gs.Falling.Width != 10 {
		t.Errorf("falling = %+v, expected x=55 width=10", gs.Falling)
	}
	if gs.Falling.Speed != -2 {
		t.Errorf("drop should not change speed, got %d", gs.Falling.Speed)
	}
}

func TestDropMiss(t *testing.T) {
	tests := []struct {
		name    string
		falling FallingBox
		ref     PlacedBox
	}{
		{"disjoint", FallingBox{X: 0, Width: 10, Speed: 2}, PlacedBox{Width: 10, LeftX: 50}},
		{"touching left", FallingBox{X: 40, Width: 10, Speed: 2}, PlacedBox{Width: 10, LeftX: 50}},
		{"touching right", FallingBox{X: 60, Width: 10, Speed: 2}, PlacedBox{Width: 10, LeftX: 50}},
		{"degenerate right overlap", FallingBox{X: 25, Width: 10, Speed: 2}, PlacedBox{Width: 40, LeftX: 20}},
		{"right edges aligned", FallingBox{X: 30, Width: 30, Speed: 2}, PlacedBox{Width: 40, LeftX: 20}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := stateOnTop(tc.falling, tc.ref)
			before := gs

			res := gs.Drop()

			if res.Outcome != OutcomeMiss {
				t.Fatalf("Outcome = %v, expected miss (placed %+v)", res.Outcome, res.Placed)
			}
			if res.Index != -1 {
				t.Errorf("Index = %d, expected -1", res.Index)
			}
			if gs != before {
				t.Errorf("miss must leave state unchanged:\n got %+v\nwant %+v", gs, before)
			}
		})
	}
}

func TestDropFillAndShift(t *testing.T) {
	gs := NewGameState(DefaultParams())
	var tw Tower
	for i := 0; i < TowerCapacity; i++ {
		tw.Place(i, PlacedBox{Width: 40 + i, LeftX: 20})
	}
	gs.Tower = tw
	gs.Falling = FallingBox{X: 20, Y: 8, Width: 40, Speed: 2}

	res := gs.Drop()

	if res.Outcome != OutcomePlaced || res.Index != 0 || !res.Shifted {
		t.Fatalf("Drop() = %+v, expected placed at 0 with shift", res)
	}
	if gs.Tower.Len() != TowerCapacity {
		t.Errorf("Len() = %d, expected %d", gs.Tower.Len(), TowerCapacity)
	}
	if got, _ := gs.Tower.Slot(0); got != (PlacedBox{Width: 40, LeftX: 20}) {
		t.Errorf("Slot(0) = %+v, expected the new box", got)
	}
	for i := 1; i < TowerCapacity; i++ {
		got, _ := gs.Tower.Slot(i)
		if got.Width != 40+i-1 {
			t.Errorf("Slot(%d).Width = %d, expected %d (old slot %d)", i, got.Width, 40+i-1, i-1)
		}
	}
	assertContiguous(t, gs.Tower)
}

func TestDropFullTowerMissDoesNotShift(t *testing.T) {
	gs := NewGameState(DefaultParams())
	for i := 0; i < TowerCapacity; i++ {
		gs.Tower.Place(i, PlacedBox{Width: 10, LeftX: 100})
	}
	gs.Falling = FallingBox{X: 0, Y: 8, Width: 10, Speed: 2}
	before := gs.Tower

	res := gs.Drop()

	if res.Outcome != OutcomeMiss {
		t.Fatalf("Outcome = %v, expected miss", res.Outcome)
	}
	if gs.Tower != before {
		t.Error("a miss on a full tower must not shift it")
	}
}

func TestDropSyntheticReference(t *testing.T) {
	p := DefaultParams()
	gs := NewGameState(p)
	gs.Tower = Tower{}
	gs.Falling = FallingBox{X: p.Base.LeftX, Y: 8, Width: p.Base.Width, Speed: 2}

	res := gs.Drop()

	if res.Outcome != OutcomePlaced || res.Index != baseIndex {
		t.Fatalf("Drop() = %+v, expected placed at the base slot", res)
	}
	if res.Reference != p.Base {
		t.Errorf("Reference = %+v, expected the initial base %+v", res.Reference, p.Base)
	}
}

func TestDropSequenceKeepsInvariants(t *testing.T) {
	gs := NewGameState(DefaultParams())
	gs.Falling.X = gs.base.LeftX

	for drop := 0; drop < 12; drop++ {
		res := gs.Drop()
		if res.Outcome != OutcomePlaced {
			t.Fatalf("drop %d: aligned drop should place", drop)
		}
		assertContiguous(t, gs.Tower)
		if gs.Score != drop+1 {
			t.Fatalf("drop %d: Score = %d", drop, gs.Score)
		}
	}
	if gs.Tower.Len() != TowerCapacity {
		t.Errorf("Len() = %d, expected a full tower", gs.Tower.Len())
	}
}
