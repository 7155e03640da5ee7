package stacker

import "testing"

// collect returns the used slots of a tower in iteration order.
func collect(t Tower) ([]int, []PlacedBox) {
	var idx []int
	var boxes []PlacedBox
	for i, b := range t.All() {
		idx = append(idx, i)
		boxes = append(boxes, b)
	}
	return idx, boxes
}

// assertContiguous fails if a used slot sits above an empty one.
func assertContiguous(t *testing.T, tw Tower) {
	t.Helper()
	seenUsed := false
	for i := 0; i < TowerCapacity; i++ {
		_, used := tw.Slot(i)
		if seenUsed && !used {
			t.Fatalf("tower has a hole at slot %d: %+v", i, tw)
		}
		if used {
			seenUsed = true
		}
	}
	if _, used := tw.Slot(baseIndex); !used {
		t.Fatalf("base slot is empty: %+v", tw)
	}
}

func TestNewTower(t *testing.T) {
	base := PlacedBox{Width: 64, LeftX: 32}
	tw := NewTower(base)

	for i := 0; i < baseIndex; i++ {
		if _, used := tw.Slot(i); used {
			t.Errorf("slot %d should start empty", i)
		}
	}
	got, used := tw.Slot(baseIndex)
	if !used || got != base {
		t.Errorf("Slot(4) = %+v, %v, expected %+v, true", got, used, base)
	}
	if tw.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", tw.Len())
	}
	if tw.Full() {
		t.Error("new tower should not be full")
	}
}

func TestTowerNextIndexFillsUpward(t *testing.T) {
	tw := NewTower(PlacedBox{Width: 64, LeftX: 32})

	for want := 3; want >= 0; want-- {
		got := tw.NextIndex()
		if got != want {
			t.Fatalf("NextIndex() = %d, expected %d", got, want)
		}
		tw.Place(got, PlacedBox{Width: 10 + want, LeftX: want})
		assertContiguous(t, tw)
	}

	if !tw.Full() {
		t.Error("tower should be full after four placements")
	}
	if tw.NextIndex() != -1 {
		t.Errorf("NextIndex() on full tower = %d, expected -1", tw.NextIndex())
	}
	if tw.Len() != TowerCapacity {
		t.Errorf("Len() = %d, expected %d", tw.Len(), TowerCapacity)
	}
}

func TestTowerShiftDiscardBase(t *testing.T) {
	var tw Tower
	for i := 0; i < TowerCapacity; i++ {
		tw.Place(i, PlacedBox{Width: 10 * (i + 1), LeftX: i})
	}

	tw.ShiftDiscardBase()

	if _, used := tw.Slot(0); used {
		t.Error("slot 0 should be empty after shift")
	}
	for i := 1; i < TowerCapacity; i++ {
		got, used := tw.Slot(i)
		want := PlacedBox{Width: 10 * i, LeftX: i - 1}
		if !used || got != want {
			t.Errorf("Slot(%d) = %+v, %v, expected %+v", i, got, used, want)
		}
	}
	if tw.Len() != TowerCapacity-1 {
		t.Errorf("Len() = %d, expected %d", tw.Len(), TowerCapacity-1)
	}
}

func TestTowerAllBottomUpSkipsEmpty(t *testing.T) {
	tw := NewTower(PlacedBox{Width: 64, LeftX: 32})
	tw.Place(3, PlacedBox{Width: 50, LeftX: 40})

	idx, boxes := collect(tw)
	if len(idx) != 2 || idx[0] != 4 || idx[1] != 3 {
		t.Fatalf("All() indices = %v, expected [4 3]", idx)
	}
	if boxes[0].Width != 64 || boxes[1].Width != 50 {
		t.Errorf("All() boxes = %v", boxes)
	}
}

func TestTowerAllStopsEarly(t *testing.T) {
	var tw Tower
	for i := 0; i < TowerCapacity; i++ {
		tw.Place(i, PlacedBox{Width: 1, LeftX: i})
	}

	n := 0
	for range tw.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iteration ran %d times, expected 2", n)
	}
}

func TestTowerOutOfRange(t *testing.T) {
	tw := NewTower(PlacedBox{Width: 64, LeftX: 32})
	tw.Place(-1, PlacedBox{Width: 1})
	tw.Place(TowerCapacity, PlacedBox{Width: 1})

	if tw.Len() != 1 {
		t.Errorf("out-of-range Place should be ignored, Len() = %d", tw.Len())
	}
	if _, used := tw.Slot(-1); used {
		t.Error("Slot(-1) should report empty")
	}
	if _, used := tw.Slot(TowerCapacity); used {
		t.Error("Slot(5) should report empty")
	}
}
