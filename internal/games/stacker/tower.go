package stacker

import "iter"

// TowerCapacity is the number of slots in the tower.
const TowerCapacity = 5

// baseIndex is the slot holding the oldest box.
const baseIndex = TowerCapacity - 1

// PlacedBox is a box permanently resting in the tower.
type PlacedBox struct {
	Width int
	LeftX int
}

// Right returns the x-coordinate of the right edge.
func (b PlacedBox) Right() int {
	return b.LeftX + b.Width
}

// TowerSlot is either a used slot holding a box or an empty one.
type TowerSlot struct {
	Box  PlacedBox
	Used bool
}

// Tower is a fixed-size stack of placed boxes.
// Index 0 is the most recent box (nearest the falling box) and index 4 the
// base. Used slots are always contiguous from some index through the base.
type Tower struct {
	slots [TowerCapacity]TowerSlot
}

// NewTower returns a tower holding only the base box.
func NewTower(base PlacedBox) Tower {
	var t Tower
	t.slots[baseIndex] = TowerSlot{Box: base, Used: true}
	return t
}

// Slot returns the box at index i and whether the slot is used.
// Out-of-range indices report an empty slot.
func (t Tower) Slot(i int) (PlacedBox, bool) {
	if i < 0 || i >= TowerCapacity {
		return PlacedBox{}, false
	}
	s := t.slots[i]
	return s.Box, s.Used
}

// Full reports whether the top slot is used.
func (t Tower) Full() bool {
	return t.slots[0].Used
}

// NextIndex returns the highest empty index, which is the slot directly above
// the current top box. Returns -1 when the tower is full.
func (t Tower) NextIndex() int {
	for i := baseIndex; i >= 0; i-- {
		if !t.slots[i].Used {
			return i
		}
	}
	return -1
}

// Len returns the number of used slots.
func (t Tower) Len() int {
	n := 0
	for _, s := range t.slots {
		if s.Used {
			n++
		}
	}
	return n
}

// Place stores a box at index i. Out-of-range indices are ignored.
func (t *Tower) Place(i int, b PlacedBox) {
	if i < 0 || i >= TowerCapacity {
		return
	}
	t.slots[i] = TowerSlot{Box: b, Used: true}
}

// ShiftDiscardBase moves every slot one index toward the base, dropping the
// old base, and leaves slot 0 empty.
func (t *Tower) ShiftDiscardBase() {
	copy(t.slots[1:], t.slots[:baseIndex])
	t.slots[0] = TowerSlot{}
}

// All yields used slots bottom-up, from the base to the top box.
func (t Tower) All() iter.Seq2[int, PlacedBox] {
	return func(yield func(int, PlacedBox) bool) {
		for i := baseIndex; i >= 0; i-- {
			if !t.slots[i].Used {
				continue
			}
			if !yield(i, t.slots[i].Box) {
				return
			}
		}
	}
}
