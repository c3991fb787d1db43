package table

import "github.com/mesh-intelligence/ansicards/pkg/types"

// Contains reports whether card is on the table.
func (t *Table) Contains(card *types.Number) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.indexLocked(card) >= 0
}

// HorizontalPositionOf returns where card lies, or types.Nowhere.
func (t *Table) HorizontalPositionOf(card *types.Number) types.Point {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(card)
	if i < 0 {
		return types.Nowhere
	}
	return t.placements[i].Pos
}

// ZIndexOf returns the z-order index of card, or types.BeyondReach.
func (t *Table) ZIndexOf(card *types.Number) uint {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(card)
	if i < 0 {
		return types.BeyondReach
	}
	return uint(i)
}

// Count returns the number of cards on the table.
func (t *Table) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.placements)
}

// IsAbove reports whether above lies on a higher layer than below.
func (t *Table) IsAbove(above, below *types.Number) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i, j, ok := t.pairLocked(above, below)
	return ok && i > j
}

// IsBelow reports whether above lies on a lower layer than below.
func (t *Table) IsBelow(above, below *types.Number) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i, j, ok := t.pairLocked(above, below)
	return ok && i < j
}

// IsVisible reports whether card is on the table and painted.
func (t *Table) IsVisible(card *types.Number) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(card)
	return i >= 0 && t.placements[i].Visible
}
