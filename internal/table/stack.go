package table

import (
	"slices"

	"github.com/mesh-intelligence/ansicards/pkg/types"
)

// Stack places card on top of the table at pos. Any earlier placement of the
// same card is removed first, so a card is never on the table twice.
func (t *Table) Stack(card *types.Number, pos types.Point) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if card == nil {
		t.logf("stack: nil card ignored")
		return
	}

	t.placements = slices.DeleteFunc(t.placements, func(p types.Placement) bool {
		return p.Card == card
	})
	t.placements = append(t.placements, types.Placement{Card: card, Pos: pos, Visible: true})
	t.logf("stack: %v at %v, z=%d", card, pos, len(t.placements)-1)
	t.changed()
}

// Replace puts newCard in every slot held by oldCard. Position, visibility
// and z-order of the slot are kept. Nothing is painted unless a slot changed.
func (t *Table) Replace(oldCard, newCard *types.Number) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if oldCard == nil || newCard == nil {
		return
	}

	replaced := 0
	for i := range t.placements {
		if t.placements[i].Card == oldCard {
			t.placements[i].Card = newCard
			replaced++
		}
	}
	if replaced == 0 {
		t.logf("replace: %v not on table", oldCard)
		return
	}
	t.logf("replace: %v -> %v", oldCard, newCard)
	t.changed()
}

// Remove takes card off the table.
func (t *Table) Remove(card *types.Number) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if card == nil {
		return
	}

	before := len(t.placements)
	t.placements = slices.DeleteFunc(t.placements, func(p types.Placement) bool {
		return p.Card == card
	})
	if len(t.placements) == before {
		t.logf("remove: %v not on table", card)
		return
	}
	t.logf("remove: %v", card)
	t.changed()
}

// Clear removes every card. An already empty table is not repainted.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.placements) == 0 {
		return
	}
	t.placements = nil
	t.logf("clear")
	t.changed()
}

// ShiftHorizontal moves card to pos. Its z-order does not change.
func (t *Table) ShiftHorizontal(card *types.Number, pos types.Point) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if card == nil {
		return
	}

	shifted := false
	for i := range t.placements {
		if t.placements[i].Card == card {
			t.placements[i].Pos = pos
			shifted = true
		}
	}
	if !shifted {
		t.logf("shift horizontal: %v not on table", card)
		return
	}
	t.changed()
}

// ShiftVertical moves card to z-order index. An index past the top puts the
// card on top.
func (t *Table) ShiftVertical(card *types.Number, index uint) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(card)
	if i < 0 {
		t.logf("shift vertical: %v not on table", card)
		return
	}
	t.insertLocked(index, t.takeLocked(i))
	t.changed()
}

// MoveUp raises card by layers toward the top, stopping at the top.
func (t *Table) MoveUp(card *types.Number, layers uint) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(card)
	if i < 0 {
		t.logf("move up: %v not on table", card)
		return
	}

	current := uint(i)
	target := current + layers
	if target < current {
		target = types.BeyondReach
	}
	t.insertLocked(target, t.takeLocked(i))
	t.changed()
}

// MoveDown lowers card by layers. A card whose index is not greater than
// layers goes to the very bottom.
func (t *Table) MoveDown(card *types.Number, layers uint) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(card)
	if i < 0 {
		t.logf("move down: %v not on table", card)
		return
	}

	current := uint(i)
	p := t.takeLocked(i)
	if current > layers {
		t.insertLocked(current-layers, p)
	} else {
		t.insertLocked(0, p)
	}
	t.changed()
}

// SwapHorizontal exchanges the positions of a and b. Both must be on the table.
func (t *Table) SwapHorizontal(a, b *types.Number) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i, j, ok := t.pairLocked(a, b)
	if !ok {
		t.logf("swap horizontal: %v and %v not both on table", a, b)
		return
	}
	t.placements[i].Pos, t.placements[j].Pos = t.placements[j].Pos, t.placements[i].Pos
	t.changed()
}

// SwapVertical exchanges the cards held by the slots of a and b. Each slot
// keeps its position and visibility, so a appears where b was and on b's
// layer. Both must be on the table.
func (t *Table) SwapVertical(a, b *types.Number) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i, j, ok := t.pairLocked(a, b)
	if !ok {
		t.logf("swap vertical: %v and %v not both on table", a, b)
		return
	}
	t.placements[i].Card, t.placements[j].Card = t.placements[j].Card, t.placements[i].Card
	t.changed()
}

// SwapFull exchanges both the positions and the z-order slots of a and b in
// one step, painted once. Each card moves into the other's slot and takes
// its position, but keeps its own visibility. Both must be on the table.
func (t *Table) SwapFull(a, b *types.Number) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i, j, ok := t.pairLocked(a, b)
	if !ok {
		t.logf("swap full: %v and %v not both on table", a, b)
		return
	}
	pi, pj := &t.placements[i], &t.placements[j]
	pi.Card, pj.Card = pj.Card, pi.Card
	pi.Visible, pj.Visible = pj.Visible, pi.Visible
	t.changed()
}

// SetVisible shows or hides card. Hidden cards keep their slot.
func (t *Table) SetVisible(card *types.Number, visible bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(card)
	if i < 0 {
		t.logf("set visible: %v not on table", card)
		return
	}
	t.placements[i].Visible = visible
	t.changed()
}
