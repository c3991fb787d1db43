package table

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/ansicards/pkg/types"
)

func TestNewRendersEmptyTableWhenEnabled(t *testing.T) {
	rec := &recorder{}
	New(Config{Renderer: rec, RenderOnChange: true})
	require.Equal(t, 1, rec.passCount())
	assert.Empty(t, rec.lastPass(t))

	quiet := &recorder{}
	New(Config{Renderer: quiet, RenderOnChange: false})
	assert.Equal(t, 0, quiet.passCount())

	// A nil renderer must not panic.
	tbl := New(Config{RenderOnChange: true})
	assert.Nil(t, tbl.Renderer())
	assert.True(t, tbl.RenderOnChange())
}

func TestScenarioStackAndMoveDown(t *testing.T) {
	c := cards(t, 3)
	a, b, cc := c[0], c[1], c[2]
	tbl, _ := newRecorded()

	tbl.Stack(a, types.Pt(0, 0))
	tbl.Stack(b, types.Pt(5, 0))
	tbl.Stack(cc, types.Pt(0, 5))

	assert.Equal(t, uint(0), tbl.ZIndexOf(a))
	assert.Equal(t, uint(1), tbl.ZIndexOf(b))
	assert.Equal(t, uint(2), tbl.ZIndexOf(cc))
	assert.True(t, tbl.IsAbove(cc, a))

	tbl.MoveDown(cc, 5)
	assert.Equal(t, uint(0), tbl.ZIndexOf(cc))
	assert.False(t, tbl.IsAbove(cc, a))
	assert.True(t, tbl.IsBelow(cc, a))
	assert.Equal(t, types.Pt(0, 5), tbl.HorizontalPositionOf(cc))
}

func TestStackKeepsOnePlacementPerCard(t *testing.T) {
	c := cards(t, 3)
	tbl, rec := newRecorded()

	tbl.Stack(c[0], types.Pt(1, 1))
	tbl.Stack(c[1], types.Pt(2, 2))
	tbl.Stack(c[0], types.Pt(3, 3))
	tbl.Stack(c[2], types.Pt(4, 4))
	tbl.Stack(c[0], types.Pt(9, 9))

	require.Equal(t, 3, tbl.Count())
	occurrences := 0
	for _, p := range tbl.Placements() {
		if p.Card == c[0] {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences)
	assert.Equal(t, types.Pt(9, 9), tbl.HorizontalPositionOf(c[0]))
	assert.Equal(t, uint(2), tbl.ZIndexOf(c[0]), "restacked card goes on top")
	assert.True(t, tbl.IsVisible(c[0]))
	assert.Equal(t, 5, rec.passCount())
}

func TestStackRestoresVisibility(t *testing.T) {
	c := cards(t, 1)
	tbl, _ := newRecorded()

	tbl.Stack(c[0], types.Pt(0, 0))
	tbl.SetVisible(c[0], false)
	require.False(t, tbl.IsVisible(c[0]))

	tbl.Stack(c[0], types.Pt(0, 0))
	assert.True(t, tbl.IsVisible(c[0]))
}

func TestClonedCardsAreDistinctIdentities(t *testing.T) {
	c := cards(t, 1)
	clone := c[0].Clone()
	tbl, _ := newRecorded()

	tbl.Stack(c[0], types.Pt(0, 0))
	tbl.Stack(clone, types.Pt(6, 0))

	assert.Equal(t, 2, tbl.Count())
	assert.Equal(t, types.Pt(0, 0), tbl.HorizontalPositionOf(c[0]))
	assert.Equal(t, types.Pt(6, 0), tbl.HorizontalPositionOf(clone))
}

func TestLookupSentinels(t *testing.T) {
	c := cards(t, 2)
	tbl, _ := newRecorded()
	tbl.Stack(c[0], types.Pt(3, 4))

	assert.True(t, tbl.Contains(c[0]))
	assert.False(t, tbl.Contains(c[1]))
	assert.False(t, tbl.Contains(nil))

	assert.Equal(t, types.Nowhere, tbl.HorizontalPositionOf(c[1]))
	assert.Equal(t, types.Nowhere, tbl.HorizontalPositionOf(nil))
	assert.Equal(t, types.BeyondReach, tbl.ZIndexOf(c[1]))
	assert.Equal(t, types.BeyondReach, tbl.ZIndexOf(nil))
	assert.False(t, tbl.IsVisible(c[1]))
	assert.False(t, tbl.IsVisible(nil))
}

// mutations lists every mutating operation applied to a single target card.
// The other card is on the table so that pair operations have a partner.
var mutations = []struct {
	name  string
	apply func(tbl *Table, target, other *types.Number)
}{
	{"Stack", func(tbl *Table, c, _ *types.Number) { tbl.Stack(c, types.Pt(7, 7)) }},
	{"Replace old", func(tbl *Table, c, o *types.Number) { tbl.Replace(c, o) }},
	{"Replace new", func(tbl *Table, c, o *types.Number) { tbl.Replace(o, c) }},
	{"Remove", func(tbl *Table, c, _ *types.Number) { tbl.Remove(c) }},
	{"ShiftHorizontal", func(tbl *Table, c, _ *types.Number) { tbl.ShiftHorizontal(c, types.Pt(8, 8)) }},
	{"ShiftVertical", func(tbl *Table, c, _ *types.Number) { tbl.ShiftVertical(c, 0) }},
	{"MoveUp", func(tbl *Table, c, _ *types.Number) { tbl.MoveUp(c, 1) }},
	{"MoveDown", func(tbl *Table, c, _ *types.Number) { tbl.MoveDown(c, 1) }},
	{"SwapHorizontal", func(tbl *Table, c, o *types.Number) { tbl.SwapHorizontal(c, o) }},
	{"SwapVertical", func(tbl *Table, c, o *types.Number) { tbl.SwapVertical(o, c) }},
	{"SwapFull", func(tbl *Table, c, o *types.Number) { tbl.SwapFull(c, o) }},
	{"SetVisible", func(tbl *Table, c, _ *types.Number) { tbl.SetVisible(c, false) }},
}

func seeded(t *testing.T) (*Table, *recorder, []*types.Number) {
	t.Helper()
	c := cards(t, 4)
	tbl, rec := newRecorded()
	tbl.Stack(c[0], types.Pt(0, 0))
	tbl.Stack(c[1], types.Pt(6, 0))
	tbl.Stack(c[2], types.Pt(12, 0))
	rec.reset()
	return tbl, rec, c
}

func TestNilCardIsRejected(t *testing.T) {
	for _, m := range mutations {
		t.Run(m.name, func(t *testing.T) {
			tbl, rec, c := seeded(t)
			before := tbl.Placements()

			m.apply(tbl, nil, c[1])

			assert.Equal(t, before, tbl.Placements())
			assert.Equal(t, 0, rec.passCount(), "no render for a rejected call")
		})
	}
}

func TestAbsentCardIsNoOp(t *testing.T) {
	for _, m := range mutations {
		if m.name == "Stack" || m.name == "Replace new" {
			continue // both legitimately place the absent card
		}
		t.Run(m.name, func(t *testing.T) {
			tbl, rec, c := seeded(t)
			absent := c[3]
			before := tbl.Placements()

			m.apply(tbl, absent, c[1])

			assert.Equal(t, before, tbl.Placements())
			assert.Equal(t, 0, rec.passCount())
		})
	}
}

func TestReplaceKeepsSlot(t *testing.T) {
	tbl, rec, c := seeded(t)
	tbl.SetVisible(c[1], false)
	rec.reset()

	tbl.Replace(c[1], c[3])

	assert.False(t, tbl.Contains(c[1]))
	assert.Equal(t, uint(1), tbl.ZIndexOf(c[3]))
	assert.Equal(t, types.Pt(6, 0), tbl.HorizontalPositionOf(c[3]))
	assert.False(t, tbl.IsVisible(c[3]))
	assert.Equal(t, 1, rec.passCount())
}

func TestRemoveAndClear(t *testing.T) {
	tbl, rec, c := seeded(t)

	tbl.Remove(c[1])
	assert.Equal(t, 2, tbl.Count())
	assert.Equal(t, uint(1), tbl.ZIndexOf(c[2]))
	assert.Equal(t, 1, rec.passCount())

	tbl.Clear()
	assert.Equal(t, 0, tbl.Count())
	assert.Equal(t, 2, rec.passCount())
	assert.Empty(t, rec.lastPass(t))

	tbl.Clear()
	assert.Equal(t, 2, rec.passCount(), "clearing an empty table does not repaint")
}

func TestShiftHorizontalKeepsZOrder(t *testing.T) {
	tbl, _, c := seeded(t)

	tbl.ShiftHorizontal(c[1], types.Pt(40, 10))

	assert.Equal(t, types.Pt(40, 10), tbl.HorizontalPositionOf(c[1]))
	assert.Equal(t, uint(1), tbl.ZIndexOf(c[1]))
}

func TestVerticalMovesKeepPosition(t *testing.T) {
	tests := []struct {
		name   string
		move   func(tbl *Table, card *types.Number)
		wantZ  uint
		target int
	}{
		{"ShiftVertical to bottom", func(tbl *Table, c *types.Number) { tbl.ShiftVertical(c, 0) }, 0, 2},
		{"ShiftVertical to middle", func(tbl *Table, c *types.Number) { tbl.ShiftVertical(c, 1) }, 1, 0},
		{"ShiftVertical past top clamps", func(tbl *Table, c *types.Number) { tbl.ShiftVertical(c, 1000) }, 2, 0},
		{"ShiftVertical BeyondReach clamps", func(tbl *Table, c *types.Number) { tbl.ShiftVertical(c, types.BeyondReach) }, 2, 1},
		{"MoveUp one", func(tbl *Table, c *types.Number) { tbl.MoveUp(c, 1) }, 1, 0},
		{"MoveUp past top clamps", func(tbl *Table, c *types.Number) { tbl.MoveUp(c, 10) }, 2, 0},
		{"MoveUp saturates", func(tbl *Table, c *types.Number) { tbl.MoveUp(c, types.BeyondReach) }, 2, 1},
		{"MoveUp zero layers", func(tbl *Table, c *types.Number) { tbl.MoveUp(c, 0) }, 1, 1},
		{"MoveDown one", func(tbl *Table, c *types.Number) { tbl.MoveDown(c, 1) }, 1, 2},
		{"MoveDown equal to index goes to bottom", func(tbl *Table, c *types.Number) { tbl.MoveDown(c, 2) }, 0, 2},
		{"MoveDown past bottom", func(tbl *Table, c *types.Number) { tbl.MoveDown(c, 50) }, 0, 1},
		{"MoveDown at bottom", func(tbl *Table, c *types.Number) { tbl.MoveDown(c, 0) }, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, rec, c := seeded(t)
			card := c[tt.target]
			pos := tbl.HorizontalPositionOf(card)

			tt.move(tbl, card)

			assert.Equal(t, tt.wantZ, tbl.ZIndexOf(card))
			assert.Equal(t, pos, tbl.HorizontalPositionOf(card))
			assert.Equal(t, 3, tbl.Count())
			assert.Equal(t, 1, rec.passCount())
		})
	}
}

func TestMoveDownPreservesOthersOrder(t *testing.T) {
	c := cards(t, 5)
	tbl, _ := newRecorded()
	for i, card := range c {
		tbl.Stack(card, types.Pt(uint(i), 0))
	}

	tbl.MoveDown(c[4], 2)

	got := make([]*types.Number, 0, 5)
	for _, p := range tbl.Placements() {
		got = append(got, p.Card)
	}
	assert.Equal(t, []*types.Number{c[0], c[1], c[4], c[2], c[3]}, got)
}

func TestSwapHorizontal(t *testing.T) {
	tbl, rec, c := seeded(t)

	tbl.SwapHorizontal(c[0], c[2])

	assert.Equal(t, types.Pt(12, 0), tbl.HorizontalPositionOf(c[0]))
	assert.Equal(t, types.Pt(0, 0), tbl.HorizontalPositionOf(c[2]))
	assert.Equal(t, uint(0), tbl.ZIndexOf(c[0]))
	assert.Equal(t, uint(2), tbl.ZIndexOf(c[2]))
	assert.Equal(t, 1, rec.passCount())

	tbl.SwapHorizontal(c[0], c[0])
	assert.Equal(t, 1, rec.passCount(), "a card cannot swap with itself")
}

func TestSwapVerticalTradesSlots(t *testing.T) {
	tbl, _, c := seeded(t)
	tbl.SetVisible(c[0], false)

	tbl.SwapVertical(c[0], c[2])

	// Slots keep position and visibility; the cards move between them.
	assert.Equal(t, uint(2), tbl.ZIndexOf(c[0]))
	assert.Equal(t, uint(0), tbl.ZIndexOf(c[2]))
	assert.Equal(t, types.Pt(12, 0), tbl.HorizontalPositionOf(c[0]))
	assert.Equal(t, types.Pt(0, 0), tbl.HorizontalPositionOf(c[2]))
	assert.True(t, tbl.IsVisible(c[0]))
	assert.False(t, tbl.IsVisible(c[2]))
}

// Applying a position swap and then a slot swap would leave every position
// where it started. SwapFull instead moves each card into the other's slot
// and position together.
func TestSwapFullExchangesSlotsAndPositions(t *testing.T) {
	tbl, rec, c := seeded(t)
	tbl.SetVisible(c[0], false)
	rec.reset()

	tbl.SwapFull(c[0], c[2])

	assert.Equal(t, uint(2), tbl.ZIndexOf(c[0]))
	assert.Equal(t, uint(0), tbl.ZIndexOf(c[2]))
	assert.Equal(t, types.Pt(12, 0), tbl.HorizontalPositionOf(c[0]))
	assert.Equal(t, types.Pt(0, 0), tbl.HorizontalPositionOf(c[2]))
	assert.False(t, tbl.IsVisible(c[0]))
	assert.True(t, tbl.IsVisible(c[2]))
	assert.Equal(t, 1, rec.passCount(), "one render for the combined swap")
	assert.True(t, tbl.IsAbove(c[0], c[2]))

	pass := rec.lastPass(t)
	require.Len(t, pass, 2, "hidden card is not painted")
	assert.Equal(t, paint{Card: c[2], Pos: types.Pt(0, 0)}, pass[0])
	assert.Equal(t, paint{Card: c[1], Pos: types.Pt(6, 0)}, pass[1])
}

func TestSwapFullDiffersFromStepwiseSwaps(t *testing.T) {
	c := cards(t, 2)
	full, _ := newRecorded()
	full.Stack(c[0], types.Pt(0, 0))
	full.Stack(c[1], types.Pt(9, 9))
	full.SwapFull(c[0], c[1])

	stepwise, _ := newRecorded()
	stepwise.Stack(c[0], types.Pt(0, 0))
	stepwise.Stack(c[1], types.Pt(9, 9))
	stepwise.SwapHorizontal(c[0], c[1])
	stepwise.SwapVertical(c[0], c[1])

	// The stepwise pair only trades layers; positions end where they began.
	assert.Equal(t, types.Pt(0, 0), stepwise.HorizontalPositionOf(c[0]))
	assert.Equal(t, uint(1), stepwise.ZIndexOf(c[0]))

	assert.Equal(t, uint(1), full.ZIndexOf(c[0]))
	assert.Equal(t, uint(0), full.ZIndexOf(c[1]))
	assert.Equal(t, types.Pt(9, 9), full.HorizontalPositionOf(c[0]))
	assert.Equal(t, types.Pt(0, 0), full.HorizontalPositionOf(c[1]))
}

func TestOrderingRelation(t *testing.T) {
	c := cards(t, 5)
	tbl, _ := newRecorded()
	for i, card := range c {
		tbl.Stack(card, types.Pt(uint(i), 0))
	}
	tbl.MoveDown(c[3], 2)
	tbl.ShiftVertical(c[0], 3)

	for _, a := range c {
		for _, b := range c {
			if a == b {
				assert.False(t, tbl.IsAbove(a, b))
				assert.False(t, tbl.IsBelow(a, b))
				continue
			}
			above, below := tbl.IsAbove(a, b), tbl.IsBelow(a, b)
			assert.NotEqual(t, above, below, "%v vs %v", a, b)
			assert.Equal(t, tbl.ZIndexOf(a) > tbl.ZIndexOf(b), above)
		}
	}

	outsider := types.GeneratePokerDeck(0).Numbers()[0]
	assert.False(t, tbl.IsAbove(c[0], outsider))
	assert.False(t, tbl.IsBelow(outsider, c[0]))
	assert.False(t, tbl.IsAbove(nil, c[0]))
}

func TestHiddenCardIsNotPainted(t *testing.T) {
	tbl, rec, c := seeded(t)
	tbl.SetRenderOnChange(false)
	tbl.SetVisible(c[1], false)
	require.Equal(t, 0, rec.passCount())

	tbl.RenderNow()

	require.Equal(t, 1, rec.passCount(), "background is painted once")
	assert.Equal(t, []paint{
		{Card: c[0], Pos: types.Pt(0, 0)},
		{Card: c[2], Pos: types.Pt(12, 0)},
	}, rec.lastPass(t))
	assert.Equal(t, 3, tbl.Count(), "hidden cards stay on the table")
}

func TestRenderSuppression(t *testing.T) {
	c := cards(t, 4)
	rec := &recorder{}
	tbl := New(Config{Renderer: rec, RenderOnChange: false})

	tbl.Stack(c[0], types.Pt(0, 0))
	tbl.Stack(c[1], types.Pt(1, 0))
	tbl.Stack(c[2], types.Pt(2, 0))
	tbl.MoveDown(c[2], 1)
	tbl.ShiftHorizontal(c[0], types.Pt(9, 9))
	tbl.Remove(c[1])
	tbl.Stack(c[3], types.Pt(3, 3))
	assert.Equal(t, 0, rec.passCount())

	tbl.RenderNow()

	require.Equal(t, 1, rec.passCount())
	assert.Equal(t, 1, rec.flushes)
	assert.Equal(t, []paint{
		{Card: c[0], Pos: types.Pt(9, 9)},
		{Card: c[2], Pos: types.Pt(2, 0)},
		{Card: c[3], Pos: types.Pt(3, 3)},
	}, rec.lastPass(t))
}

func TestEveryMutationRendersPostState(t *testing.T) {
	tbl, rec, c := seeded(t)

	tbl.MoveUp(c[0], 1)

	require.Equal(t, 1, rec.passCount())
	assert.Equal(t, []paint{
		{Card: c[1], Pos: types.Pt(6, 0)},
		{Card: c[0], Pos: types.Pt(0, 0)},
		{Card: c[2], Pos: types.Pt(12, 0)},
	}, rec.lastPass(t))
	assert.Equal(t, 1, rec.flushes)
}

func TestSetRenderer(t *testing.T) {
	c := cards(t, 1)
	first := &recorder{}
	tbl := New(Config{Renderer: first, RenderOnChange: true})
	assert.Same(t, first, tbl.Renderer())

	tbl.SetRenderer(nil)
	tbl.Stack(c[0], types.Pt(0, 0))
	tbl.RenderNow()
	assert.Equal(t, 1, first.passCount(), "nil renderer paints nothing")

	second := &recorder{}
	tbl.SetRenderer(second)
	assert.Equal(t, 0, second.passCount(), "swapping renderers does not paint")
	tbl.SetVisible(c[0], true)
	assert.Equal(t, 1, second.passCount())
	assert.Equal(t, 1, first.passCount())
}

func TestPlacementsIsASnapshot(t *testing.T) {
	tbl, _, c := seeded(t)

	snap := tbl.Placements()
	snap[0].Pos = types.Pt(99, 99)
	snap[1].Visible = false

	assert.Equal(t, types.Pt(0, 0), tbl.HorizontalPositionOf(c[0]))
	assert.True(t, tbl.IsVisible(c[1]))
}

func TestVerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	c := cards(t, 2)
	tbl := New(Config{Logger: log.New(&buf, "", 0), Verbose: true})

	tbl.Stack(c[0], types.Pt(1, 2))
	tbl.MoveUp(c[1], 1)

	assert.Contains(t, buf.String(), "stack: club/1 at (1,2)")
	assert.Contains(t, buf.String(), "move up: club/2 not on table")

	buf.Reset()
	silent := New(Config{Logger: log.New(&buf, "", 0)})
	silent.Stack(c[0], types.Pt(0, 0))
	assert.Empty(t, buf.String())
}
