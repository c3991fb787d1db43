package types

// CardTable is an ordered, concurrency-safe collection of placed cards.
//
// The index of a placement in the collection is its z-order: index 0 is the
// bottom card and is painted first, the last index is painted last and shows
// on top. Horizontal positions are independent of z-order.
//
// No operation returns an error. A nil card or a card that is not on the
// table turns every mutation into a no-op, and lookups report the Nowhere and
// BeyondReach sentinels instead.
type CardTable interface {
	// Stack places card on top of the table at pos, removing any earlier
	// placement of the same card first.
	Stack(card *Number, pos Point)

	// Replace substitutes newCard for oldCard in every placement that holds
	// oldCard, keeping position, visibility and z-order.
	Replace(oldCard, newCard *Number)

	// Remove takes card off the table.
	Remove(card *Number)

	// Clear removes every card.
	Clear()

	// Contains reports whether card is on the table.
	Contains(card *Number) bool

	// HorizontalPositionOf returns the position of card, or Nowhere.
	HorizontalPositionOf(card *Number) Point

	// ZIndexOf returns the z-order index of card (0 is the bottom), or
	// BeyondReach.
	ZIndexOf(card *Number) uint

	// Count returns the number of placements.
	Count() int

	// ShiftHorizontal moves card to pos without touching its z-order.
	ShiftHorizontal(card *Number, pos Point)

	// ShiftVertical moves card to z-order index. Indexes past the top are
	// clamped to the top.
	ShiftVertical(card *Number, index uint)

	// MoveUp raises card by layers, stopping at the top.
	MoveUp(card *Number, layers uint)

	// MoveDown lowers card by layers. When layers is not smaller than the
	// current index the card goes to the bottom.
	MoveDown(card *Number, layers uint)

	// SwapHorizontal exchanges the positions of a and b.
	SwapHorizontal(a, b *Number)

	// SwapVertical exchanges the z-order slots of a and b. Each slot keeps
	// its position, so the cards also trade places on screen.
	SwapVertical(a, b *Number)

	// SwapFull exchanges both the positions and the z-order slots of a and b.
	// Each card keeps its own visibility.
	SwapFull(a, b *Number)

	// IsAbove reports whether above is painted after below. False if either
	// card is missing.
	IsAbove(above, below *Number) bool

	// IsBelow reports whether above is painted before below. False if either
	// card is missing.
	IsBelow(above, below *Number) bool

	// IsVisible reports whether card is on the table and painted.
	IsVisible(card *Number) bool

	// SetVisible shows or hides card.
	SetVisible(card *Number, visible bool)

	// RenderOnChange reports whether mutations repaint the table.
	RenderOnChange() bool

	// SetRenderOnChange enables or disables repainting after mutations.
	SetRenderOnChange(enabled bool)

	// Renderer returns the current renderer, which may be nil.
	Renderer() Renderer

	// SetRenderer swaps the renderer. A nil renderer disables painting.
	SetRenderer(r Renderer)

	// RenderNow repaints the table regardless of RenderOnChange.
	RenderNow()

	// Placements returns a copy of the placements, bottom first.
	Placements() []Placement
}
