package types

// Renderer paints a card table. A CardTable calls it synchronously while
// holding its own lock, so a Renderer must never call back into the table.
type Renderer interface {
	// PaintCard draws one card at the given position.
	PaintCard(card *Number, pos Point)

	// PaintTableBackground draws the empty table. It is called once at the
	// start of every render pass, before any card.
	PaintTableBackground()
}

// Flusher is implemented by renderers that buffer output. When the table's
// renderer is a Flusher, Flush is called once after every complete pass.
type Flusher interface {
	Flush()
}
