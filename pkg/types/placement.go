package types

// Placement records one card lying on a table: which card, where it is, and
// whether it is painted. The vertical position of a placement is its index in
// the table's sequence, so it is not stored here.
type Placement struct {
	Card    *Number // Identity of the placed card; compared by pointer.
	Pos     Point   // Horizontal position.
	Visible bool    // Hidden placements keep their slot but are not painted.
}
