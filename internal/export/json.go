// Package export writes decks and table snapshots as JSON and reads decks
// back.
package export

// deckJSON is the exported form of a deck.
type deckJSON struct {
	DeckID      string     `json:"deck_id,omitempty"`
	Name        string     `json:"name"`
	DisplayName string     `json:"display_name"`
	Suits       []suitJSON `json:"suits"`
}

// suitJSON is one suit with its numbers.
type suitJSON struct {
	SuitID      string       `json:"suit_id,omitempty"`
	Name        string       `json:"name"`
	DisplayName string       `json:"display_name"`
	Numbers     []numberJSON `json:"numbers"`
}

// numberJSON is one card face. Label is written for readers and ignored on
// import.
type numberJSON struct {
	NumberID    string `json:"number_id,omitempty"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Label       string `json:"label,omitempty"`
}

// tableJSON is a snapshot of a table, bottom placement first.
type tableJSON struct {
	Count      int             `json:"count"`
	Placements []placementJSON `json:"placements"`
}

// placementJSON is one placement. Z is its index in the snapshot.
type placementJSON struct {
	Z        int    `json:"z"`
	NumberID string `json:"number_id"`
	Suit     string `json:"suit"`
	Number   string `json:"number"`
	Label    string `json:"label"`
	X        uint   `json:"x"`
	Y        uint   `json:"y"`
	Visible  bool   `json:"visible"`
}
