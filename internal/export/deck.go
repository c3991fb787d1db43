package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mesh-intelligence/ansicards/pkg/types"
)

// ErrNilDeck is returned when WriteDeck is given no deck.
var ErrNilDeck = errors.New("nil deck")

// WriteDeck writes deck as indented JSON. Suits are listed by name and
// numbers in natural order.
func WriteDeck(w io.Writer, deck *types.Deck) error {
	if deck == nil {
		return ErrNilDeck
	}

	rec := deckJSON{
		DeckID:      deck.ID(),
		Name:        deck.Name(),
		DisplayName: deck.DisplayName(),
		Suits:       []suitJSON{},
	}
	for _, s := range deck.Suits() {
		sj := suitJSON{
			SuitID:      s.ID(),
			Name:        s.Name(),
			DisplayName: s.DisplayName(),
			Numbers:     []numberJSON{},
		}
		for _, n := range s.Numbers() {
			sj.Numbers = append(sj.Numbers, numberJSON{
				NumberID:    n.ID(),
				Name:        n.Name(),
				DisplayName: n.DisplayName(),
				Label:       n.Label(),
			})
		}
		rec.Suits = append(rec.Suits, sj)
	}
	return encode(w, rec)
}

// ReadDeck builds a new deck from JSON written by WriteDeck or by hand. IDs in
// the input are ignored; every entity gets a fresh identity. A nil ordering
// selects types.NameOrdering.
func ReadDeck(r io.Reader, ordering types.Ordering) (*types.Deck, error) {
	var rec deckJSON
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decoding deck: %w", err)
	}

	deck, err := types.NewDeck(rec.Name, rec.DisplayName, ordering)
	if err != nil {
		return nil, fmt.Errorf("deck %q: %w", rec.Name, err)
	}
	for _, sj := range rec.Suits {
		s, err := deck.CreateSuit(sj.Name, sj.DisplayName)
		if err != nil {
			return nil, fmt.Errorf("suit %q: %w", sj.Name, err)
		}
		for _, nj := range sj.Numbers {
			if _, err := s.CreateNumber(nj.Name, nj.DisplayName); err != nil {
				return nil, fmt.Errorf("number %q in suit %q: %w", nj.Name, sj.Name, err)
			}
		}
	}
	return deck, nil
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
