package types

import (
	"strconv"
	"sync"
	"unicode/utf8"
)

// Number is a single card of a suit, for example the ace of hearts. The
// pointer to a Number is the card's identity on a CardTable: two Numbers with
// the same name are different cards.
//
// Name, ID and the suit back-reference never change after creation. Only the
// display name is mutable.
type Number struct {
	id   string
	suit *Suit
	name string

	mu          sync.RWMutex
	displayName string
}

func newNumber(s *Suit, name, displayName string) *Number {
	if displayName == "" {
		displayName = name
	}
	return &Number{
		id:          newID(),
		suit:        s,
		name:        name,
		displayName: displayName,
	}
}

// ID returns the UUID v7 assigned when the number was created.
func (n *Number) ID() string { return n.id }

// Name returns the stable name of the number within its suit.
func (n *Number) Name() string { return n.name }

// DisplayName returns the text printed on the card face.
func (n *Number) DisplayName() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.displayName
}

// SetDisplayName changes the printed text. An empty name restores Name.
func (n *Number) SetDisplayName(displayName string) {
	if displayName == "" {
		displayName = n.name
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.displayName = displayName
}

// Suit returns the suit that owns the number. It is nil only for numbers
// built outside a suit.
func (n *Number) Suit() *Suit { return n.suit }

// Deck returns the deck that owns the number's suit, or nil.
func (n *Number) Deck() *Deck {
	if n.suit == nil {
		return nil
	}
	return n.suit.Deck()
}

// Value returns the name parsed as an integer, or 0 for non-numeric names.
func (n *Number) Value() int {
	v, err := strconv.Atoi(n.name)
	if err != nil {
		return 0
	}
	return v
}

// IsJoker reports whether the number belongs to the joker suit.
func (n *Number) IsJoker() bool {
	return n.suit != nil && n.suit.Name() == SuitJoker
}

// Glyph returns the first symbol of the suit's display name, or "" for a
// card without a suit.
func (n *Number) Glyph() string {
	if n.suit == nil {
		return ""
	}
	return firstRune(n.suit.DisplayName())
}

// Label returns the suit glyph followed by the number's display name,
// e.g. "♥A".
func (n *Number) Label() string {
	return n.Glyph() + n.DisplayName()
}

// Clone returns a new card with the same suit, name and display name but a
// new identity. The clone is not registered in the suit; it lets the same
// face appear on a table more than once.
func (n *Number) Clone() *Number {
	return newNumber(n.suit, n.name, n.DisplayName())
}

func (n *Number) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.suit == nil {
		return n.name
	}
	return n.suit.Name() + "/" + n.name
}

func firstRune(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}
