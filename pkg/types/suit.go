package types

import (
	"fmt"
	"slices"
	"sync"
)

// Standard suit names used by the generated decks.
const (
	SuitHeart   = "heart"
	SuitDiamond = "diamond"
	SuitClub    = "club"
	SuitSpade   = "spade"
	SuitGold    = "gold"
	SuitCup     = "cup"
	SuitSword   = "sword"
	SuitJoker   = "joker"
)

// Suit groups the numbers of a deck and owns them.
type Suit struct {
	id   string
	deck *Deck
	name string

	mu          sync.RWMutex
	displayName string
	numbers     map[string]*Number
}

func newSuit(d *Deck, name, displayName string) *Suit {
	if displayName == "" {
		displayName = name
	}
	return &Suit{
		id:          newID(),
		deck:        d,
		name:        name,
		displayName: displayName,
		numbers:     make(map[string]*Number),
	}
}

// ID returns the UUID v7 assigned when the suit was created.
func (s *Suit) ID() string { return s.id }

// Name returns the stable suit name.
func (s *Suit) Name() string { return s.name }

// Deck returns the owning deck, or nil for a detached suit.
func (s *Suit) Deck() *Deck { return s.deck }

// DisplayName returns the suit symbol or text shown on card faces.
func (s *Suit) DisplayName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.displayName
}

// SetDisplayName changes the suit symbol. An empty name restores Name.
func (s *Suit) SetDisplayName(displayName string) {
	if displayName == "" {
		displayName = s.name
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.displayName = displayName
}

// CreateNumber adds a number to the suit. A number with the same name is
// replaced; cards holding the old pointer keep it, but the suit forgets it.
// An empty displayName defaults to name.
func (s *Suit) CreateNumber(name, displayName string) (*Number, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	n := newNumber(s, name, displayName)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.numbers[name] = n
	return n, nil
}

// Number returns the number with the given name.
// Returns ErrNumberNotFound if the suit has no such number.
func (s *Suit) Number(name string) (*Number, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.numbers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNumberNotFound, s.name, name)
	}
	return n, nil
}

// Numbers returns the suit's numbers with numeric names in value order first,
// then the rest by name.
func (s *Suit) Numbers() []*Number {
	s.mu.RLock()
	out := make([]*Number, 0, len(s.numbers))
	for _, n := range s.numbers {
		out = append(out, n)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, naturalOrder)
	return out
}

// NumberCount returns how many numbers the suit holds.
func (s *Suit) NumberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.numbers)
}

// clone copies the suit and its numbers into d with fresh identities.
func (s *Suit) clone(d *Deck) *Suit {
	c := newSuit(d, s.name, s.DisplayName())
	for _, n := range s.Numbers() {
		c.numbers[n.name] = newNumber(c, n.name, n.DisplayName())
	}
	return c
}
