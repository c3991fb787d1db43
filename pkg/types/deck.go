package types

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Deck kinds accepted by GenerateDeck and Config.
const (
	DeckPoker   = "poker"
	DeckSpanish = "spanish"
)

var knownDeckKinds = map[string]bool{
	DeckPoker:   true,
	DeckSpanish: true,
}

// Deck errors.
var (
	ErrInvalidName     = errors.New("invalid name")
	ErrSuitNotFound    = errors.New("suit not found")
	ErrNumberNotFound  = errors.New("number not found")
	ErrUnknownDeckKind = errors.New("unknown deck kind")
)

var (
	pokerSuitNames      = [4]string{SuitHeart, SuitDiamond, SuitClub, SuitSpade}
	pokerSuitDisplays   = [4]string{"♥", "♦", "♣", "♠"}
	spanishSuitNames    = [4]string{SuitGold, SuitCup, SuitClub, SuitSword}
	spanishSuitDisplays = [4]string{"\U0001F3C5", "\U0001F3C6", "\U0001F3CF", "⚔"}
)

// Deck owns a set of suits, which own their numbers. Every card identity used
// on a table comes from a deck, and the deck must outlive the table's use of
// its cards.
type Deck struct {
	id       string
	name     string
	ordering Ordering

	mu          sync.RWMutex
	displayName string
	suits       map[string]*Suit
}

// NewDeck creates an empty deck. A nil ordering defaults to NameOrdering and
// an empty displayName defaults to name.
func NewDeck(name, displayName string, ordering Ordering) (*Deck, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if displayName == "" {
		displayName = name
	}
	if ordering == nil {
		ordering = NameOrdering
	}
	return &Deck{
		id:          newID(),
		name:        name,
		ordering:    ordering,
		displayName: displayName,
		suits:       make(map[string]*Suit),
	}, nil
}

// GeneratePokerDeck builds the 52 French-suited cards plus jokers in a joker
// suit. Aces are named "1" and shown as "A"; 11, 12 and 13 show as J, Q, K.
func GeneratePokerDeck(jokers int) *Deck {
	d, _ := NewDeck("poker_deck", "Poker deck", PokerOrdering)
	for i, name := range pokerSuitNames {
		s, _ := d.CreateSuit(name, pokerSuitDisplays[i])
		s.mustCreate("1", "A")
		for v := 2; v <= 10; v++ {
			s.mustCreate(strconv.Itoa(v), "")
		}
		s.mustCreate("11", "J")
		s.mustCreate("12", "Q")
		s.mustCreate("13", "K")
	}
	d.addJokers(jokers)
	return d
}

// GenerateSpanishDeck builds the 40 Spanish-suited cards plus jokers. Aces are
// named "1" and shown as "A"; 8, 9 and 10 show as S, C, R.
func GenerateSpanishDeck(jokers int) *Deck {
	d, _ := NewDeck("spanish_deck", "Spanish Deck", SpanishOrdering)
	for i, name := range spanishSuitNames {
		s, _ := d.CreateSuit(name, spanishSuitDisplays[i])
		s.mustCreate("1", "A")
		for v := 2; v <= 7; v++ {
			s.mustCreate(strconv.Itoa(v), "")
		}
		s.mustCreate("8", "S")
		s.mustCreate("9", "C")
		s.mustCreate("10", "R")
	}
	d.addJokers(jokers)
	return d
}

// GenerateDeck builds a deck by kind name.
// Returns ErrUnknownDeckKind for anything but DeckPoker and DeckSpanish.
func GenerateDeck(kind string, jokers int) (*Deck, error) {
	switch strings.ToLower(kind) {
	case DeckPoker:
		return GeneratePokerDeck(jokers), nil
	case DeckSpanish:
		return GenerateSpanishDeck(jokers), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDeckKind, kind)
}

// addJokers always creates the joker suit, even for zero jokers.
func (d *Deck) addJokers(n int) {
	s, _ := d.CreateSuit(SuitJoker, "Joker")
	for i := 0; i < n; i++ {
		s.mustCreate(strconv.Itoa(i), "J")
	}
}

func (s *Suit) mustCreate(name, displayName string) {
	if _, err := s.CreateNumber(name, displayName); err != nil {
		panic(err)
	}
}

// ID returns the UUID v7 assigned when the deck was created.
func (d *Deck) ID() string { return d.id }

// Name returns the stable deck name.
func (d *Deck) Name() string { return d.name }

// DisplayName returns the human-readable deck name.
func (d *Deck) DisplayName() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.displayName
}

// SetDisplayName changes the human-readable name. An empty name restores Name.
func (d *Deck) SetDisplayName(displayName string) {
	if displayName == "" {
		displayName = d.name
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.displayName = displayName
}

// CreateSuit adds an empty suit. A suit with the same name is replaced along
// with all its numbers.
func (d *Deck) CreateSuit(name, displayName string) (*Suit, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	s := newSuit(d, name, displayName)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.suits[name] = s
	return s, nil
}

// Suit returns the suit with the given name.
// Returns ErrSuitNotFound if the deck has no such suit.
func (d *Deck) Suit(name string) (*Suit, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s, ok := d.suits[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSuitNotFound, name)
	}
	return s, nil
}

// Number looks up a card by suit and number name.
func (d *Deck) Number(suit, name string) (*Number, error) {
	s, err := d.Suit(suit)
	if err != nil {
		return nil, err
	}
	return s.Number(name)
}

// Suits returns the suits sorted by name.
func (d *Deck) Suits() []*Suit {
	d.mu.RLock()
	out := make([]*Suit, 0, len(d.suits))
	for _, s := range d.suits {
		out = append(out, s)
	}
	d.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Suit) int { return strings.Compare(a.name, b.name) })
	return out
}

// SuitCount returns how many suits the deck holds.
func (d *Deck) SuitCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.suits)
}

// Numbers returns every card of the deck, suit by suit in Suits order.
func (d *Deck) Numbers() []*Number {
	var out []*Number
	for _, s := range d.Suits() {
		out = append(out, s.Numbers()...)
	}
	return out
}

// NumberCount returns the total number of cards across all suits.
func (d *Deck) NumberCount() int {
	total := 0
	for _, s := range d.Suits() {
		total += s.NumberCount()
	}
	return total
}

// Compare orders two cards with the deck's Ordering.
func (d *Deck) Compare(a, b *Number) int {
	return d.ordering(a, b)
}

// Sort orders cards in place with the deck's Ordering, lowest first.
func (d *Deck) Sort(cards []*Number) {
	slices.SortStableFunc(cards, d.ordering)
}

// Clone deep-copies the deck. Every suit and number of the copy is a new
// identity, so cards of the clone never match cards of the source deck.
func (d *Deck) Clone() *Deck {
	c := &Deck{
		id:          newID(),
		name:        d.name,
		ordering:    d.ordering,
		displayName: d.DisplayName(),
		suits:       make(map[string]*Suit),
	}
	for _, s := range d.Suits() {
		c.suits[s.name] = s.clone(c)
	}
	return c
}

// newID generates a UUID v7 string.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
