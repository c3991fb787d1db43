package types

import (
	"cmp"
	"strings"
)

// Ordering compares two cards of the same deck, returning a negative number
// when a sorts before b, zero when they are equivalent and a positive number
// otherwise. A deck's Ordering is fixed when the deck is created.
type Ordering func(a, b *Number) int

// NameOrdering sorts by suit name, then by numeric value, then by number name.
func NameOrdering(a, b *Number) int {
	if c := cmp.Compare(a.Suit().Name(), b.Suit().Name()); c != 0 {
		return c
	}
	return naturalOrder(a, b)
}

// PokerOrdering ranks aces high and jokers above every other card. Cards of
// equal rank are ordered by suit name.
func PokerOrdering(a, b *Number) int {
	if c := cmp.Compare(pokerRank(a), pokerRank(b)); c != 0 {
		return c
	}
	return cmp.Compare(a.Suit().Name(), b.Suit().Name())
}

// SpanishOrdering ranks by face value with jokers above every other card.
// Cards of equal rank are ordered by suit name.
func SpanishOrdering(a, b *Number) int {
	if c := cmp.Compare(spanishRank(a), spanishRank(b)); c != 0 {
		return c
	}
	return cmp.Compare(a.Suit().Name(), b.Suit().Name())
}

const jokerRank = 1 << 10

func pokerRank(n *Number) int {
	if n.IsJoker() {
		return jokerRank + n.Value()
	}
	if v := n.Value(); v != 1 {
		return v
	}
	return 14
}

func spanishRank(n *Number) int {
	if n.IsJoker() {
		return jokerRank + n.Value()
	}
	return n.Value()
}

// naturalOrder sorts numeric names by value and everything else by name after
// them, which keeps "2" before "10".
func naturalOrder(a, b *Number) int {
	av, bv := a.Value(), b.Value()
	switch {
	case av != 0 && bv != 0:
		if c := cmp.Compare(av, bv); c != 0 {
			return c
		}
	case av != 0:
		return -1
	case bv != 0:
		return 1
	}
	return strings.Compare(a.Name(), b.Name())
}
