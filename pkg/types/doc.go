// Package types defines the CardTable and Renderer interfaces, the value types
// placed on a table (Point, Placement), the Deck/Suit/Number entities that serve
// as card identities, and the standard error values for AnsiCards.
package types
