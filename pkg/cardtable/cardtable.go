// Package cardtable provides the public API for creating card tables.
// This package exposes the factory function while keeping the engine
// internal.
package cardtable

import (
	"log"

	"github.com/mesh-intelligence/ansicards/internal/table"
	"github.com/mesh-intelligence/ansicards/pkg/types"
)

// Options configures a table created by New.
type Options struct {
	// Logger receives trace output when Verbose is set. Nil discards it.
	Logger  *log.Logger
	Verbose bool
}

// New creates an empty card table painting through renderer. A nil renderer
// is allowed and paints nothing. When renderOnChange is set the empty table is
// painted once before New returns.
//
// Example:
//
//	deck := types.GeneratePokerDeck(2)
//	t := cardtable.New(screen, false)
//	for i, card := range deck.Numbers() {
//	    t.Stack(card, types.Pt(uint(i)*6, 0))
//	}
//	t.RenderNow()
func New(renderer types.Renderer, renderOnChange bool) types.CardTable {
	return NewWithOptions(renderer, renderOnChange, Options{})
}

// NewWithOptions is New with logging options.
func NewWithOptions(renderer types.Renderer, renderOnChange bool, opts Options) types.CardTable {
	return table.New(table.Config{
		Renderer:       renderer,
		RenderOnChange: renderOnChange,
		Logger:         opts.Logger,
		Verbose:        opts.Verbose,
	})
}
