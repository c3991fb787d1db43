// Package table implements the card table engine: an ordered collection of
// placements guarded by a single mutex and repainted through a pluggable
// renderer after every change.
//
// Every exported method holds the table lock for its whole duration, including
// the render pass it may trigger. Methods ending in "Locked" and the render
// helper assume the lock is already held and never take it themselves, so a
// render started from inside an operation cannot deadlock.
package table

import (
	"io"
	"log"
	"slices"
	"sync"

	"github.com/mesh-intelligence/ansicards/pkg/types"
)

// Config controls table construction.
type Config struct {
	// Renderer paints the table. Nil disables painting until SetRenderer.
	Renderer types.Renderer

	// RenderOnChange repaints after every mutation. When set, New paints the
	// empty table once.
	RenderOnChange bool

	// Logger receives trace output when Verbose is set. Nil discards it.
	Logger  *log.Logger
	Verbose bool
}

// Table is the mutex-guarded implementation of types.CardTable.
type Table struct {
	mu             sync.Mutex
	placements     []types.Placement // index is z-order, 0 paints first
	renderer       types.Renderer
	renderOnChange bool

	logger  *log.Logger
	verbose bool
}

var _ types.CardTable = (*Table)(nil)

// New creates an empty table.
func New(cfg Config) *Table {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	t := &Table{
		renderer:       cfg.Renderer,
		renderOnChange: cfg.RenderOnChange,
		logger:         logger,
		verbose:        cfg.Verbose,
	}
	if t.renderOnChange {
		t.mu.Lock()
		t.render()
		t.mu.Unlock()
	}
	return t
}

// RenderOnChange reports whether mutations repaint the table.
func (t *Table) RenderOnChange() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.renderOnChange
}

// SetRenderOnChange enables or disables repainting after mutations. It does
// not paint by itself; call RenderNow after re-enabling to catch up.
func (t *Table) SetRenderOnChange(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.renderOnChange = enabled
}

// Renderer returns the current renderer, which may be nil.
func (t *Table) Renderer() types.Renderer {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.renderer
}

// SetRenderer swaps the renderer. Nil disables painting.
func (t *Table) SetRenderer(r types.Renderer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.renderer = r
}

// RenderNow paints the table immediately, even when RenderOnChange is off.
func (t *Table) RenderNow() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.render()
}

// Placements returns a copy of the placements, bottom first.
func (t *Table) Placements() []types.Placement {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.placements)
}

// changed repaints after a mutation when RenderOnChange is on.
func (t *Table) changed() {
	if t.renderOnChange {
		t.render()
	}
}

// render paints the background and then every visible placement from the
// bottom up. The caller holds t.mu for the whole pass, so no mutation can
// interleave with painting.
func (t *Table) render() {
	r := t.renderer
	if r == nil {
		return
	}

	r.PaintTableBackground()
	painted := 0
	for _, p := range t.placements {
		if !p.Visible {
			continue
		}
		r.PaintCard(p.Card, p.Pos)
		painted++
	}
	if f, ok := r.(types.Flusher); ok {
		f.Flush()
	}
	t.logf("render: painted %d of %d cards", painted, len(t.placements))
}

// indexLocked returns the z-order index of card, or -1.
func (t *Table) indexLocked(card *types.Number) int {
	if card == nil {
		return -1
	}
	return slices.IndexFunc(t.placements, func(p types.Placement) bool {
		return p.Card == card
	})
}

// pairLocked finds two distinct cards. ok is false unless both are present.
func (t *Table) pairLocked(a, b *types.Number) (i, j int, ok bool) {
	if a == nil || b == nil || a == b {
		return -1, -1, false
	}
	i, j = -1, -1
	for k, p := range t.placements {
		switch p.Card {
		case a:
			i = k
		case b:
			j = k
		}
		if i >= 0 && j >= 0 {
			return i, j, true
		}
	}
	return i, j, false
}

// takeLocked removes and returns the placement at index i.
func (t *Table) takeLocked(i int) types.Placement {
	p := t.placements[i]
	t.placements = slices.Delete(t.placements, i, i+1)
	return p
}

// insertLocked puts p at index, clamping index to the top of the table.
func (t *Table) insertLocked(index uint, p types.Placement) {
	if top := uint(len(t.placements)); index > top {
		index = top
	}
	t.placements = slices.Insert(t.placements, int(index), p)
}

func (t *Table) logf(format string, args ...any) {
	if !t.verbose {
		return
	}
	t.logger.Printf(format, args...)
}
