package table

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/ansicards/pkg/types"
)

// paint is one PaintCard call seen by the recorder.
type paint struct {
	Card *types.Number
	Pos  types.Point
}

// recorder is a types.Renderer and types.Flusher that remembers every pass.
type recorder struct {
	mu      sync.Mutex
	passes  [][]paint
	flushes int
}

func (r *recorder) PaintTableBackground() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.passes = append(r.passes, []paint{})
}

func (r *recorder) PaintCard(card *types.Number, pos types.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	last := len(r.passes) - 1
	r.passes[last] = append(r.passes[last], paint{Card: card, Pos: pos})
}

func (r *recorder) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushes++
}

func (r *recorder) passCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.passes)
}

func (r *recorder) lastPass(t *testing.T) []paint {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.passes, "no render pass recorded")
	return r.passes[len(r.passes)-1]
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.passes = nil
	r.flushes = 0
}

// cards returns n distinct card identities from a fresh poker deck.
func cards(t *testing.T, n int) []*types.Number {
	t.Helper()
	all := types.GeneratePokerDeck(0).Numbers()
	require.GreaterOrEqual(t, len(all), n)
	return all[:n]
}

// newRecorded creates a table with render-on-change on and a clean recorder.
func newRecorded() (*Table, *recorder) {
	rec := &recorder{}
	tbl := New(Config{Renderer: rec, RenderOnChange: true})
	rec.reset()
	return tbl, rec
}
