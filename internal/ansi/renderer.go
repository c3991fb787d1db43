// Package ansi paints card tables on a terminal through tcell.
//
// A ScreenRenderer draws each card as a framed box with the suit glyph and
// number in the top-left and bottom-right corners. It implements
// types.Renderer and types.Flusher, so a table shows a finished pass on screen
// with a single Show.
package ansi

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/mesh-intelligence/ansicards/pkg/types"
)

// Renderer errors.
var (
	ErrNilScreen    = errors.New("nil screen")
	ErrColorInvalid = errors.New("invalid colour")
)

// jokerLabel replaces both corner labels on joker cards.
const jokerLabel = "J"

// defaultColors maps every colour key to its default tcell colour name.
var defaultColors = map[string]string{
	types.SuitHeart:   "red",
	types.SuitDiamond: "teal",
	types.SuitClub:    "green",
	types.SuitSpade:   "gray",
	types.SuitGold:    "olive",
	types.SuitCup:     "teal",
	types.SuitSword:   "gray",
	types.SuitJoker:   "purple",
	types.ColorFrame:  "black",
	types.ColorPaper:  "white",
	types.ColorTable:  "green",
}

// ScreenRenderer paints cards onto a tcell.Screen. It is safe for concurrent
// use, though a table already serialises its passes.
type ScreenRenderer struct {
	mu     sync.Mutex
	screen tcell.Screen
	size   types.RendererConfig

	table tcell.Style
	paper tcell.Style
	frame tcell.Style
	suits map[string]tcell.Style
}

var (
	_ types.Renderer = (*ScreenRenderer)(nil)
	_ types.Flusher  = (*ScreenRenderer)(nil)
)

// New creates a renderer on screen. Sizes outside their limits fall back to
// the defaults; colours that do not parse are an error.
func New(screen tcell.Screen, cfg types.RendererConfig) (*ScreenRenderer, error) {
	if screen == nil {
		return nil, ErrNilScreen
	}

	colors := make(map[string]tcell.Color, len(defaultColors))
	for key, name := range defaultColors {
		colors[key] = tcell.GetColor(name)
	}
	for key, name := range cfg.Colors {
		if _, ok := defaultColors[key]; !ok {
			return nil, fmt.Errorf("%w: %q", types.ErrColorKeyUnknown, key)
		}
		c, err := parseColor(name)
		if err != nil {
			return nil, fmt.Errorf("colour %s: %w", key, err)
		}
		colors[key] = c
	}

	paper := tcell.StyleDefault.Background(colors[types.ColorPaper])
	r := &ScreenRenderer{
		screen: screen,
		size:   sanitize(cfg),
		table:  tcell.StyleDefault.Background(colors[types.ColorTable]),
		paper:  paper,
		frame:  paper.Foreground(colors[types.ColorFrame]),
		suits:  make(map[string]tcell.Style),
	}
	for key, c := range colors {
		r.suits[key] = paper.Foreground(c)
	}
	return r, nil
}

func parseColor(name string) (tcell.Color, error) {
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault && name != "default" {
		return c, fmt.Errorf("%w: %q", ErrColorInvalid, name)
	}
	return c, nil
}

// sanitize replaces out-of-range sizes with their defaults.
func sanitize(cfg types.RendererConfig) types.RendererConfig {
	out := types.DefaultRendererConfig()
	if cfg.CardWidth >= types.MinCardWidth && cfg.CardWidth <= types.MaxCardWidth {
		out.CardWidth = cfg.CardWidth
	}
	if cfg.CardHeight >= types.MinCardHeight && cfg.CardHeight <= types.MaxCardHeight {
		out.CardHeight = cfg.CardHeight
	}
	if cfg.TableWidth >= types.MinTableWidth && cfg.TableWidth <= types.MaxTableWidth {
		out.TableWidth = cfg.TableWidth
	}
	if cfg.TableHeight >= types.MinTableHeight && cfg.TableHeight <= types.MaxTableHeight {
		out.TableHeight = cfg.TableHeight
	}
	return out
}

// CardSize returns the card width and height in cells.
func (r *ScreenRenderer) CardSize() (width, height int) {
	return r.size.CardWidth, r.size.CardHeight
}

// TableSize returns the table width and height in cells.
func (r *ScreenRenderer) TableSize() (width, height int) {
	return r.size.TableWidth, r.size.TableHeight
}

// PaintTableBackground fills the table rectangle with the table colour.
func (r *ScreenRenderer) PaintTableBackground() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for y := 0; y < r.size.TableHeight; y++ {
		for x := 0; x < r.size.TableWidth; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.table)
		}
	}
}

// PaintCard draws card with its top-left corner at pos. Cards starting outside
// the table are skipped and cards crossing its edge are clipped.
func (r *ScreenRenderer) PaintCard(card *types.Number, pos types.Point) {
	if card == nil || pos.IsNowhere() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if pos.X >= uint(r.size.TableWidth) || pos.Y >= uint(r.size.TableHeight) {
		return
	}
	x, y := int(pos.X), int(pos.Y)
	w, h := r.size.CardWidth, r.size.CardHeight

	for dy := 0; dy < h; dy++ {
		edgeY := dy == 0 || dy == h-1
		for dx := 0; dx < w; dx++ {
			edgeX := dx == 0 || dx == w-1
			switch {
			case edgeX && edgeY:
				r.put(x+dx, y+dy, '*', r.frame)
			case edgeY:
				r.put(x+dx, y+dy, '-', r.frame)
			case edgeX:
				r.put(x+dx, y+dy, '|', r.frame)
			default:
				r.put(x+dx, y+dy, ' ', r.paper)
			}
		}
	}

	style := r.styleFor(card)
	top, bottom := labels(card)
	right := x + w - 1
	r.text(x+1, y+1, right, top, style)
	r.text(max(x+1, right-runewidth.StringWidth(bottom)), y+h-2, right, bottom, style)
}

// Flush shows the painted pass on the terminal.
func (r *ScreenRenderer) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.screen.Show()
}

func (r *ScreenRenderer) styleFor(card *types.Number) tcell.Style {
	if s := card.Suit(); s != nil {
		if style, ok := r.suits[s.Name()]; ok {
			return style
		}
	}
	return r.frame
}

// put sets one cell, dropping it outside the table.
func (r *ScreenRenderer) put(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.size.TableWidth || y >= r.size.TableHeight {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// text writes s from x, stopping before limit.
func (r *ScreenRenderer) text(x, y, limit int, s string, style tcell.Style) {
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if x+cw > limit {
			return
		}
		r.put(x, y, ch, style)
		x += cw
	}
}

// labels returns the top-left and bottom-right corner texts of card. The
// bottom one reads the other way round, number first.
func labels(card *types.Number) (top, bottom string) {
	if card.IsJoker() {
		return jokerLabel, jokerLabel
	}
	return card.Label(), card.DisplayName() + card.Glyph()
}
