package types

import (
	"errors"
	"fmt"
)

// Config holds the settings shared by the CLI, the table and the renderer.
type Config struct {
	Deck           string         `json:"deck" yaml:"deck" mapstructure:"deck"`
	Jokers         int            `json:"jokers" yaml:"jokers" mapstructure:"jokers"`
	RenderOnChange bool           `json:"render_on_change" yaml:"render_on_change" mapstructure:"render_on_change"`
	Verbose        bool           `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
	Renderer       RendererConfig `json:"renderer" yaml:"renderer" mapstructure:"renderer"`
}

// RendererConfig sizes the terminal renderer and picks its colours. Colour
// values are tcell colour names or #rrggbb strings keyed by suit name or by
// one of ColorFrame, ColorPaper and ColorTable.
type RendererConfig struct {
	CardWidth   int               `json:"card_width" yaml:"card_width" mapstructure:"card_width"`
	CardHeight  int               `json:"card_height" yaml:"card_height" mapstructure:"card_height"`
	TableWidth  int               `json:"table_width" yaml:"table_width" mapstructure:"table_width"`
	TableHeight int               `json:"table_height" yaml:"table_height" mapstructure:"table_height"`
	Colors      map[string]string `json:"colors,omitempty" yaml:"colors,omitempty" mapstructure:"colors"`
}

// Renderer size limits and defaults.
const (
	DefaultCardWidth   = 5
	DefaultCardHeight  = 4
	DefaultTableWidth  = 100
	DefaultTableHeight = 26

	MinCardWidth   = 4
	MaxCardWidth   = 100
	MinCardHeight  = 3
	MaxCardHeight  = 100
	MinTableWidth  = 30
	MaxTableWidth  = 1000
	MinTableHeight = 4
	MaxTableHeight = 1000

	MaxJokers = 99
)

// Non-suit colour keys.
const (
	ColorFrame = "frame"
	ColorPaper = "paper"
	ColorTable = "table"
)

// Config validation errors.
var (
	ErrDeckKindEmpty    = errors.New("deck kind must not be empty")
	ErrJokersInvalid    = errors.New("joker count out of range")
	ErrCardSizeInvalid  = errors.New("card size out of range")
	ErrTableSizeInvalid = errors.New("table size out of range")
	ErrColorKeyUnknown  = errors.New("unknown colour key")
	ErrTableTooSmall    = errors.New("table smaller than one card")
)

// knownColorKeys lists the keys RendererConfig.Validate accepts in Colors.
var knownColorKeys = map[string]bool{
	SuitHeart:   true,
	SuitDiamond: true,
	SuitClub:    true,
	SuitSpade:   true,
	SuitGold:    true,
	SuitCup:     true,
	SuitSword:   true,
	SuitJoker:   true,
	ColorFrame:  true,
	ColorPaper:  true,
	ColorTable:  true,
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Deck:           DeckPoker,
		Jokers:         4,
		RenderOnChange: true,
		Renderer:       DefaultRendererConfig(),
	}
}

// DefaultRendererConfig returns the default renderer dimensions.
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		CardWidth:   DefaultCardWidth,
		CardHeight:  DefaultCardHeight,
		TableWidth:  DefaultTableWidth,
		TableHeight: DefaultTableHeight,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package, wrapped with the offending value.
func (c Config) Validate() error {
	if c.Deck == "" {
		return ErrDeckKindEmpty
	}
	if !knownDeckKinds[c.Deck] {
		return fmt.Errorf("%w: %q", ErrUnknownDeckKind, c.Deck)
	}
	if c.Jokers < 0 || c.Jokers > MaxJokers {
		return fmt.Errorf("%w: %d", ErrJokersInvalid, c.Jokers)
	}
	return c.Renderer.Validate()
}

// Validate checks sizes against their limits and colour keys against the
// known suits. Colour values are checked by the renderer that parses them.
func (r RendererConfig) Validate() error {
	if r.CardWidth < MinCardWidth || r.CardWidth > MaxCardWidth {
		return fmt.Errorf("%w: width %d", ErrCardSizeInvalid, r.CardWidth)
	}
	if r.CardHeight < MinCardHeight || r.CardHeight > MaxCardHeight {
		return fmt.Errorf("%w: height %d", ErrCardSizeInvalid, r.CardHeight)
	}
	if r.TableWidth < MinTableWidth || r.TableWidth > MaxTableWidth {
		return fmt.Errorf("%w: width %d", ErrTableSizeInvalid, r.TableWidth)
	}
	if r.TableHeight < MinTableHeight || r.TableHeight > MaxTableHeight {
		return fmt.Errorf("%w: height %d", ErrTableSizeInvalid, r.TableHeight)
	}
	if r.CardWidth > r.TableWidth || r.CardHeight > r.TableHeight {
		return ErrTableTooSmall
	}
	for key := range r.Colors {
		if !knownColorKeys[key] {
			return fmt.Errorf("%w: %q", ErrColorKeyUnknown, key)
		}
	}
	return nil
}
