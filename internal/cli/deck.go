package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ansicards/internal/export"
	"github.com/mesh-intelligence/ansicards/internal/paths"
	"github.com/mesh-intelligence/ansicards/pkg/types"
)

// deckFlags selects the deck for deck and demo commands.
type deckFlags struct {
	kind   string
	jokers int
	file   string
}

func (f *deckFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kind, "kind", "", "deck kind: poker or spanish (default from config)")
	cmd.Flags().IntVar(&f.jokers, "jokers", -1, "number of jokers (default from config)")
	cmd.Flags().StringVar(&f.file, "file", "", "custom deck JSON: a name in <config-dir>/decks or a path")
}

// build returns the deck selected by the flags, falling back to cfg.
func (f *deckFlags) build(configDir string, cfg types.Config) (*types.Deck, error) {
	if f.file != "" {
		return readDeckFile(f.file, configDir)
	}

	kind := cfg.Deck
	if f.kind != "" {
		kind = f.kind
	}
	jokers := cfg.Jokers
	if f.jokers >= 0 {
		jokers = f.jokers
	}
	if jokers > types.MaxJokers {
		return nil, userError(fmt.Errorf("%w: %d", types.ErrJokersInvalid, jokers))
	}

	deck, err := types.GenerateDeck(kind, jokers)
	if err != nil {
		return nil, userError(err)
	}
	return deck, nil
}

func readDeckFile(name, configDir string) (*types.Deck, error) {
	path, err := paths.ResolveDeckFile(name, configDir)
	if err != nil {
		return nil, sysError(fmt.Errorf("resolve deck file: %w", err))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, userError(fmt.Errorf("open deck file: %w", err))
	}
	defer f.Close()

	deck, err := export.ReadDeck(f, orderingFor(name))
	if err != nil {
		return nil, userError(fmt.Errorf("%s: %w", path, err))
	}
	return deck, nil
}

// orderingFor picks the poker or Spanish ordering when the deck file name
// mentions one, and name order otherwise.
func orderingFor(name string) types.Ordering {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, types.DeckPoker):
		return types.PokerOrdering
	case strings.Contains(lower, types.DeckSpanish):
		return types.SpanishOrdering
	}
	return types.NameOrdering
}

func newDeckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Build and export decks",
	}
	cmd.AddCommand(newDeckExportCmd())
	cmd.AddCommand(newDeckListCmd())
	return cmd
}

func newDeckExportCmd() *cobra.Command {
	var df deckFlags
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a deck as JSON to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, cfg, err := effectiveConfig()
			if err != nil {
				return err
			}
			deck, err := df.build(configDir, cfg)
			if err != nil {
				return err
			}
			if err := export.WriteDeck(cmd.OutOrStdout(), deck); err != nil {
				return sysError(err)
			}
			return nil
		},
	}
	df.register(cmd)
	return cmd
}

func newDeckListCmd() *cobra.Command {
	var df deckFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the cards of a deck in deck order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, cfg, err := effectiveConfig()
			if err != nil {
				return err
			}
			deck, err := df.build(configDir, cfg)
			if err != nil {
				return err
			}
			cards := deck.Numbers()
			deck.Sort(cards)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d cards)\n", deck.DisplayName(), len(cards))
			for _, c := range cards {
				fmt.Fprintf(out, "  %-12s %s\n", c.String(), c.Label())
			}
			return nil
		},
	}
	df.register(cmd)
	return cmd
}
