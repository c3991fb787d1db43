package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ansicards/internal/ansi"
	"github.com/mesh-intelligence/ansicards/internal/export"
	"github.com/mesh-intelligence/ansicards/pkg/cardtable"
	"github.com/mesh-intelligence/ansicards/pkg/types"
)

// newScreen opens the terminal. Tests replace it with a simulation screen.
var newScreen = tcell.NewScreen

const demoLogFile = "demo.log"

type demoFlags struct {
	deck    deckFlags
	shuffle bool
	seed    uint64
	step    time.Duration
	hold    time.Duration
}

func newDemoCmd() *cobra.Command {
	var df demoFlags
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Lay a deck out on the table and play a short sequence",
		Long: "Lay every suit of the deck out in its own row, jokers last, paint the\n" +
			"table once, then move, swap and hide a few cards. The screen stays up\n" +
			"until a key is pressed or --hold elapses. With --json the table is not\n" +
			"painted and its final state is printed instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, &df)
		},
	}
	df.deck.register(cmd)
	cmd.Flags().BoolVar(&df.shuffle, "shuffle", false, "shuffle the cards within each row")
	cmd.Flags().Uint64Var(&df.seed, "seed", 0, "shuffle seed (default: time based)")
	cmd.Flags().DurationVar(&df.step, "step", 400*time.Millisecond, "pause between scripted moves")
	cmd.Flags().DurationVar(&df.hold, "hold", 0, "exit after this long without a key press (0 waits for a key)")
	return cmd
}

func runDemo(cmd *cobra.Command, df *demoFlags) error {
	configDir, cfg, err := effectiveConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return userError(fmt.Errorf("invalid config: %w", err))
	}
	deck, err := df.deck.build(configDir, cfg)
	if err != nil {
		return err
	}
	verbose := cfg.Verbose || flags.verbose

	var rng *rand.Rand
	if df.shuffle {
		seed := df.seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	if flags.jsonMode {
		tbl := cardtable.NewWithOptions(nil, false, cardtable.Options{
			Logger:  newLogger(cmd.ErrOrStderr(), verbose),
			Verbose: verbose,
		})
		cards := layoutDeck(tbl, deck, cfg.Renderer, rng)
		playScript(tbl, cards, func() {})
		if err := export.WriteTable(cmd.OutOrStdout(), tbl.Placements()); err != nil {
			return sysError(err)
		}
		return nil
	}

	logOut := io.Discard
	if verbose {
		f, err := os.OpenFile(filepath.Join(configDir, demoLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return sysError(fmt.Errorf("open demo log: %w", err))
		}
		defer f.Close()
		logOut = f
	}

	screen, err := newScreen()
	if err != nil {
		return sysError(fmt.Errorf("open terminal: %w", err))
	}
	if err := screen.Init(); err != nil {
		return sysError(fmt.Errorf("init terminal: %w", err))
	}
	defer screen.Fini()

	renderer, err := ansi.New(screen, cfg.Renderer)
	if err != nil {
		return userError(err)
	}
	tbl := cardtable.NewWithOptions(renderer, false, cardtable.Options{
		Logger:  newLogger(logOut, verbose),
		Verbose: verbose,
	})

	cards := layoutDeck(tbl, deck, cfg.Renderer, rng)
	tbl.SetRenderOnChange(cfg.RenderOnChange)
	tbl.RenderNow()

	ctx := cmd.Context()
	playScript(tbl, cards, func() {
		if !tbl.RenderOnChange() {
			tbl.RenderNow()
		}
		sleep(ctx, df.step)
	})
	waitForKey(ctx, screen, tbl, df.hold)
	return nil
}

// layoutDeck stacks every suit of deck in its own row, jokers in the last
// row, with one free cell between cards. It turns render-on-change off so the
// whole layout can be painted in one pass, and returns the cards in the order
// they were stacked.
func layoutDeck(tbl types.CardTable, deck *types.Deck, size types.RendererConfig, rng *rand.Rand) []*types.Number {
	tbl.SetRenderOnChange(false)

	stepX := uint(size.CardWidth + 1)
	stepY := uint(size.CardHeight + 1)
	var placed []*types.Number
	row := uint(0)
	place := func(cards []*types.Number) {
		if rng != nil {
			rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
		}
		for i, c := range cards {
			tbl.Stack(c, types.Pt(1+uint(i)*stepX, 1+row*stepY))
		}
		placed = append(placed, cards...)
		row++
	}

	var jokers []*types.Number
	for _, s := range deck.Suits() {
		if s.Name() == types.SuitJoker {
			jokers = s.Numbers()
			continue
		}
		place(slices.Clone(s.Numbers()))
	}
	if len(jokers) > 0 {
		place(jokers)
	}
	return placed
}

// playScript lifts the first card over its neighbour, trades the positions of
// two cards, hides one and finally sends the lifted card to the bottom.
// pause runs after every step.
func playScript(tbl types.CardTable, cards []*types.Number, pause func()) {
	if len(cards) < 4 {
		return
	}
	lifted, neighbour := cards[0], cards[1]

	tbl.MoveUp(lifted, types.BeyondReach)
	pause()

	to := tbl.HorizontalPositionOf(neighbour)
	tbl.ShiftHorizontal(lifted, types.Pt(max(to.X, 1)-1, to.Y+1))
	pause()

	tbl.SwapHorizontal(cards[2], cards[len(cards)-1])
	pause()

	tbl.SetVisible(cards[3], false)
	pause()

	tbl.MoveDown(lifted, types.BeyondReach)
	pause()
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// waitForKey blocks until a key is pressed, hold elapses or ctx ends. A
// terminal resize repaints the table.
func waitForKey(ctx context.Context, screen tcell.Screen, tbl types.CardTable, hold time.Duration) {
	keys := make(chan struct{})
	go func() {
		for {
			switch screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				screen.Sync()
				tbl.RenderNow()
			case *tcell.EventKey:
				close(keys)
				return
			}
		}
	}()

	var timeout <-chan time.Time
	if hold > 0 {
		t := time.NewTimer(hold)
		defer t.Stop()
		timeout = t.C
	}
	select {
	case <-ctx.Done():
	case <-keys:
	case <-timeout:
	}
}
