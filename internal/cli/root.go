// Package cli implements the ansicards command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ansicards/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
	verbose   bool
}

var flags rootFlags

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error returned by a command to a process exit code.
// Errors without an explicit code are user errors, like cobra's flag errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// NewRootCmd creates the top-level "ansicards" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ansicards",
		Short: "Card decks and card tables on the terminal",
		Long: "ansicards builds poker and Spanish decks, lays them out on a card table\n" +
			"and paints the table on the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log table operations")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newDeckCmd())
	root.AddCommand(newDemoCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(exitCode(err))
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() (string, error) {
	dir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return "", sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	return dir, nil
}

// newLogger returns the logger for table tracing. It writes to w only when
// verbose is set.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		w = io.Discard
	}
	return log.New(w, log.Prefix(), log.Flags())
}
