package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ansicards/internal/paths"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory",
		Long: "Create the configuration directory with a default config.yaml and an\n" +
			"empty decks directory for custom deck files. Existing files are kept.",
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Join(configDir, paths.DecksDirName), 0o755); err != nil {
		return sysError(fmt.Errorf("create decks directory: %w", err))
	}
	if err := writeConfigIfMissing(paths.ConfigFile(configDir)); err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ansicards initialized in %s\n", configDir)
	return nil
}
