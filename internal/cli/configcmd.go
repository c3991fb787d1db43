package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/ansicards/internal/paths"
	"github.com/mesh-intelligence/ansicards/pkg/types"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}
	cmd.AddCommand(newConfigCheckCmd())
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate config.yaml and environment overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, cfg, err := effectiveConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return userError(fmt.Errorf("invalid config %s: %w", paths.ConfigFile(configDir), err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config ok: %s\n", paths.ConfigFile(configDir))
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := effectiveConfig()
			if err != nil {
				return err
			}
			if flags.jsonMode {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return sysError(fmt.Errorf("marshal config: %w", err))
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

// effectiveConfig resolves the config directory and loads the config in it.
func effectiveConfig() (string, types.Config, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return "", types.Config{}, err
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return "", types.Config{}, err
	}
	return configDir, cfg, nil
}
