package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/ansicards/internal/paths"
	"github.com/mesh-intelligence/ansicards/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "ANSICARDS"

	cfgKeyDeck           = "deck"
	cfgKeyJokers         = "jokers"
	cfgKeyRenderOnChange = "render_on_change"
	cfgKeyVerbose        = "verbose"
	cfgKeyCardWidth      = "renderer.card_width"
	cfgKeyCardHeight     = "renderer.card_height"
	cfgKeyTableWidth     = "renderer.table_width"
	cfgKeyTableHeight    = "renderer.table_height"
	cfgKeyColors         = "renderer.colors"
)

// defaultConfigHeader is written above the generated defaults.
const defaultConfigHeader = `# ansicards configuration
# deck: poker or spanish. Colours take tcell names or #rrggbb, keyed by suit
# name or by frame, paper and table.
`

// loadConfig reads config.yaml from configDir using Viper. It creates the
// config directory and a default config.yaml on first run. Environment
// variables prefixed ANSICARDS_ override file values, with dots in keys
// written as underscores (ANSICARDS_RENDERER_CARD_WIDTH).
func loadConfig(configDir string) (types.Config, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return types.Config{}, sysError(fmt.Errorf("create config dir: %w", err))
	}
	if err := writeConfigIfMissing(paths.ConfigFile(configDir)); err != nil {
		return types.Config{}, sysError(fmt.Errorf("write default config: %w", err))
	}

	def := types.DefaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyDeck, def.Deck)
	v.SetDefault(cfgKeyJokers, def.Jokers)
	v.SetDefault(cfgKeyRenderOnChange, def.RenderOnChange)
	v.SetDefault(cfgKeyVerbose, def.Verbose)
	v.SetDefault(cfgKeyCardWidth, def.Renderer.CardWidth)
	v.SetDefault(cfgKeyCardHeight, def.Renderer.CardHeight)
	v.SetDefault(cfgKeyTableWidth, def.Renderer.TableWidth)
	v.SetDefault(cfgKeyTableHeight, def.Renderer.TableHeight)
	v.SetDefault(cfgKeyColors, map[string]string{})

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, userError(fmt.Errorf("read config: %w", err))
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, userError(fmt.Errorf("decode config: %w", err))
	}
	cfg.Deck = strings.ToLower(cfg.Deck)
	return cfg, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(types.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, append([]byte(defaultConfigHeader), data...), 0o644)
}
