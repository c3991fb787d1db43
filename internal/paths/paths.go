// Package paths resolves the configuration directory and the files kept in it.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Names of the application directory and the files inside it.
const (
	AppDirName     = "ansicards"
	ConfigFileName = "config.yaml"
	DecksDirName   = "decks"
)

// EnvConfigDir overrides the platform configuration directory.
const EnvConfigDir = "ANSICARDS_CONFIG_DIR"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/ansicards (fallback ~/.config/ansicards)
// macOS:   ~/Library/Application Support/ansicards
// Windows: %APPDATA%/ansicards
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > ANSICARDS_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ConfigFile returns the path of config.yaml inside configDir.
func ConfigFile(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}

// ResolveDeckFile locates a custom deck. A bare name such as "tarot" maps to
// <configDir>/decks/tarot.json; anything that looks like a path is made
// absolute as given.
func ResolveDeckFile(name, configDir string) (string, error) {
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') ||
		filepath.Ext(name) == ".json" {
		return filepath.Abs(name)
	}
	return filepath.Join(configDir, DecksDirName, name+".json"), nil
}
