package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const envPrefix = "GITBRIDGE"

// Settings holds the environment-overridable knobs of the tool.
type Settings struct {
	// ConfigPath is the account store file (GITBRIDGE_CONFIG).
	ConfigPath string
	// APIBase is the REST API base URL (GITBRIDGE_API).
	APIBase string
	// GitBin is the git executable to invoke (GITBRIDGE_GIT).
	GitBin string
}

// Load resolves settings from the environment, falling back to defaults.
func Load() *Settings {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("config", defaultConfigPath())
	v.SetDefault("api", "https://api.github.com")
	v.SetDefault("git", "git")

	return &Settings{
		ConfigPath: v.GetString("config"),
		APIBase:    v.GetString("api"),
		GitBin:     v.GetString("git"),
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".gitbridge", "config.json")
	}
	return filepath.Join(home, ".gitbridge", "config.json")
}
