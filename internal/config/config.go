// ABOUTME: Configuration loader for the campus CLI
// ABOUTME: Resolves settings from flags, environment, and an optional .env file

package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/campus-companion/cli/internal/credstore"
)

// DefaultAPIURL is used when no base URL is configured. The record store
// serves every collection from one host; per-view host overrides are not
// supported.
const DefaultAPIURL = "http://localhost:5000"

// Config holds resolved client settings.
type Config struct {
	APIURL    string // base URL of the record store
	ConfigDir string // directory for the token file and debug log
	Debug     bool   // enables debug-level logging
}

// Load resolves configuration with flag > env > default precedence.
// flagAPIURL is the value of the --api-url flag, empty when unset.
func Load(flagAPIURL string) *Config {
	v := viper.New()
	v.SetEnvPrefix("CAMPUS")
	v.SetDefault("api_url", DefaultAPIURL)
	v.SetDefault("config_dir", credstore.DefaultConfigDir())
	v.SetDefault("debug", false)

	// Load .env from the working directory if present.
	if _, err := os.Stat(dotEnvPath()); err == nil {
		_ = godotenv.Load(dotEnvPath())
	}
	v.AutomaticEnv()

	cfg := &Config{
		APIURL:    v.GetString("api_url"),
		ConfigDir: v.GetString("config_dir"),
		Debug:     v.GetBool("debug"),
	}
	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
	}
	return cfg
}

func dotEnvPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ".env"
	}
	return filepath.Join(cwd, ".env")
}
