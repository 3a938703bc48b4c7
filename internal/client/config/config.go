// Package config handles configuration for the terminal client.
package config

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/taskflow/taskflow/internal/flagx"
)

// Config holds runtime settings for the TaskFlow client.
type Config struct {
	// ServerURL is the base URL of the TaskFlow API.
	ServerURL string
	// TokenFile is where the bearer token from the last login is cached.
	TokenFile string
}

func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	if home, err := os.UserHomeDir(); err == nil {
		c.TokenFile = filepath.Join(home, ".taskflow", "token")
	}
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from environment variables and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

func parseEnv(config *Config) {
	if v := os.Getenv("TASKFLOW_SERVER"); v != "" {
		config.ServerURL = v
	}
	if v := os.Getenv("TASKFLOW_TOKEN_FILE"); v != "" {
		config.TokenFile = v
	}
}

// parseFlags populates Config fields from command-line flags.
//
//	-s string   server base URL
//	-f string   token cache file
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-f"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&config.ServerURL, "s", config.ServerURL, "server base URL")
	fs.StringVar(&config.TokenFile, "f", config.TokenFile, "token cache file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
