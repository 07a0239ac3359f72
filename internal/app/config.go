package app

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// ServerURL is the backend base URL; /api is appended by the client.
	ServerURL string `yaml:"serverUrl"`
	// Home is the client state directory, e.g. $HOME/.securechat.
	Home string `yaml:"home"`
	// ExportDir receives key export artifacts. Defaults to the working dir
	// so exported keys land somewhere the user will see.
	ExportDir string `yaml:"exportDir"`
	// TimeoutSeconds bounds each backend call.
	TimeoutSeconds int `yaml:"timeoutSeconds"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ServerURL:      "http://localhost:8080",
		ExportDir:      ".",
		TimeoutSeconds: 30,
	}
}

// Load reads the config file at path, overlaying it onto the defaults. A
// missing file is not an error; an empty path looks in <home>/.securechat.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = filepath.Join(home, ".securechat")
		path = filepath.Join(cfg.Home, "config.yaml")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg.normalized()
	}
	if err != nil {
		return Config{}, err
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return Config{}, err
	}
	merge(&cfg, parsed)
	return cfg.normalized()
}

func merge(dst *Config, src Config) {
	if src.ServerURL != "" {
		dst.ServerURL = src.ServerURL
	}
	if src.Home != "" {
		dst.Home = src.Home
	}
	if src.ExportDir != "" {
		dst.ExportDir = src.ExportDir
	}
	if src.TimeoutSeconds != 0 {
		dst.TimeoutSeconds = src.TimeoutSeconds
	}
}

func (c Config) normalized() (Config, error) {
	if c.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		c.Home = filepath.Join(home, ".securechat")
	}
	return c, nil
}

// Timeout returns the per-call deadline.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
