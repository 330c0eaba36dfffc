package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultProcessNames are the meeting processes watched out of the box.
// Names must match the process list exactly; use `pgrep -l <partial>` while
// the app is running to find the right one.
var DefaultProcessNames = []string{
	"Lark Helper (Iron)",
	"TencentMeeting",
}

// DefaultPollInterval is how often the monitor checks for meetings.
const DefaultPollInterval = 2 * time.Second

type Config struct {
	ProcessNames []string
	PollInterval time.Duration
}

type fileConfig struct {
	ProcessNames        []string `toml:"process_names"`
	PollIntervalSeconds int      `toml:"poll_interval_seconds"`
}

func Load() (*Config, error) {
	cfg := &Config{
		ProcessNames: append([]string(nil), DefaultProcessNames...),
		PollInterval: DefaultPollInterval,
	}

	path, err := FilePath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err == nil {
		var fc fileConfig
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if fc.ProcessNames != nil {
			cfg.ProcessNames = fc.ProcessNames
		}
		if fc.PollIntervalSeconds > 0 {
			cfg.PollInterval = time.Duration(fc.PollIntervalSeconds) * time.Second
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// Save writes the configuration back to the config file, creating the
// config directory if needed. Called on explicit user changes only, never
// by the monitoring loop.
func (c *Config) Save() error {
	path, err := FilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	defer f.Close()

	fc := fileConfig{
		ProcessNames:        c.ProcessNames,
		PollIntervalSeconds: int(c.PollInterval / time.Second),
	}
	if err := toml.NewEncoder(f).Encode(fc); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SOUNDBREAK_PROCESS_NAMES"); v != "" {
		var names []string
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		cfg.ProcessNames = names
	}
	if v := os.Getenv("SOUNDBREAK_POLL_INTERVAL_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.PollInterval = time.Duration(secs) * time.Second
		}
	}
}

// FilePath returns the config file location, honoring XDG_CONFIG_HOME.
func FilePath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "soundbreak", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine config directory: %w", err)
	}
	return filepath.Join(home, ".config", "soundbreak", "config.toml"), nil
}
