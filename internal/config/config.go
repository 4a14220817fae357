// Package config resolves the console's settings: defaults, then an optional
// YAML file under the user config dir, then environment overrides.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	apiURLVar       = "EMS_API_URL"
	pollIntervalVar = "EMS_POLL_INTERVAL"
	stateFileVar    = "EMS_STATE_FILE"
	timeoutVar      = "EMS_REQUEST_TIMEOUT"
)

// Config carries everything the console needs to reach the backend and keep
// its session state.
type Config struct {
	APIBaseURL     string        `yaml:"api_url"`
	PollInterval   time.Duration `yaml:"poll_interval"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	StateFile      string        `yaml:"state_file"`
}

// Default returns the built-in settings. StateFile is left empty so the
// session package can resolve its conventional path.
func Default() Config {
	return Config{
		APIBaseURL:     "http://localhost:8080",
		PollInterval:   2 * time.Second,
		RequestTimeout: 20 * time.Second,
	}
}

// UnmarshalYAML accepts durations as Go duration strings ("5s", "750ms").
// Absent fields leave the existing values alone so defaults survive a
// partial file.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		APIBaseURL     string `yaml:"api_url"`
		PollInterval   string `yaml:"poll_interval"`
		RequestTimeout string `yaml:"request_timeout"`
		StateFile      string `yaml:"state_file"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.APIBaseURL != "" {
		c.APIBaseURL = raw.APIBaseURL
	}
	if raw.StateFile != "" {
		c.StateFile = raw.StateFile
	}
	if raw.PollInterval != "" {
		d, err := time.ParseDuration(raw.PollInterval)
		if err != nil {
			return errors.Wrap(err, "poll_interval")
		}
		c.PollInterval = d
	}
	if raw.RequestTimeout != "" {
		d, err := time.ParseDuration(raw.RequestTimeout)
		if err != nil {
			return errors.Wrap(err, "request_timeout")
		}
		c.RequestTimeout = d
	}
	return nil
}

// DefaultFilePath returns the conventional config file location.
func DefaultFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "[DefaultFilePath] resolve home directory")
	}
	return filepath.Join(home, ".config", "ems-console", "config.yaml"), nil
}

// Load resolves the configuration. A missing file is not an error; a present
// but unreadable one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, errors.Wrapf(err, "[Load] parse config file %s", path)
			}
		case !errors.Is(err, os.ErrNotExist):
			return Config{}, errors.Wrapf(err, "[Load] read config file %s", path)
		}
	}

	cfg.APIBaseURL = getEnv(apiURLVar, cfg.APIBaseURL)
	cfg.StateFile = getEnv(stateFileVar, cfg.StateFile)
	if v := os.Getenv(pollIntervalVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, "[Load] parse %s", pollIntervalVar)
		}
		cfg.PollInterval = d
	}
	if v := os.Getenv(timeoutVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, "[Load] parse %s", timeoutVar)
		}
		cfg.RequestTimeout = d
	}
	return cfg, nil
}

func getEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
