package config

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/opencivics/congress/internal/hujsonx"
	"github.com/opencivics/congress/internal/model"
	"github.com/pkg/errors"
)

// ErrMissingAPIKey indicates that neither the config file nor the
// environment provide an API key.
var ErrMissingAPIKey = errors.New("missing api_key")

// ReadConfig reads the configuration from the path
func ReadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c, err := ParseConfig(b)
	if err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	c.path = path
	return c, nil
}

// ParseConfig returns config from JSON bytes. Comments and trailing
// commas are allowed.
func ParseConfig(b []byte) (*Config, error) {
	var c Config

	if err := hujsonx.Unmarshal(b, &c); err != nil {
		return nil, errors.Wrap(err, "parsing json")
	}

	return &c, nil
}

// DefaultPath returns the config path used when neither the --config
// flag nor $CONGRESS_CONFIG are set.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "congress", "config.json"), nil
}

// Load reads the config at path, or at $CONGRESS_CONFIG, or at the
// [DefaultPath]. A missing file is only an error when the path was
// given explicitly. The environment overrides the file, then
// defaults are applied and the result is validated.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		if value, found := os.LookupEnv(EnvConfigPath); found && value != "" {
			path, explicit = value, true
		}
	}
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, errors.Wrap(err, "locating config")
		}
	}

	c, err := ReadConfig(path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		c = &Config{}
	default:
		return nil, errors.Wrapf(err, "loading %s", path)
	}

	c.ApplyEnv(os.LookupEnv)

	if err := c.Default(); err != nil {
		return nil, errors.Wrap(err, "defaulting")
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating")
	}

	return c, nil
}

// ApplyEnv overrides settings using the given environment lookup
// function. Empty values are ignored.
func (c *Config) ApplyEnv(lookup func(key string) (string, bool)) {
	for _, entry := range []struct {
		key   string
		value *string
	}{
		{EnvAPIKey, &c.APIKey},
		{EnvAPIVersion, &c.APIVersion},
		{EnvFormat, &c.Format},
	} {
		if value, found := lookup(entry.key); found && value != "" {
			*entry.value = value
		}
	}
}

// Default config settings
func (c *Config) Default() error {
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	return nil
}

// Validate the config file
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if !model.Format(c.Format).Valid() {
		return errors.Errorf("invalid format %q", c.Format)
	}
	if c.TimeoutSeconds < 0 {
		return errors.Errorf("negative timeout_seconds: %d", c.TimeoutSeconds)
	}
	if c.RequestsPerSecond < 0 {
		return errors.Errorf("negative requests_per_second: %v", c.RequestsPerSecond)
	}
	return nil
}
