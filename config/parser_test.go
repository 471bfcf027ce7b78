package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
)

// clearEnv makes sure the process environment does not leak into the test.
func clearEnv(t *testing.T) {
	for _, key := range []string{EnvConfigPath, EnvAPIKey, EnvAPIVersion, EnvFormat} {
		t.Setenv(key, "")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
}

func TestParseConfig(t *testing.T) {
	config, err := ReadConfig("testdata/valid-config.json")
	if err != nil {
		t.Fatal(err)
	}

	expect := &Config{
		APIKey:            "file-key",
		APIVersion:        "v3",
		Format:            "xml",
		BaseURL:           "https://api.example.com/svc/politics",
		TimeoutSeconds:    30,
		RequestsPerSecond: 0.5,
	}
	if diff := cmp.Diff(expect, config, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Fatal(diff)
	}
	if config.Path() != "testdata/valid-config.json" {
		t.Fatal("unexpected path", config.Path())
	}
	if config.Timeout() != 30*time.Second {
		t.Fatal("unexpected timeout", config.Timeout())
	}
}

func TestParseConfigInvalidJSON(t *testing.T) {
	if _, err := ParseConfig([]byte(`{"api_key": `)); err == nil {
		t.Fatal("expected an error")
	}
}

func TestLoad(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		clearEnv(t)
		config, err := Load("testdata/valid-config.json")
		if err != nil {
			t.Fatal(err)
		}
		if config.APIKey != "file-key" || config.Format != "xml" {
			t.Fatalf("unexpected config: %+v", config)
		}
	})

	t.Run("explicit path that does not exist", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("path from the environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvConfigPath, "testdata/valid-config.json")
		config, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		if config.Path() != "testdata/valid-config.json" {
			t.Fatal("unexpected path", config.Path())
		}
	})

	t.Run("missing default file with key in the environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvAPIKey, "env-key")
		config, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		expect := &Config{APIKey: "env-key", APIVersion: DefaultAPIVersion, Format: DefaultFormat}
		if diff := cmp.Diff(expect, config, cmpopts.IgnoreUnexported(Config{})); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("default file is read", func(t *testing.T) {
		clearEnv(t)
		path, err := DefaultPath()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(`{"api_key": "default-key"}`), 0600); err != nil {
			t.Fatal(err)
		}
		config, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		if config.APIKey != "default-key" || config.Path() != path {
			t.Fatalf("unexpected config: %+v", config)
		}
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvAPIKey, "env-key")
		t.Setenv(EnvAPIVersion, "v2")
		t.Setenv(EnvFormat, "json")
		config, err := Load("testdata/valid-config.json")
		if err != nil {
			t.Fatal(err)
		}
		if config.APIKey != "env-key" || config.APIVersion != "v2" || config.Format != "json" {
			t.Fatalf("unexpected config: %+v", config)
		}
	})

	t.Run("missing API key", func(t *testing.T) {
		clearEnv(t)
		_, err := Load("")
		if !errors.Is(err, ErrMissingAPIKey) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		clearEnv(t)
		if _, err := Load("testdata/invalid-format.json"); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		config Config
		ok     bool
	}{{
		name:   "valid",
		config: Config{APIKey: "k", Format: "json"},
		ok:     true,
	}, {
		name:   "negative timeout",
		config: Config{APIKey: "k", Format: "json", TimeoutSeconds: -1},
	}, {
		name:   "negative rate",
		config: Config{APIKey: "k", Format: "xml", RequestsPerSecond: -1},
	}} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if (err == nil) != tc.ok {
				t.Fatal("unexpected result", err)
			}
		})
	}
}
