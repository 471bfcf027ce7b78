package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/opencivics/congress/config"
	"github.com/opencivics/congress/internal/cli/root"
	"github.com/opencivics/congress/internal/version"
)

// run parses args with a dry-run client writing to a buffer.
func run(t *testing.T, args ...string) (string, error) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvAPIKey, "s3cr3t")
	t.Setenv(config.EnvAPIVersion, "")
	t.Setenv(config.EnvFormat, "")

	buf := &bytes.Buffer{}
	stdout := root.Stdout
	root.Stdout = buf
	t.Cleanup(func() { root.Stdout = stdout })

	_, err := root.Cmd.Parse(append([]string{"--dry-run"}, args...))
	return buf.String(), err
}

func TestDryRun(t *testing.T) {
	const prefix = "https://api.nytimes.com/svc/politics/v3/us/legislative/congress"
	for _, tc := range []struct {
		args   []string
		expect string
	}{{
		args:   []string{"members", "bio", "K000388"},
		expect: "/members/K000388.json?api-key=[scrubbed]",
	}, {
		args:   []string{"members", "list", "115", "house", "--state", "NY", "--district", "10"},
		expect: "/115/house/members.json?api-key=[scrubbed]&state=NY&district=10",
	}, {
		args:   []string{"members", "current", "senate", "CA", "5"},
		expect: "/members/senate/CA/current.json?api-key=[scrubbed]",
	}, {
		args:   []string{"votes", "by-month", "senate", "2017", "1"},
		expect: "/senate/votes/2017/01.json?api-key=[scrubbed]",
	}, {
		args:   []string{"votes", "by-date", "house", "2017-01-03", "2017-01-31"},
		expect: "/house/votes/2017-01-03/2017-01-31.json?api-key=[scrubbed]",
	}, {
		args:   []string{"bills", "cosponsors", "115", "hr2810"},
		expect: "/115/bills/hr2810/cosponsors.json?api-key=[scrubbed]",
	}, {
		args:   []string{"nominees", "by-state", "115", "NY"},
		expect: "/115/nominees/state/NY.json?api-key=[scrubbed]",
	}, {
		args:   []string{"committees", "list", "115", "joint"},
		expect: "/115/joint/committees.json?api-key=[scrubbed]",
	}, {
		args:   []string{"schedule", "show", "house"},
		expect: "/house/schedule.json?api-key=[scrubbed]",
	}, {
		args:   []string{"states", "party-counts"},
		expect: "/states/members/party.json?api-key=[scrubbed]",
	}} {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, err := run(t, tc.args...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(prefix+tc.expect+"\n", out); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestInvalidArguments(t *testing.T) {
	for _, args := range [][]string{
		{"votes", "by-month", "senate", "2017", "13"},
		{"votes", "by-date", "house", "01/03/2017", "2017-01-31"},
		{"members", "list", "115", "joint"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			out, err := run(t, args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if out != "" {
				t.Fatalf("unexpected output: %q", out)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != version.Version+"\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}
