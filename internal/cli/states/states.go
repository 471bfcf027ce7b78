package states

import (
	"context"

	"github.com/alecthomas/kingpin/v2"
	"github.com/opencivics/congress/internal/cli/root"
	"github.com/opencivics/congress/pkg/congress"
)

func init() {
	cmd := root.Command("states", "Query per-state data")

	parties := cmd.Command("party-counts", "Show the party membership counts of each state")
	parties.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.StatePartyCounts(ctx)
		})
	})
}
