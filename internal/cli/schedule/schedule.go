package schedule

import (
	"context"

	"github.com/alecthomas/kingpin/v2"
	"github.com/opencivics/congress/internal/cli/root"
	"github.com/opencivics/congress/pkg/congress"
)

func init() {
	cmd := root.Command("schedule", "Query the floor schedule")

	show := cmd.Command("show", "Show the upcoming schedule of a chamber")
	chamber := show.Arg("chamber", "house or senate").Required().Enum("house", "senate")
	show.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.ChamberSchedule(ctx, congress.Chamber(*chamber))
		})
	})
}
