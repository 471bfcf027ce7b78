package nominees

import (
	"context"

	"github.com/alecthomas/kingpin/v2"
	"github.com/opencivics/congress/internal/cli/root"
	"github.com/opencivics/congress/pkg/congress"
)

func init() {
	cmd := root.Command("nominees", "Query presidential civilian nominations")

	list := cmd.Command("list", "List nominees by category")
	listCongress := list.Arg("congress", "the Congress number").Required().Int()
	listCategory := list.Arg("category", "the nominee category").Required().Enum(
		"received", "updated", "confirmed", "withdrawn")
	list.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.NomineeLists(ctx, *listCongress, congress.NomineeCategory(*listCategory))
		})
	})

	details := cmd.Command("details", "Show a nomination")
	detailsCongress := details.Arg("congress", "the Congress number").Required().Int()
	detailsID := details.Arg("nominee-id", "the nomination ID (e.g., PN40)").Required().String()
	details.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.NomineeDetails(ctx, *detailsCongress, *detailsID)
		})
	})

	byState := cmd.Command("by-state", "List the nominees from a state")
	bsCongress := byState.Arg("congress", "the Congress number").Required().Int()
	bsState := byState.Arg("state", "two-letter state").Required().String()
	byState.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.NomineesByState(ctx, *bsCongress, *bsState)
		})
	})
}
