package committees

import (
	"context"

	"github.com/alecthomas/kingpin/v2"
	"github.com/opencivics/congress/internal/cli/root"
	"github.com/opencivics/congress/pkg/congress"
)

func init() {
	cmd := root.Command("committees", "Query committees")

	list := cmd.Command("list", "List the committees of a chamber")
	listCongress := list.Arg("congress", "the Congress number").Required().Int()
	listChamber := list.Arg("chamber", "house, senate, or joint").Required().Enum("house", "senate", "joint")
	list.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.Committees(ctx, *listCongress, congress.Chamber(*listChamber))
		})
	})

	members := cmd.Command("members", "Show a committee and its members")
	membersCongress := members.Arg("congress", "the Congress number").Required().Int()
	membersChamber := members.Arg("chamber", "house, senate, or joint").Required().Enum("house", "senate", "joint")
	membersID := members.Arg("committee-id", "the committee ID").Required().String()
	members.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.CommitteeMembers(ctx, *membersCongress, congress.Chamber(*membersChamber), *membersID)
		})
	})
}
