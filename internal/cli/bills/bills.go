package bills

import (
	"context"

	"github.com/alecthomas/kingpin/v2"
	"github.com/opencivics/congress/internal/cli/root"
	"github.com/opencivics/congress/pkg/congress"
)

// billResource registers a command taking a Congress number and a bill ID.
func billResource(cmd *kingpin.CmdClause, name, help string,
	fetch func(c *congress.Client, ctx context.Context, number int, billID string) ([]byte, error)) {
	sub := cmd.Command(name, help)
	number := sub.Arg("congress", "the Congress number").Required().Int()
	billID := sub.Arg("bill-id", "the bill ID (e.g., hr21)").Required().String()
	sub.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return fetch(c, ctx, *number, *billID)
		})
	})
}

func init() {
	cmd := root.Command("bills", "Query bills")

	recent := cmd.Command("recent", "List recent bills of a chamber")
	recentCongress := recent.Arg("congress", "the Congress number").Required().Int()
	recentChamber := recent.Arg("chamber", "house or senate").Required().Enum("house", "senate")
	recentType := recent.Arg("type", "the bill type").Required().Enum("introduced", "updated", "passed", "major")
	recent.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.RecentBills(ctx, *recentCongress, congress.Chamber(*recentChamber), congress.BillType(*recentType))
		})
	})

	byMember := cmd.Command("by-member", "List recent bills of a member")
	bmID := byMember.Arg("member-id", "the member ID").Required().String()
	bmType := byMember.Arg("type", "the bill type").Required().Enum("introduced", "updated", "passed", "major")
	byMember.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.BillsByMember(ctx, *bmID, congress.BillType(*bmType))
		})
	})

	billResource(cmd, "details", "Show a bill", (*congress.Client).BillDetails)
	billResource(cmd, "subjects", "List the subjects of a bill", (*congress.Client).BillSubjects)
	billResource(cmd, "amendments", "List the amendments of a bill", (*congress.Client).BillAmendments)
	billResource(cmd, "related", "List the bills related to a bill", (*congress.Client).RelatedBills)
	billResource(cmd, "cosponsors", "List the cosponsors of a bill", (*congress.Client).BillCosponsors)
}
