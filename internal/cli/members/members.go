package members

import (
	"context"

	"github.com/alecthomas/kingpin/v2"
	"github.com/opencivics/congress/internal/cli/root"
	"github.com/opencivics/congress/pkg/congress"
)

func init() {
	cmd := root.Command("members", "Query members of Congress")

	list := cmd.Command("list", "List the members of a chamber")
	listCongress := list.Arg("congress", "the Congress number").Required().Int()
	listChamber := list.Arg("chamber", "house or senate").Required().Enum("house", "senate")
	listState := list.Flag("state", "filter by two-letter state").String()
	listDistrict := list.Flag("district", "filter by House district").String()
	list.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			opts := &congress.MembersListOptions{State: *listState, District: *listDistrict}
			return c.MembersList(ctx, *listCongress, congress.Chamber(*listChamber), opts)
		})
	})

	bio := cmd.Command("bio", "Show a member's biography and roles")
	bioID := bio.Arg("member-id", "the member ID").Required().String()
	bio.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.MemberBio(ctx, *bioID)
		})
	})

	newMembers := cmd.Command("new", "List the most recently added members")
	newMembers.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.NewMembers(ctx)
		})
	})

	current := cmd.Command("current", "List the current members for a state and district")
	currentChamber := current.Arg("chamber", "house or senate").Required().Enum("house", "senate")
	currentState := current.Arg("state", "two-letter state").Required().String()
	currentDistrict := current.Arg("district", "House district").String()
	current.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.CurrentMembersByStateDistrict(ctx, congress.Chamber(*currentChamber), *currentState, *currentDistrict)
		})
	})

	leaving := cmd.Command("leaving", "List the members leaving office")
	leavingCongress := leaving.Arg("congress", "the Congress number").Required().Int()
	leavingChamber := leaving.Arg("chamber", "house or senate").Required().Enum("house", "senate")
	leaving.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.MembersLeavingOffice(ctx, *leavingCongress, congress.Chamber(*leavingChamber))
		})
	})

	votes := cmd.Command("votes", "List a member's most recent vote positions")
	votesID := votes.Arg("member-id", "the member ID").Required().String()
	votes.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.MemberVotePositions(ctx, *votesID)
		})
	})

	compareVotes := cmd.Command("compare-votes", "Compare the vote positions of two members")
	cvFirst := compareVotes.Arg("first-id", "the first member ID").Required().String()
	cvSecond := compareVotes.Arg("second-id", "the second member ID").Required().String()
	cvCongress := compareVotes.Arg("congress", "the Congress number").Required().Int()
	cvChamber := compareVotes.Arg("chamber", "house or senate").Required().Enum("house", "senate")
	compareVotes.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.MemberVoteComparison(ctx, *cvFirst, *cvSecond, *cvCongress, congress.Chamber(*cvChamber))
		})
	})

	cosponsored := cmd.Command("cosponsored", "List the bills a member cosponsored or withdrew from")
	coID := cosponsored.Arg("member-id", "the member ID").Required().String()
	coType := cosponsored.Arg("type", "cosponsored or withdrawn").Required().Enum("cosponsored", "withdrawn")
	cosponsored.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.MemberCosponsoredBills(ctx, *coID, congress.CosponsorType(*coType))
		})
	})

	compareBills := cmd.Command("compare-bills", "Compare the bill sponsorships of two members")
	cbFirst := compareBills.Arg("first-id", "the first member ID").Required().String()
	cbSecond := compareBills.Arg("second-id", "the second member ID").Required().String()
	cbCongress := compareBills.Arg("congress", "the Congress number").Required().Int()
	cbChamber := compareBills.Arg("chamber", "house or senate").Required().Enum("house", "senate")
	compareBills.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.MemberSponsorshipComparison(ctx, *cbFirst, *cbSecond, *cbCongress, congress.Chamber(*cbChamber))
		})
	})

	floor := cmd.Command("floor", "List a member's floor appearances")
	floorID := floor.Arg("member-id", "the member ID").Required().String()
	floor.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.MemberFloorAppearances(ctx, *floorID)
		})
	})
}
