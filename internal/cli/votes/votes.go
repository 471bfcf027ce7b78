package votes

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/opencivics/congress/internal/cli/root"
	"github.com/opencivics/congress/pkg/congress"
)

// parseDate parses a YYYY-MM-DD date.
func parseDate(name, value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: %q: expected YYYY-MM-DD", name, value)
	}
	return t, nil
}

func init() {
	cmd := root.Command("votes", "Query roll-call votes")

	rollCall := cmd.Command("roll-call", "Show a roll-call vote")
	rcCongress := rollCall.Arg("congress", "the Congress number").Required().Int()
	rcChamber := rollCall.Arg("chamber", "house or senate").Required().Enum("house", "senate")
	rcSession := rollCall.Arg("session", "the session number").Required().Int()
	rcNumber := rollCall.Arg("roll-call", "the roll-call number").Required().Int()
	rollCall.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.RollCallVote(ctx, *rcCongress, congress.Chamber(*rcChamber), *rcSession, *rcNumber)
		})
	})

	byType := cmd.Command("by-type", "List missed, party, lone no, or perfect votes")
	btCongress := byType.Arg("congress", "the Congress number").Required().Int()
	btChamber := byType.Arg("chamber", "house or senate").Required().Enum("house", "senate")
	btType := byType.Arg("type", "the vote type").Required().Enum("missed", "party", "loneno", "perfect")
	byType.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.VotesByType(ctx, *btCongress, congress.Chamber(*btChamber), congress.VoteType(*btType))
		})
	})

	byMonth := cmd.Command("by-month", "List the votes of a chamber in a month")
	bmChamber := byMonth.Arg("chamber", "house or senate").Required().Enum("house", "senate")
	bmYear := byMonth.Arg("year", "the year").Required().Int()
	bmMonth := byMonth.Arg("month", "the month (1-12)").Required().Int()
	byMonth.Action(func(_ *kingpin.ParseContext) error {
		if *bmMonth < 1 || *bmMonth > 12 {
			return fmt.Errorf("invalid month: %d", *bmMonth)
		}
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.VotesByMonth(ctx, congress.Chamber(*bmChamber), *bmYear, time.Month(*bmMonth))
		})
	})

	byDate := cmd.Command("by-date", "List the votes of a chamber between two dates")
	bdChamber := byDate.Arg("chamber", "house or senate").Required().Enum("house", "senate")
	bdStart := byDate.Arg("start", "the start date (YYYY-MM-DD)").Required().String()
	bdEnd := byDate.Arg("end", "the end date (YYYY-MM-DD)").Required().String()
	byDate.Action(func(_ *kingpin.ParseContext) error {
		start, err := parseDate("start", *bdStart)
		if err != nil {
			return err
		}
		end, err := parseDate("end", *bdEnd)
		if err != nil {
			return err
		}
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.VotesByDateRange(ctx, congress.Chamber(*bdChamber), start, end)
		})
	})

	nominations := cmd.Command("nominations", "List the Senate votes on nominations")
	nomCongress := nominations.Arg("congress", "the Congress number").Required().Int()
	nominations.Action(func(_ *kingpin.ParseContext) error {
		return root.Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return c.NominationVotes(ctx, *nomCongress)
		})
	})
}
