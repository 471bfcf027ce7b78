package congress

//
// votes.go - roll-call votes.
//

import (
	"context"
	"fmt"
	"time"
)

// dateLayout is the layout of dates in resource paths.
const dateLayout = "2006-01-02"

// RollCallVote returns a roll-call vote including the position of every member.
//
// GET /{congress}/{chamber}/sessions/{session}/votes/{roll-call}
func (c *Client) RollCallVote(ctx context.Context, congress int, chamber Chamber, session, rollCall int) ([]byte, error) {
	return c.get(ctx, c.path(itoa(congress), string(chamber), "sessions", itoa(session), "votes", itoa(rollCall)), nil)
}

// VotesByType returns missed, party, lone no, or perfect votes.
//
// GET /{congress}/{chamber}/votes/{vote-type}
func (c *Client) VotesByType(ctx context.Context, congress int, chamber Chamber, kind VoteType) ([]byte, error) {
	return c.get(ctx, c.path(itoa(congress), string(chamber), "votes", string(kind)), nil)
}

// VotesByMonth returns all the votes of the given chamber in the given month.
//
// GET /{chamber}/votes/{year}/{month}
func (c *Client) VotesByMonth(ctx context.Context, chamber Chamber, year int, month time.Month) ([]byte, error) {
	return c.get(ctx, c.path(string(chamber), "votes", itoa(year), fmt.Sprintf("%02d", int(month))), nil)
}

// VotesByDateRange returns all the votes of the given chamber between start
// and end. The service only accepts ranges shorter than 30 days.
//
// GET /{chamber}/votes/{start-date}/{end-date}
func (c *Client) VotesByDateRange(ctx context.Context, chamber Chamber, start, end time.Time) ([]byte, error) {
	return c.get(ctx, c.path(string(chamber), "votes", start.Format(dateLayout), end.Format(dateLayout)), nil)
}

// NominationVotes returns the Senate votes on presidential nominations.
// Nominations approved by unanimous consent or voice vote are not included.
//
// GET /{congress}/nominations
func (c *Client) NominationVotes(ctx context.Context, congress int) ([]byte, error) {
	return c.get(ctx, c.path(itoa(congress), "nominations"), nil)
}
