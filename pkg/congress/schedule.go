package congress

import "context"

// StatePartyCounts returns the party membership counts of every state
// for the current Congress.
//
// GET /states/members/party
func (c *Client) StatePartyCounts(ctx context.Context) ([]byte, error) {
	return c.get(ctx, c.path("states", "members", "party"), nil)
}

// ChamberSchedule returns today's schedule of the given chamber, which
// includes the bills to be considered when available.
//
// GET /{chamber}/schedule
func (c *Client) ChamberSchedule(ctx context.Context, chamber Chamber) ([]byte, error) {
	return c.get(ctx, c.path(string(chamber), "schedule"), nil)
}
