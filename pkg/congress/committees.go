package congress

import "context"

// Committees returns the committees of the given chamber.
//
// GET /{congress}/{chamber}/committees
func (c *Client) Committees(ctx context.Context, congress int, chamber Chamber) ([]byte, error) {
	return c.get(ctx, c.path(itoa(congress), string(chamber), "committees"), nil)
}

// CommitteeMembers returns the members of a committee.
//
// GET /{congress}/{chamber}/committees/{committee-id}
func (c *Client) CommitteeMembers(ctx context.Context, congress int, chamber Chamber, committeeID string) ([]byte, error) {
	return c.get(ctx, c.path(itoa(congress), string(chamber), "committees", committeeID), nil)
}
