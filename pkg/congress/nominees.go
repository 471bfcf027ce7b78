package congress

//
// nominees.go - presidential civilian nominations.
//

import "context"

// NomineeLists returns the presidential civilian nominations in a category.
//
// GET /{congress}/nominees/{category}
func (c *Client) NomineeLists(ctx context.Context, congress int, category NomineeCategory) ([]byte, error) {
	return c.get(ctx, c.path(itoa(congress), "nominees", string(category)), nil)
}

// NomineeDetails returns details about a presidential civilian nomination.
//
// GET /{congress}/nominees/{nominee-id}
func (c *Client) NomineeDetails(ctx context.Context, congress int, nomineeID string) ([]byte, error) {
	return c.get(ctx, c.path(itoa(congress), "nominees", nomineeID), nil)
}

// NomineesByState returns the most recent nominees from a state.
//
// GET /{congress}/nominees/state/{state}
func (c *Client) NomineesByState(ctx context.Context, congress int, state string) ([]byte, error) {
	return c.get(ctx, c.path(itoa(congress), "nominees", "state", state), nil)
}
