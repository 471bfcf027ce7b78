package congress

//
// bills.go - bills and their details.
//

import "context"

// RecentBills returns summaries of the most recent bills of the given type.
//
// GET /{congress}/{chamber}/bills/{type}
func (c *Client) RecentBills(ctx context.Context, congress int, chamber Chamber, kind BillType) ([]byte, error) {
	return c.get(ctx, c.path(itoa(congress), string(chamber), "bills", string(kind)), nil)
}

// BillsByMember returns the bills most recently introduced or updated by a
// member. The results may span more than one Congress.
//
// GET /members/{member-id}/bills/{type}
func (c *Client) BillsByMember(ctx context.Context, memberID string, kind BillType) ([]byte, error) {
	return c.get(ctx, c.path("members", memberID, "bills", string(kind)), nil)
}

// BillDetails returns details about a bill including the actions taken.
//
// GET /{congress}/bills/{bill-id}
func (c *Client) BillDetails(ctx context.Context, congress int, billID string) ([]byte, error) {
	return c.get(ctx, c.path(itoa(congress), "bills", billID), nil)
}

// BillSubjects returns the subjects of a bill.
//
// GET /{congress}/bills/{bill-id}/subjects
func (c *Client) BillSubjects(ctx context.Context, congress int, billID string) ([]byte, error) {
	return c.billResource(ctx, congress, billID, "subjects")
}

// BillAmendments returns the amendments of a bill.
//
// GET /{congress}/bills/{bill-id}/amendments
func (c *Client) BillAmendments(ctx context.Context, congress int, billID string) ([]byte, error) {
	return c.billResource(ctx, congress, billID, "amendments")
}

// RelatedBills returns the bills related to a bill.
//
// GET /{congress}/bills/{bill-id}/related
func (c *Client) RelatedBills(ctx context.Context, congress int, billID string) ([]byte, error) {
	return c.billResource(ctx, congress, billID, "related")
}

// BillCosponsors returns the cosponsors of a bill.
//
// GET /{congress}/bills/{bill-id}/cosponsors
func (c *Client) BillCosponsors(ctx context.Context, congress int, billID string) ([]byte, error) {
	return c.billResource(ctx, congress, billID, "cosponsors")
}

func (c *Client) billResource(ctx context.Context, congress int, billID, name string) ([]byte, error) {
	return c.get(ctx, c.path(itoa(congress), "bills", billID, name), nil)
}
