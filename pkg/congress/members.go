package congress

//
// members.go - members of Congress.
//

import (
	"context"

	"github.com/opencivics/congress/internal/urlx"
)

// MembersListOptions contains the optional filters of [Client.MembersList].
type MembersListOptions struct {
	// State is the OPTIONAL two-letter state abbreviation.
	State string

	// District is the OPTIONAL House district.
	District string
}

func (opts *MembersListOptions) query() *urlx.Query {
	if opts == nil {
		return nil
	}
	var query urlx.Query
	query.AddIfNotEmpty("state", opts.State)
	query.AddIfNotEmpty("district", opts.District)
	return &query
}

// MembersList returns the members of the given chamber in the given Congress.
//
// GET /{congress}/{chamber}/members
func (c *Client) MembersList(ctx context.Context, congress int, chamber Chamber, opts *MembersListOptions) ([]byte, error) {
	return c.get(ctx, c.path(itoa(congress), string(chamber), "members"), opts.query())
}

// MemberBio returns biographical and role information about a member.
//
// GET /members/{member-id}
func (c *Client) MemberBio(ctx context.Context, memberID string) ([]byte, error) {
	return c.get(ctx, c.path("members", memberID), nil)
}

// NewMembers returns the most recent new members of the current Congress.
//
// GET /members/new
func (c *Client) NewMembers(ctx context.Context) ([]byte, error) {
	return c.get(ctx, c.path("members", "new"), nil)
}

// CurrentMembersByStateDistrict returns the current members for the given
// chamber and state. The district only applies to the House: it is ignored
// for other chambers and when empty.
//
// GET /members/{chamber}/{state}[/{district}]/current
func (c *Client) CurrentMembersByStateDistrict(ctx context.Context, chamber Chamber, state, district string) ([]byte, error) {
	resource := c.path("members", string(chamber), state)
	if chamber == House && district != "" {
		resource = resource.Join(district)
	}
	return c.get(ctx, resource.Join("current"), nil)
}

// MembersLeavingOffice returns the members who have left the given chamber
// or have announced plans to do so.
//
// GET /{congress}/{chamber}/members/leaving
func (c *Client) MembersLeavingOffice(ctx context.Context, congress int, chamber Chamber) ([]byte, error) {
	return c.get(ctx, c.path(itoa(congress), string(chamber), "members", "leaving"), nil)
}

// MemberVotePositions returns the most recent vote positions of a member.
//
// GET /members/{member-id}/votes
func (c *Client) MemberVotePositions(ctx context.Context, memberID string) ([]byte, error) {
	return c.get(ctx, c.path("members", memberID, "votes"), nil)
}

// MemberVoteComparison compares the vote positions of two members in the
// given Congress and chamber.
//
// GET /members/{first-id}/votes/{second-id}/{congress}/{chamber}
func (c *Client) MemberVoteComparison(ctx context.Context, firstID, secondID string, congress int, chamber Chamber) ([]byte, error) {
	return c.get(ctx, c.path("members", firstID, "votes", secondID, itoa(congress), string(chamber)), nil)
}

// MemberCosponsoredBills returns the bills a member cosponsored or withdrew
// cosponsorship from.
//
// GET /members/{member-id}/bills/{type}
func (c *Client) MemberCosponsoredBills(ctx context.Context, memberID string, kind CosponsorType) ([]byte, error) {
	return c.get(ctx, c.path("members", memberID, "bills", string(kind)), nil)
}

// MemberSponsorshipComparison compares the bill sponsorship of two members
// who served in the same Congress and chamber.
//
// GET /members/{first-id}/bills/{second-id}/{congress}/{chamber}
func (c *Client) MemberSponsorshipComparison(ctx context.Context, firstID, secondID string, congress int, chamber Chamber) ([]byte, error) {
	return c.get(ctx, c.path("members", firstID, "bills", secondID, itoa(congress), string(chamber)), nil)
}

// MemberFloorAppearances returns the appearances of a member on the floor.
//
// GET /members/{member-id}/floor_appearances
func (c *Client) MemberFloorAppearances(ctx context.Context, memberID string) ([]byte, error) {
	return c.get(ctx, c.path("members", memberID, "floor_appearances"), nil)
}
