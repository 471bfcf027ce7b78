package congress

import "github.com/opencivics/congress/internal/model"

// Chamber is a chamber of Congress.
type Chamber = model.Chamber

const (
	House  = model.ChamberHouse
	Senate = model.ChamberSenate
	Joint  = model.ChamberJoint
)

// Format is the format of the response body.
type Format = model.Format

const (
	FormatXML  = model.FormatXML
	FormatJSON = model.FormatJSON
)

// CosponsorType selects cosponsored or withdrawn bills.
type CosponsorType = model.CosponsorType

const (
	Cosponsored = model.CosponsorTypeCosponsored
	Withdrawn   = model.CosponsorTypeWithdrawn
)

// BillType is the kind of recent bills to list.
type BillType = model.BillType

const (
	BillsIntroduced = model.BillTypeIntroduced
	BillsUpdated    = model.BillTypeUpdated
	BillsPassed     = model.BillTypePassed
	BillsMajor      = model.BillTypeMajor
)

// VoteType is a category of votes.
type VoteType = model.VoteType

const (
	VotesMissed  = model.VoteTypeMissed
	VotesParty   = model.VoteTypeParty
	VotesLoneNo  = model.VoteTypeLoneNo
	VotesPerfect = model.VoteTypePerfect
)

// NomineeCategory is a category of presidential civilian nominations.
type NomineeCategory = model.NomineeCategory

const (
	NomineesReceived  = model.NomineeCategoryReceived
	NomineesUpdated   = model.NomineeCategoryUpdated
	NomineesConfirmed = model.NomineeCategoryConfirmed
	NomineesWithdrawn = model.NomineeCategoryWithdrawn
)
