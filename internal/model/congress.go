package model

//
// Identifiers accepted by the Congress API.
//
// The client does not reject values outside of the constants declared
// below: the remote service is the authority on what is valid.
//

// Chamber is a chamber of Congress.
type Chamber string

const (
	// ChamberHouse is the House of Representatives.
	ChamberHouse = Chamber("house")

	// ChamberSenate is the Senate.
	ChamberSenate = Chamber("senate")

	// ChamberJoint selects joint committees.
	ChamberJoint = Chamber("joint")
)

// Format is the format of the response body.
type Format string

const (
	// FormatXML asks the service to reply with XML.
	FormatXML = Format("xml")

	// FormatJSON asks the service to reply with JSON.
	FormatJSON = Format("json")
)

// Valid returns whether the format is one the service supports.
func (f Format) Valid() bool {
	return f == FormatXML || f == FormatJSON
}

// CosponsorType selects cosponsored or withdrawn bills.
type CosponsorType string

const (
	CosponsorTypeCosponsored = CosponsorType("cosponsored")
	CosponsorTypeWithdrawn   = CosponsorType("withdrawn")
)

// BillType is the kind of recent bills to list.
type BillType string

const (
	BillTypeIntroduced = BillType("introduced")
	BillTypeUpdated    = BillType("updated")
	BillTypePassed     = BillType("passed")
	BillTypeMajor      = BillType("major")
)

// VoteType is a category of votes.
type VoteType string

const (
	VoteTypeMissed  = VoteType("missed")
	VoteTypeParty   = VoteType("party")
	VoteTypeLoneNo  = VoteType("loneno")
	VoteTypePerfect = VoteType("perfect")
)

// NomineeCategory is a category of presidential civilian nominations.
type NomineeCategory string

const (
	NomineeCategoryReceived  = NomineeCategory("received")
	NomineeCategoryUpdated   = NomineeCategory("updated")
	NomineeCategoryConfirmed = NomineeCategory("confirmed")
	NomineeCategoryWithdrawn = NomineeCategory("withdrawn")
)
