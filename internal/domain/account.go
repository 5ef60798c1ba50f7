package domain

// Account is the purchasing tier of a registered user. It is fixed for the
// duration of a session and changes only through a profile update.
type Account string

const (
	AccountPersonal   Account = "PERSONAL"
	AccountBusiness   Account = "BUSINESS"
	AccountMedical    Account = "MEDICAL"
	AccountGovernment Account = "GOVERNMENT"
)

// BuyerRequirement is a tag on a product restricting which account types may
// purchase it.
type BuyerRequirement string

const (
	RequirementNone       BuyerRequirement = "NONE"
	RequirementBusiness   BuyerRequirement = "BUSINESS"
	RequirementMedical    BuyerRequirement = "MEDICAL"
	RequirementGovernment BuyerRequirement = "GOVERNMENT"
)

// CanPurchase reports whether an account type may buy a product carrying the
// given buyer requirement. An empty or NONE requirement is universally
// purchasable; anything else needs an exact match, there is no hierarchy
// between tiers. Unrecognized requirement values are unmatchable so an
// uncertain purchase is blocked rather than allowed.
func CanPurchase(acct Account, req BuyerRequirement) bool {
	switch req {
	case "", RequirementNone:
		return true
	case RequirementBusiness:
		return acct == AccountBusiness
	case RequirementMedical:
		return acct == AccountMedical
	case RequirementGovernment:
		return acct == AccountGovernment
	default:
		return false
	}
}

// RequirementText returns the user-facing notice for a buyer requirement.
// Unrestricted or unknown requirements have no notice.
func RequirementText(req BuyerRequirement) string {
	switch req {
	case RequirementBusiness:
		return "Business Account Required"
	case RequirementMedical:
		return "Medical Account Required"
	case RequirementGovernment:
		return "Government Authorization Required"
	default:
		return ""
	}
}
