package model

// CustomerGroup is the ERP customer group derived from the company flag
type CustomerGroup string

const (
	// GroupIndividual is assigned to physical persons
	GroupIndividual CustomerGroup = "02"
	// GroupCompany is assigned to legal entities
	GroupCompany CustomerGroup = "03"
)

// GroupFor derives customer group from the company flag
func GroupFor(isCompany bool) CustomerGroup {
	if isCompany {
		return GroupCompany
	}
	return GroupIndividual
}

// NewCustomer carries fields required to create customer in ERP
type NewCustomer struct {
	Name         string
	CreatedBy    string
	Manager      string
	Segment      string
	MobileNumber string
	IsCompany    bool
}

// CustomerChange carries fields required to update existing ERP customer
type CustomerChange struct {
	Code         string
	Name         string
	ChangedBy    string
	Manager      string
	Segment      string
	MobileNumber string
}
