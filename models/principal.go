package models

const (
	PrincipalCustomer = "customer"
	PrincipalSeller   = "seller"
)

// Principal is the authenticated caller carried in a bearer token.
type Principal struct {
	ID   string
	Type string
	Name string
}

func (p Principal) IsCustomer() bool { return p.ID != "" && p.Type == PrincipalCustomer }

func (p Principal) IsSeller() bool { return p.ID != "" && p.Type == PrincipalSeller }
