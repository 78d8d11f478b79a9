package model

// Partner is one node of the referral hierarchy as it arrives on the wire.
// ParentID is nil for the root partner.
type Partner struct {
	ID             int     `json:"id"`
	ParentID       *int    `json:"parent_id"`
	Name           string  `json:"name,omitempty"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
}

// IsRoot reports whether the partner has no parent.
func (p Partner) IsRoot() bool {
	return p.ParentID == nil
}
