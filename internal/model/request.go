package model

type CalculationRequest struct {
	TenantID string `json:"tenant_id"`
	// AsOf selects the month whose length divides monthly revenue ("YYYY-MM-DD").
	AsOf string `json:"as_of,omitempty"`
	// DaysInMonth overrides AsOf when present.
	DaysInMonth *int      `json:"days_in_month,omitempty"`
	Partners    []Partner `json:"partners"`
}
