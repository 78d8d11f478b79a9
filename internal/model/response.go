package model

import "github.com/shopspring/decimal"

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	TenantID               string `json:"tenant_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages    []CalculationMessage `json:"messages"`
	DaysInMonth int                  `json:"days_in_month"`
	Commissions map[string]float64   `json:"commissions"`
	Summary     *CommissionSummary   `json:"summary,omitempty"`
}

// CommissionSummary describes a successful run. TotalCommission is the exact
// sum of the rounded per-partner amounts.
type CommissionSummary struct {
	PartnerCount    int             `json:"partner_count"`
	RootID          int             `json:"root_id"`
	EarningPartners int             `json:"earning_partners"`
	TotalCommission decimal.Decimal `json:"total_commission"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
