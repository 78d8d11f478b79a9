package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

// Message codes reported by the calculation engine.
const (
	CodeNoPartners         = "NO_PARTNERS"
	CodeInvalidDays        = "INVALID_DAYS_IN_MONTH"
	CodeInvalidAsOfDate    = "INVALID_AS_OF_DATE"
	CodeDaysOverrideAsOf   = "DAYS_IN_MONTH_OVERRIDES_AS_OF"
	CodeInvalidPartnerID   = "INVALID_PARTNER_ID"
	CodeDuplicatePartnerID = "DUPLICATE_PARTNER_ID"
	CodeNegativeRevenue    = "NEGATIVE_REVENUE"
	CodeMultipleRoots      = "MULTIPLE_ROOTS"
	CodeRootNotFound       = "ROOT_NOT_FOUND"
	CodeParentNotFound     = "PARENT_NOT_FOUND"
	CodeCycleDetected      = "CYCLE_DETECTED"
	CodeInvalidHierarchy   = "INVALID_HIERARCHY"
)
