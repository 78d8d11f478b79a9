package engine

import (
	"commission-engine/internal/calendar"
	"commission-engine/internal/model"
)

// validate checks the request before any hierarchy work and resolves the
// number of days the monthly revenue is spread over. Checks stop at the first
// critical message.
func (e *Engine) validate(req *model.CalculationRequest) (int, []model.CalculationMessage) {
	if len(req.Partners) == 0 {
		return 0, []model.CalculationMessage{criticalf(model.CodeNoPartners, "At least one partner is required")}
	}

	days, msgs := e.resolveDays(req)
	if hasCritical(msgs) {
		return 0, msgs
	}

	seen := make(map[int]struct{}, len(req.Partners))
	for _, p := range req.Partners {
		if p.ID <= 0 {
			return days, append(msgs, criticalf(model.CodeInvalidPartnerID, "Partner id %d must be positive", p.ID))
		}
		if _, dup := seen[p.ID]; dup {
			return days, append(msgs, criticalf(model.CodeDuplicatePartnerID, "Partner id %d appears more than once", p.ID))
		}
		seen[p.ID] = struct{}{}
		if p.MonthlyRevenue < 0 {
			return days, append(msgs, criticalf(model.CodeNegativeRevenue, "Monthly revenue of partner %d is negative", p.ID))
		}
	}

	return days, msgs
}

// resolveDays prefers an explicit days_in_month, then the month of as_of,
// then the current month.
func (e *Engine) resolveDays(req *model.CalculationRequest) (int, []model.CalculationMessage) {
	if req.DaysInMonth != nil {
		days := *req.DaysInMonth
		if days <= 0 {
			return 0, []model.CalculationMessage{criticalf(model.CodeInvalidDays, "days_in_month must be positive, got %d", days)}
		}
		var msgs []model.CalculationMessage
		if req.AsOf != "" {
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelWarning,
				Code:    model.CodeDaysOverrideAsOf,
				Message: "days_in_month is used, as_of is ignored",
			})
		}
		return days, msgs
	}

	if req.AsOf != "" {
		date, ok := calendar.ParseDate(req.AsOf)
		if !ok {
			return 0, []model.CalculationMessage{criticalf(model.CodeInvalidAsOfDate, "as_of %q is not a valid YYYY-MM-DD date", req.AsOf)}
		}
		return calendar.DaysInMonth(date), nil
	}

	return calendar.DaysInMonth(e.now()), nil
}

func hasCritical(msgs []model.CalculationMessage) bool {
	for _, m := range msgs {
		if m.Level == model.LevelCritical {
			return true
		}
	}
	return false
}
