package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"commission-engine/internal/commission"
	"commission-engine/internal/hierarchy"
	"commission-engine/internal/metrics"
	"commission-engine/internal/model"
)

// Engine turns one calculation request into one response. It keeps no state
// between requests and may serve them concurrently.
type Engine struct {
	calc    *commission.Calculator
	logger  *zap.Logger
	metrics *metrics.Collector
	now     func() time.Time
}

func New(calc *commission.Calculator, logger *zap.Logger, collector *metrics.Collector) *Engine {
	return &Engine{
		calc:    calc,
		logger:  logger.With(zap.String("component", "engine")),
		metrics: collector,
		now:     time.Now,
	}
}

func (e *Engine) Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := e.now()

	var allMessages []model.CalculationMessage
	outcome := model.OutcomeSuccess
	commissions := map[string]float64{}
	var summary *model.CommissionSummary

	days, msgs := e.validate(req)
	for _, m := range msgs {
		m.ID = len(allMessages)
		allMessages = append(allMessages, m)
		if m.Level == model.LevelCritical {
			outcome = model.OutcomeFailure
		}
	}

	if outcome == model.OutcomeSuccess {
		tree, err := hierarchy.Build(req.Partners)
		if err != nil {
			msg := hierarchyMessage(err)
			msg.ID = len(allMessages)
			allMessages = append(allMessages, msg)
			outcome = model.OutcomeFailure
		} else {
			commissions = e.calc.Aggregate(req.Partners, tree, days)
			summary = summarize(commissions, tree.Root)
		}
	}

	elapsed := e.now().Sub(start)
	completed := start.Add(elapsed).UTC()

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}

	calculationID := uuid.New().String()
	e.metrics.RecordCalculation(outcome, len(req.Partners), elapsed)

	fields := []zap.Field{
		zap.String("calculation_id", calculationID),
		zap.String("tenant_id", req.TenantID),
		zap.String("outcome", outcome),
		zap.Int("partners", len(req.Partners)),
		zap.Int("days_in_month", days),
		zap.Duration("duration", elapsed),
	}
	if outcome == model.OutcomeFailure {
		e.logger.Warn("commission calculation rejected",
			append(fields, zap.String("code", allMessages[len(allMessages)-1].Code))...)
	} else {
		e.logger.Info("commission calculation finished", fields...)
	}

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          calculationID,
			TenantID:               req.TenantID,
			CalculationStartedAt:   start.UTC().Format(time.RFC3339),
			CalculationCompletedAt: completed.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages:    allMessages,
			DaysInMonth: days,
			Commissions: commissions,
			Summary:     summary,
		},
	}
}

// hierarchyMessage maps a hierarchy.Build error to a critical message.
func hierarchyMessage(err error) model.CalculationMessage {
	code := model.CodeInvalidHierarchy
	switch {
	case errors.Is(err, hierarchy.ErrMultipleRoots):
		code = model.CodeMultipleRoots
	case errors.Is(err, hierarchy.ErrRootNotFound):
		code = model.CodeRootNotFound
	case errors.Is(err, hierarchy.ErrParentNotFound):
		code = model.CodeParentNotFound
	case errors.Is(err, hierarchy.ErrCycleDetected):
		code = model.CodeCycleDetected
	}
	return model.CalculationMessage{
		Level:   model.LevelCritical,
		Code:    code,
		Message: err.Error(),
	}
}

func summarize(commissions map[string]float64, root int) *model.CommissionSummary {
	total := decimal.Zero
	earning := 0
	for _, amount := range commissions {
		if amount == 0 {
			continue
		}
		earning++
		total = total.Add(decimal.NewFromFloat(amount))
	}
	return &model.CommissionSummary{
		PartnerCount:    len(commissions),
		RootID:          root,
		EarningPartners: earning,
		TotalCommission: total.Round(2),
	}
}

func criticalf(code, format string, args ...any) model.CalculationMessage {
	return model.CalculationMessage{
		Level:   model.LevelCritical,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
