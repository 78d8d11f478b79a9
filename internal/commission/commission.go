// Package commission computes daily commissions over a validated partner
// hierarchy. Every partner earns the configured rate on the daily revenue of
// all of its descendants, never on its own.
package commission

import (
	"strconv"

	"commission-engine/internal/hierarchy"
	"commission-engine/internal/model"
)

// DefaultRate is the share of descendant revenue paid out as commission.
const DefaultRate = 0.05

// Calculator applies one commission rate. It holds no other state and is
// safe for concurrent use.
type Calculator struct {
	rate float64
}

func NewCalculator(rate float64) *Calculator {
	return &Calculator{rate: rate}
}

func (c *Calculator) Rate() float64 {
	return c.rate
}

// Calculate validates the hierarchy and returns the commission of every
// partner keyed by its id. Hierarchy errors are returned unchanged.
func (c *Calculator) Calculate(partners []model.Partner, daysInMonth int) (map[string]float64, error) {
	tree, err := hierarchy.Build(partners)
	if err != nil {
		return nil, err
	}
	return c.Aggregate(partners, tree, daysInMonth), nil
}

// Aggregate walks tree bottom-up. A partner's descendant total is the sum over
// its children of the child's own descendant total plus the child's daily
// revenue; its commission is that total times the rate, rounded once.
//
// tree must come from hierarchy.Build over the same partners and daysInMonth
// must be positive; neither is checked here.
func (c *Calculator) Aggregate(partners []model.Partner, tree *hierarchy.Tree, daysInMonth int) map[string]float64 {
	days := float64(daysInMonth)
	daily := make(map[int]float64, len(partners))
	commissions := make(map[string]float64, len(partners))
	for _, p := range partners {
		daily[p.ID] = p.MonthlyRevenue / days
		commissions[strconv.Itoa(p.ID)] = 0
	}

	totals := make(map[int]float64, len(partners))
	tree.PostOrder(func(id int) {
		var total float64
		for _, child := range tree.ChildrenOf(id) {
			total += totals[child] + daily[child]
		}
		totals[id] = total
		commissions[strconv.Itoa(id)] = Round(total * c.rate)
	})

	return commissions
}

var defaultCalculator = NewCalculator(DefaultRate)

// Calculate runs the default-rate calculator.
func Calculate(partners []model.Partner, daysInMonth int) (map[string]float64, error) {
	return defaultCalculator.Calculate(partners, daysInMonth)
}
