package stats

import (
	"github.com/shopspring/decimal"

	"freight_ledger/internal/models"
)

// Summary holds the six KPIs computed over a user's delivered loads.
// Rates are percentages, averages are dollars; everything is rounded
// to two decimal places.
type Summary struct {
	OntimeRate       float64 `json:"ontime_rate"`
	DamageRate       float64 `json:"damage_rate"`
	BreakdownRate    float64 `json:"breakdown_rate"`
	AvgCostPerLoad   float64 `json:"avg_cost_per_load"`
	AvgCostPerPallet float64 `json:"avg_cost_per_pallet"`
	AvgCostPerPound  float64 `json:"avg_cost_per_pound"`
}

// Compute aggregates delivered-load outcome rows into a Summary.
// Callers pass only rows with delivered = 1; Compute does not filter.
//
// Any statistic whose denominator is zero comes back as 0 rather than
// an error, so a dashboard with no history renders all-zero KPIs.
func Compute(rows []models.LoadData) Summary {
	var ontime, damaged, brokedown int64
	var cost, pallets, weight int64

	for _, r := range rows {
		if r.Ontime == 1 {
			ontime++
		}
		if r.Damaged == 1 {
			damaged++
		}
		if r.Breakdown == 1 {
			brokedown++
		}
		cost += int64(r.Cost)
		pallets += int64(r.Pallets)
		weight += int64(r.Weight)
	}

	n := int64(len(rows))
	return Summary{
		OntimeRate:       rate(ontime, n),
		DamageRate:       rate(damaged, n),
		BreakdownRate:    rate(brokedown, n),
		AvgCostPerLoad:   avg(cost, n),
		AvgCostPerPallet: avg(cost, pallets),
		AvgCostPerPound:  avg(cost, weight),
	}
}

// rate returns 100*num/den rounded to two decimals, 0 when den is 0.
func rate(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return decimal.NewFromInt(num * 100).
		DivRound(decimal.NewFromInt(den), 2).
		InexactFloat64()
}

// avg returns num/den rounded to two decimals, 0 when den is 0.
func avg(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return decimal.NewFromInt(num).
		DivRound(decimal.NewFromInt(den), 2).
		InexactFloat64()
}
