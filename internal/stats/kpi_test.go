package stats

import (
	"testing"

	"freight_ledger/internal/models"
)

func TestCompute_NoDeliveredLoads(t *testing.T) {
	got := Compute(nil)

	// Every KPI must be exactly 0 when there is no history, never an
	// error or NaN.
	want := Summary{}
	if got != want {
		t.Errorf("expected all-zero summary for no rows, got %+v", got)
	}
}

func TestCompute_OntimeRate(t *testing.T) {
	rows := []models.LoadData{
		{Ontime: 1, Delivered: 1},
		{Ontime: 1, Delivered: 1},
		{Ontime: 0, Delivered: 1},
		{Ontime: 1, Delivered: 1},
	}

	got := Compute(rows)
	if got.OntimeRate != 75.0 {
		t.Errorf("expected ontime rate 75.0 for 3 of 4, got %v", got.OntimeRate)
	}
}

func TestCompute_AvgCostPerPallet(t *testing.T) {
	rows := []models.LoadData{
		{Cost: 100, Pallets: 2, Delivered: 1},
		{Cost: 200, Pallets: 3, Delivered: 1},
		{Cost: 300, Pallets: 5, Delivered: 1},
	}

	got := Compute(rows)
	if got.AvgCostPerPallet != 60.0 {
		t.Errorf("expected avg cost per pallet 60.0 (600/10), got %v", got.AvgCostPerPallet)
	}
	if got.AvgCostPerLoad != 200.0 {
		t.Errorf("expected avg cost per load 200.0, got %v", got.AvgCostPerLoad)
	}
}

func TestCompute_RoundsToTwoDecimals(t *testing.T) {
	rows := []models.LoadData{
		{Ontime: 1, Cost: 100, Delivered: 1},
		{Ontime: 0, Delivered: 1},
		{Ontime: 0, Delivered: 1},
	}

	got := Compute(rows)
	if got.OntimeRate != 33.33 {
		t.Errorf("expected ontime rate 33.33 for 1 of 3, got %v", got.OntimeRate)
	}
	if got.AvgCostPerLoad != 33.33 {
		t.Errorf("expected avg cost per load 33.33 for 100/3, got %v", got.AvgCostPerLoad)
	}
}

func TestCompute_ZeroDenominators(t *testing.T) {
	// Delivered loads with no pallet or weight data recorded: the
	// per-pallet and per-pound averages fall back to 0, the rest
	// still compute.
	rows := []models.LoadData{
		{Ontime: 1, Cost: 500, Delivered: 1},
		{Ontime: 1, Cost: 300, Delivered: 1},
	}

	got := Compute(rows)
	if got.AvgCostPerPallet != 0 {
		t.Errorf("expected avg cost per pallet 0 with no pallets, got %v", got.AvgCostPerPallet)
	}
	if got.AvgCostPerPound != 0 {
		t.Errorf("expected avg cost per pound 0 with no weight, got %v", got.AvgCostPerPound)
	}
	if got.OntimeRate != 100.0 {
		t.Errorf("expected ontime rate 100.0, got %v", got.OntimeRate)
	}
	if got.AvgCostPerLoad != 400.0 {
		t.Errorf("expected avg cost per load 400.0, got %v", got.AvgCostPerLoad)
	}
}

func TestCompute_DamageAndBreakdownRates(t *testing.T) {
	rows := []models.LoadData{
		{Damaged: 1, Breakdown: 0, Delivered: 1},
		{Damaged: 0, Breakdown: 0, Delivered: 1},
		{Damaged: 0, Breakdown: 1, Delivered: 1},
		{Damaged: 1, Breakdown: 0, Delivered: 1},
	}

	got := Compute(rows)
	if got.DamageRate != 50.0 {
		t.Errorf("expected damage rate 50.0, got %v", got.DamageRate)
	}
	if got.BreakdownRate != 25.0 {
		t.Errorf("expected breakdown rate 25.0, got %v", got.BreakdownRate)
	}
}
