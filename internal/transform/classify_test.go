package transform

import (
	"testing"

	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/pkg/models"
)

func TestClassifyPartitionsByTier(t *testing.T) {
	readings := []models.Reading{
		{Start: 100, Tier: models.TierOnPeak},
		{Start: 200, Tier: models.TierOffPeak},
		{Start: 300, Tier: models.TierMidPeak},
		{Start: 400, Tier: models.TierOnPeak},
		{Start: 500, Tier: models.TierOffPeak},
	}

	p := Classify(readings)

	if len(p.OnPeak) != 2 || len(p.MidPeak) != 1 || len(p.OffPeak) != 2 {
		t.Fatalf("partition sizes = %d/%d/%d, want 2/1/2",
			len(p.OnPeak), len(p.MidPeak), len(p.OffPeak))
	}
	if got := len(p.OnPeak) + len(p.MidPeak) + len(p.OffPeak); got != len(readings) {
		t.Errorf("partitions lose or duplicate readings: %d != %d", got, len(readings))
	}

	// Relative order within each partition must follow the input
	if p.OnPeak[0].Start != 100 || p.OnPeak[1].Start != 400 {
		t.Errorf("on-peak order = %d, %d", p.OnPeak[0].Start, p.OnPeak[1].Start)
	}
	if p.OffPeak[0].Start != 200 || p.OffPeak[1].Start != 500 {
		t.Errorf("off-peak order = %d, %d", p.OffPeak[0].Start, p.OffPeak[1].Start)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	p := Classify(nil)
	if len(p.OnPeak)+len(p.MidPeak)+len(p.OffPeak) != 0 {
		t.Error("empty input produced non-empty partitions")
	}
}

func TestTierFromCodeFallback(t *testing.T) {
	cases := []struct {
		code int
		want models.TOUTier
	}{
		{1, models.TierOnPeak},
		{2, models.TierMidPeak},
		{3, models.TierOffPeak},
		{0, models.TierOffPeak},  // missing element
		{7, models.TierOffPeak},  // unrecognized code
		{-1, models.TierOffPeak}, // garbage
	}
	for _, tc := range cases {
		if got := models.TierFromCode(tc.code); got != tc.want {
			t.Errorf("TierFromCode(%d) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestPointProjections(t *testing.T) {
	readings := []models.Reading{
		{Start: 100, ConsumptionKWh: 0.5, CostCAD: 0.1},
		{Start: 200, ConsumptionKWh: 0.3, CostCAD: 0.06},
	}

	usage := ConsumptionPoints(readings)
	cost := CostPoints(readings)

	if usage[0].Value != 0.5 || usage[1].Value != 0.3 {
		t.Errorf("consumption points = %v", usage)
	}
	if cost[0].Value != 0.1 || cost[1].Value != 0.06 {
		t.Errorf("cost points = %v", cost)
	}
	if usage[0].Start != 100 || cost[1].Start != 200 {
		t.Errorf("points lost timestamps: %v %v", usage, cost)
	}
}
