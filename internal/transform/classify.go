// Package transform derives the output series from extracted readings:
// time-of-use partitioning, daily aggregation, and export merging.
package transform

import (
	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/pkg/models"
)

// Partition holds the readings split by time-of-use tier, each slice in
// the original timestamp order.
type Partition struct {
	OnPeak  []models.Reading
	MidPeak []models.Reading
	OffPeak []models.Reading
}

// Classify splits readings into the three TOU tiers. No reading is
// dropped: the three partitions always sum to the input length.
func Classify(readings []models.Reading) Partition {
	var p Partition
	for _, r := range readings {
		switch r.Tier {
		case models.TierOnPeak:
			p.OnPeak = append(p.OnPeak, r)
		case models.TierMidPeak:
			p.MidPeak = append(p.MidPeak, r)
		default:
			p.OffPeak = append(p.OffPeak, r)
		}
	}
	return p
}

// ConsumptionPoints projects readings onto their consumption values
func ConsumptionPoints(readings []models.Reading) []models.SeriesPoint {
	points := make([]models.SeriesPoint, 0, len(readings))
	for _, r := range readings {
		points = append(points, models.SeriesPoint{Start: r.Start, Value: r.ConsumptionKWh})
	}
	return points
}

// CostPoints projects readings onto their cost values
func CostPoints(readings []models.Reading) []models.SeriesPoint {
	points := make([]models.SeriesPoint, 0, len(readings))
	for _, r := range readings {
		points = append(points, models.SeriesPoint{Start: r.Start, Value: r.CostCAD})
	}
	return points
}
