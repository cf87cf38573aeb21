package transform

import (
	"sort"
	"time"

	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/pkg/models"
)

// AggregateDaily reduces hourly readings to one total per calendar date in
// the given reference zone. Bucketing by zoned date (not by UTC day) keeps
// the two repeated hours of the fall-back DST transition in the same
// daily total instead of splitting or collapsing them.
//
// Each total is stamped at dailyHourUTC on its date. The hour is a fixed
// approximation of local midnight that ignores whether the date is under
// standard or daylight time, which keeps historical timestamps stable.
func AggregateDaily(readings []models.Reading, loc *time.Location, dailyHourUTC int) []models.DailyTotal {
	byDate := make(map[string]*models.DailyTotal)
	for _, r := range readings {
		date := time.Unix(r.Start, 0).In(loc).Format("2006-01-02")
		total, ok := byDate[date]
		if !ok {
			day, _ := time.ParseInLocation("2006-01-02", date, time.UTC)
			total = &models.DailyTotal{
				Date:  date,
				Start: day.Add(time.Duration(dailyHourUTC) * time.Hour).Unix(),
			}
			byDate[date] = total
		}
		total.ConsumptionKWh += r.ConsumptionKWh
		total.CostCAD += r.CostCAD
	}

	totals := make([]models.DailyTotal, 0, len(byDate))
	for _, t := range byDate {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date < totals[j].Date
	})

	return totals
}

// DailyConsumptionPoints projects daily totals onto their consumption values
func DailyConsumptionPoints(totals []models.DailyTotal) []models.SeriesPoint {
	points := make([]models.SeriesPoint, 0, len(totals))
	for _, t := range totals {
		points = append(points, models.SeriesPoint{Start: t.Start, Value: t.ConsumptionKWh})
	}
	return points
}

// DailyCostPoints projects daily totals onto their cost values
func DailyCostPoints(totals []models.DailyTotal) []models.SeriesPoint {
	points := make([]models.SeriesPoint, 0, len(totals))
	for _, t := range totals {
		points = append(points, models.SeriesPoint{Start: t.Start, Value: t.CostCAD})
	}
	return points
}
