// Package pipeline wires the extract → merge → classify/aggregate →
// generate steps into one run producing a single SQL artifact.
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/internal/config"
	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/internal/espi"
	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/internal/sqlgen"
	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/internal/transform"
	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/pkg/models"
)

// Options selects per-invocation behavior
type Options struct {
	// Clear prepends deletes for this tool's series before re-inserting.
	// Off by default; the idempotent inserts make incremental re-runs safe.
	Clear bool

	// CreatedTS overrides the created_ts stamped on rows (0 = now)
	CreatedTS int64
}

// Summary reports what one run produced
type Summary struct {
	Readings   int // readings after extraction (and merge)
	MergedIn   int // readings contributed by the secondary export
	OnPeak     int
	MidPeak    int
	OffPeak    int
	Days       int
	TotalKWh   float64
	TotalCost  float64
	FirstStart int64
	LastStart  int64
	Statements int
}

// Run executes the whole pipeline over a primary export and an optional
// secondary export (nil for none), returning the SQL artifact and a run
// summary. Zero qualifying readings is an error, not an empty artifact.
func Run(cfg *config.Config, primary, secondary []byte, opts Options) (string, *Summary, error) {
	readings, err := espi.Extract(primary)
	if err != nil {
		return "", nil, fmt.Errorf("extracting primary input: %w", err)
	}

	summary := &Summary{}
	if secondary != nil {
		older, err := espi.Extract(secondary)
		if err != nil {
			return "", nil, fmt.Errorf("extracting secondary input: %w", err)
		}
		merged := transform.Merge(readings, older)
		summary.MergedIn = len(merged) - len(readings)
		readings = merged
	}

	if len(readings) == 0 {
		return "", nil, fmt.Errorf("no hourly readings found in input")
	}

	loc, err := time.LoadLocation(cfg.GetTimezone())
	if err != nil {
		return "", nil, fmt.Errorf("loading timezone %q: %w", cfg.GetTimezone(), err)
	}

	partition := transform.Classify(readings)
	totals := transform.AggregateDaily(readings, loc, cfg.GetDailyHourUTC())

	summary.Readings = len(readings)
	summary.OnPeak = len(partition.OnPeak)
	summary.MidPeak = len(partition.MidPeak)
	summary.OffPeak = len(partition.OffPeak)
	summary.Days = len(totals)
	summary.FirstStart = readings[0].Start
	summary.LastStart = readings[len(readings)-1].Start
	for _, t := range totals {
		summary.TotalKWh += t.ConsumptionKWh
		summary.TotalCost += t.CostCAD
	}

	createdTS := opts.CreatedTS
	if createdTS == 0 {
		createdTS = time.Now().Unix()
	}
	gen := sqlgen.New(cfg, createdTS)

	var stmts []string
	if opts.Clear {
		stmts = append(stmts, gen.ClearStatements()...)
	}
	stmts = append(stmts, gen.MetaStatements()...)
	for _, spec := range cfg.Series() {
		stmts = append(stmts, gen.InsertStatements(spec, seriesPoints(spec.ID, partition, totals))...)
	}
	summary.Statements = len(stmts)

	return strings.Join(stmts, "\n\n") + "\n", summary, nil
}

// seriesPoints selects the point sequence feeding one catalogue series
func seriesPoints(seriesID string, p transform.Partition, totals []models.DailyTotal) []models.SeriesPoint {
	switch seriesID {
	case "on_peak":
		return transform.ConsumptionPoints(p.OnPeak)
	case "mid_peak":
		return transform.ConsumptionPoints(p.MidPeak)
	case "off_peak":
		return transform.ConsumptionPoints(p.OffPeak)
	case "on_peak_cost":
		return transform.CostPoints(p.OnPeak)
	case "mid_peak_cost":
		return transform.CostPoints(p.MidPeak)
	case "off_peak_cost":
		return transform.CostPoints(p.OffPeak)
	case "daily_usage":
		return transform.DailyConsumptionPoints(totals)
	case "daily_cost":
		return transform.DailyCostPoints(totals)
	}
	return nil
}
