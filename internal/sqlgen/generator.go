// Package sqlgen emits the SQL artifact consumed by the Home Assistant
// recorder database: statistics_meta registrations and batched
// long-term statistics inserts.
package sqlgen

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/internal/config"
	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/pkg/models"
)

// Generator produces SQL statements for one run. CreatedTS is the run's
// wall-clock epoch, stamped on every inserted row.
type Generator struct {
	cfg       *config.Config
	createdTS int64
}

// New creates a generator for one invocation
func New(cfg *config.Config, createdTS int64) *Generator {
	return &Generator{cfg: cfg, createdTS: createdTS}
}

// MetaStatements returns one idempotent registration statement per series.
// Registering an already-registered statistic id is a no-op.
func (g *Generator) MetaStatements() []string {
	specs := g.cfg.Series()
	stmts := make([]string, 0, len(specs))
	for _, spec := range specs {
		sid := g.cfg.StatisticID(spec.ID)
		stmts = append(stmts, fmt.Sprintf(
			"INSERT INTO statistics_meta (statistic_id, source, unit_of_measurement, has_mean, has_sum, name)\n"+
				"SELECT %s, %s, %s, 0, 1, %s\n"+
				"WHERE NOT EXISTS (SELECT 1 FROM statistics_meta WHERE statistic_id = %s);",
			quote(sid), quote(g.cfg.GetSource()), quote(spec.Unit), quote(spec.Name), quote(sid)))
	}
	return stmts
}

// ClearStatements returns deletes scoped to this tool's statistic ids.
// Rows go first, then the metadata they reference.
func (g *Generator) ClearStatements() []string {
	ids := make([]string, 0, len(g.cfg.Series()))
	for _, spec := range g.cfg.Series() {
		ids = append(ids, quote(g.cfg.StatisticID(spec.ID)))
	}
	idList := strings.Join(ids, ", ")
	return []string{
		fmt.Sprintf("DELETE FROM statistics WHERE metadata_id IN (SELECT id FROM statistics_meta WHERE statistic_id IN (%s));", idList),
		fmt.Sprintf("DELETE FROM statistics_meta WHERE statistic_id IN (%s);", idList),
	}
}

// InsertStatements returns batched inserts for one series, carrying the
// running cumulative sum alongside each instantaneous value. The sum
// starts from zero for every series on every run; duplicate rows are
// absorbed by the (metadata_id, start_ts) unique index via
// INSERT OR IGNORE rather than overwritten.
func (g *Generator) InsertStatements(spec config.SeriesSpec, points []models.SeriesPoint) []string {
	if len(points) == 0 {
		return nil
	}

	sid := g.cfg.StatisticID(spec.ID)
	metaRef := fmt.Sprintf("(SELECT id FROM statistics_meta WHERE statistic_id = %s)", quote(sid))
	batchSize := g.cfg.GetBatchSize()

	var stmts []string
	var sum float64
	for offset := 0; offset < len(points); offset += batchSize {
		end := offset + batchSize
		if end > len(points) {
			end = len(points)
		}

		var b strings.Builder
		b.WriteString("INSERT OR IGNORE INTO statistics (created_ts, metadata_id, start_ts, state, sum)\nVALUES")
		for i, p := range points[offset:end] {
			sum += p.Value
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, "\n  (%d, %s, %d, %s, %s)",
				g.createdTS, metaRef, p.Start, formatValue(p.Value), formatValue(sum))
		}
		b.WriteString(";")
		stmts = append(stmts, b.String())
	}

	return stmts
}

// formatValue renders a float rounded to 6 decimal places, enough to keep
// micro-kWh precision without letting float drift show up in the artifact
func formatValue(v float64) string {
	return strconv.FormatFloat(round6(v), 'f', -1, 64)
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
