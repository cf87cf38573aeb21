// Package espi parses Green Button (ESPI) interval-data exports.
package espi

import (
	"encoding/xml"
	"fmt"
	"sort"

	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/internal/config"
	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/pkg/models"
)

// hourlySeconds is the only interval duration we accept. Exports mix
// hourly electricity blocks with daily rollups and gas blocks at other
// durations; everything non-hourly is skipped.
const hourlySeconds = 3600

// The unqualified element names below match the local part of the tag
// regardless of namespace prefix, so both <IntervalBlock> and
// <espi:IntervalBlock> decode identically.
type feed struct {
	Entries []entry `xml:"entry"`
}

type entry struct {
	Content content `xml:"content"`
}

type content struct {
	IntervalBlocks []intervalBlock `xml:"IntervalBlock"`
}

type intervalBlock struct {
	Readings []intervalReading `xml:"IntervalReading"`
}

type intervalReading struct {
	TimePeriod timePeriod `xml:"timePeriod"`
	Value      int64      `xml:"value"`
	Cost       int64      `xml:"cost"`
	TOU        int        `xml:"tou"`
}

type timePeriod struct {
	Start    int64 `xml:"start"`
	Duration int64 `xml:"duration"`
}

// Extract parses a Green Button XML document into hourly readings sorted
// by interval start. A document with no feed, entries, or interval blocks
// yields an empty slice; unparsable markup is an error.
func Extract(data []byte) ([]models.Reading, error) {
	var f feed
	if err := xml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}

	var readings []models.Reading
	for _, e := range f.Entries {
		for _, block := range e.Content.IntervalBlocks {
			for _, ir := range block.Readings {
				if ir.TimePeriod.Duration != hourlySeconds {
					continue
				}
				// Zero value and zero cost together marks a
				// non-billing placeholder row, not real usage.
				if ir.Value == 0 && ir.Cost == 0 {
					continue
				}
				readings = append(readings, models.Reading{
					Start:          ir.TimePeriod.Start,
					ConsumptionKWh: float64(ir.Value) / config.ConsumptionDivisor,
					CostCAD:        float64(ir.Cost) / config.CostDivisor,
					Tier:           models.TierFromCode(ir.TOU),
				})
			}
		}
	}

	sort.SliceStable(readings, func(i, j int) bool {
		return readings[i].Start < readings[j].Start
	})

	return readings, nil
}
