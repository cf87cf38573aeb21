package models

// TOUTier is the time-of-use pricing tier of an hourly interval
type TOUTier int

const (
	TierOnPeak TOUTier = iota
	TierMidPeak
	TierOffPeak
)

// TierFromCode maps a Green Button tou code to a tier.
// Code 1 is on-peak, 2 is mid-peak; 3, a missing code, and any
// unrecognized code all land on off-peak.
func TierFromCode(code int) TOUTier {
	switch code {
	case 1:
		return TierOnPeak
	case 2:
		return TierMidPeak
	default:
		return TierOffPeak
	}
}

// String returns the tier name as used in display output
func (t TOUTier) String() string {
	switch t {
	case TierOnPeak:
		return "On-Peak"
	case TierMidPeak:
		return "Mid-Peak"
	default:
		return "Off-Peak"
	}
}

// Reading represents one hourly electricity interval from a Green Button export.
// Readings are constructed once by the extractor and never mutated.
type Reading struct {
	Start          int64   `json:"start"` // interval start, epoch seconds UTC
	ConsumptionKWh float64 `json:"consumption_kwh"`
	CostCAD        float64 `json:"cost_cad"`
	Tier           TOUTier `json:"tier"`
}

// DailyTotal represents one calendar day's summed usage in the reference time zone
type DailyTotal struct {
	Date           string  `json:"date"`  // YYYY-MM-DD in the reference zone
	Start          int64   `json:"start"` // representative timestamp, epoch seconds UTC
	ConsumptionKWh float64 `json:"consumption_kwh"`
	CostCAD        float64 `json:"cost_cad"`
}

// SeriesPoint is one (timestamp, value) sample feeding an output statistic
type SeriesPoint struct {
	Start int64   `json:"start"`
	Value float64 `json:"value"`
}
