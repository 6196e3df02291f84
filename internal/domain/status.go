package domain

import "strings"

// StatusAll disables the categorical filter.
const StatusAll = "all"

// StatusFilter is the categorical filter of a list. The zero value and "all"
// match every record; any other value must equal the record status exactly.
type StatusFilter string

func (f StatusFilter) IsAll() bool {
	return f == "" || f == StatusAll
}

func (f StatusFilter) Matches(status string) bool {
	return f.IsAll() || string(f) == status
}

// Timeframe selects a chart series.
type Timeframe string

const (
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
	TimeframeYearly  Timeframe = "yearly"
)

// ParseTimeframe falls back to monthly for anything it does not recognise.
func ParseTimeframe(s string) Timeframe {
	switch Timeframe(strings.ToLower(s)) {
	case TimeframeWeekly:
		return TimeframeWeekly
	case TimeframeYearly:
		return TimeframeYearly
	default:
		return TimeframeMonthly
	}
}
