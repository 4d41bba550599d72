package domain

import (
	"fmt"
	"sort"
	"time"
)

// Timeframe is a lookback window in days. Only the enumerated windows are
// valid.
type Timeframe int

const (
	TimeframeWeek   Timeframe = 7
	Timeframe30Days Timeframe = 30
	Timeframe60Days Timeframe = 60
	Timeframe90Days Timeframe = 90
)

var timeframeByKey = map[string]Timeframe{
	"last-week":    TimeframeWeek,
	"last-30-days": Timeframe30Days,
	"last-60-days": Timeframe60Days,
	"last-90-days": Timeframe90Days,
}

// ParseTimeframe resolves a timeframe key, e.g. "last-30-days".
func ParseTimeframe(key string) (Timeframe, error) {
	tf, ok := timeframeByKey[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeframe, key)
	}
	return tf, nil
}

// TimeframeKeys returns the valid timeframe keys sorted by window length.
func TimeframeKeys() []string {
	keys := make([]string, 0, len(timeframeByKey))
	for key := range timeframeByKey {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return timeframeByKey[keys[i]] < timeframeByKey[keys[j]]
	})
	return keys
}

// Days returns the window length in days.
func (t Timeframe) Days() int {
	return int(t)
}

// StartDate returns the inclusive start of the window ending at now.
func (t Timeframe) StartDate(now time.Time) time.Time {
	return now.AddDate(0, 0, -int(t))
}

func (t Timeframe) String() string {
	for key, tf := range timeframeByKey {
		if tf == t {
			return key
		}
	}
	return fmt.Sprintf("%d-days", int(t))
}
