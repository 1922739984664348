package metrics

// SyntheticBaseline stands in for yesterday's value of a metric. There is
// no historical lookup: the baseline is always current-5, which makes
// trends deterministic. When a real history source exists this function
// can be replaced without touching any call site.
func SyntheticBaseline(current int) int {
	return current - 5
}

// trendAgainstBaseline classifies current against the synthetic baseline:
// deltas beyond +-2 percentage points report a direction, anything closer
// is stable.
func trendAgainstBaseline(current int) Trend {
	baseline := SyntheticBaseline(current)
	switch {
	case current > baseline+2:
		return TrendHigher
	case current < baseline-2:
		return TrendLower
	default:
		return TrendStable
	}
}
