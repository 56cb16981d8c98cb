package catalog

// Range names a low/medium/high potency bucket.
type Range string

const (
	RangeLow    Range = "low"
	RangeMedium Range = "medium"
	RangeHigh   Range = "high"
)

// Bucket boundaries. The policy is inclusive-low/exclusive-high: a value
// exactly on a boundary belongs to the upper bucket, so THC 10.0 is
// medium, never low. This gives a total, non-overlapping partition of
// the numeric range.
const (
	THCMediumMin = 10.0
	THCHighMin   = 20.0
	CBDMediumMin = 5.0
	CBDHighMin   = 15.0
)

// THCRange classifies a THC percentage into its bucket.
func THCRange(value float64) Range {
	return classify(value, THCMediumMin, THCHighMin)
}

// CBDRange classifies a CBD percentage into its bucket.
func CBDRange(value float64) Range {
	return classify(value, CBDMediumMin, CBDHighMin)
}

func classify(value, mediumMin, highMin float64) Range {
	switch {
	case value >= highMin:
		return RangeHigh
	case value >= mediumMin:
		return RangeMedium
	default:
		return RangeLow
	}
}

// ValidRange reports whether s is a recognized bucket token.
func ValidRange(s string) bool {
	switch Range(s) {
	case RangeLow, RangeMedium, RangeHigh:
		return true
	}
	return false
}
