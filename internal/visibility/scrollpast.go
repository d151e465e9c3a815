package visibility

// IsScrolledPast reports whether the entry's top edge sits more than
// thresholdPx above the viewport. The boundary itself is not scrolled past.
func IsScrolledPast(e Entry, thresholdPx float64) bool {
	return e.BoundingRect.Top < -thresholdPx
}
