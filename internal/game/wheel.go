package game

// WheelAccumulator turns fractional wheel movement into whole ticks. The
// fractional part is carried over so that the total number of ticks does not
// depend on how the movement was split between calls.
type WheelAccumulator struct {
	rem float64
}

// Add records movement dy and returns the whole ticks now available,
// truncated toward zero.
func (w *WheelAccumulator) Add(dy float64) int {
	w.rem += dy
	n := int(w.rem)
	w.rem -= float64(n)
	return n
}
