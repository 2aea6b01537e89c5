package game_test

import (
	"testing"

	"github.com/iburimskiy/circle-playground/internal/game"
	"github.com/iburimskiy/circle-playground/internal/test"
)

func TestWheelAccumulator(t *testing.T) {
	var w game.WheelAccumulator
	test.ExpectEquality(t, w.Add(0.5), 0)
	test.ExpectEquality(t, w.Add(0.25), 0)
	test.ExpectEquality(t, w.Add(0.25), 1)
	test.ExpectEquality(t, w.Add(3), 3)
	test.ExpectEquality(t, w.Add(-0.5), 0)
	test.ExpectEquality(t, w.Add(-0.75), -1)
	test.ExpectEquality(t, w.Add(0.25), 0)
}

func TestWheelAccumulatorSplitting(t *testing.T) {
	// the same movement delivered in different slices gives the same total
	var whole, split game.WheelAccumulator
	a := whole.Add(2.5) + whole.Add(0.5)

	b := 0
	for i := 0; i < 12; i++ {
		b += split.Add(0.25)
	}
	test.ExpectEquality(t, a, 3)
	test.ExpectEquality(t, b, 3)
}
