package local

import (
	"fmt"
	"math/rand"
)

// Wheel awards a one-time welcome discount with weighted odds:
// 40% chance of 5%, 30% of 10%, 15% of 15%, 10% of 20%, 5% of 25%.
type Wheel struct {
	rand func() float64
}

// WheelOption customizes a Wheel.
type WheelOption func(*Wheel)

// WithRand overrides the random source, for tests.
func WithRand(r func() float64) WheelOption {
	return func(w *Wheel) { w.rand = r }
}

// NewWheel creates a discount wheel.
func NewWheel(opts ...WheelOption) *Wheel {
	w := &Wheel{rand: rand.Float64}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Spin draws a discount percentage and the coupon code that redeems it.
func (w *Wheel) Spin() (percent int, code string) {
	r := w.rand()
	switch {
	case r < 0.40:
		percent = 5
	case r < 0.70:
		percent = 10
	case r < 0.85:
		percent = 15
	case r < 0.95:
		percent = 20
	default:
		percent = 25
	}
	return percent, fmt.Sprintf("WELCOME%d", percent)
}
