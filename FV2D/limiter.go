package FV2D

import (
	"fmt"
	"math"
)

/*
A Limiter estimates a scaled derivative from three successive samples um, u0,
up along one grid direction, suppressing spurious slopes across
discontinuities. Implementations must be pure: the solver calls LimDiff
concurrently from every pass partition.
*/
type Limiter interface {
	LimDiff(um, u0, up float64) float64
}

const DefaultTheta = 2.

/*
MinMod estimates the slope through fm, f0, fp (unit step) as

	minmod((fp-fm)/2, theta*(fp-f0), theta*(f0-fm))

where minmod is the argument of smallest magnitude when all arguments share a
sign and zero otherwise. Common choices are theta = 1 and theta = 2.
*/
type MinMod struct {
	Theta float64
}

func NewMinMod(theta float64) (mm MinMod, err error) {
	switch {
	case theta == 0:
		theta = DefaultTheta
	case !(theta > 0 && theta <= 2):
		err = fmt.Errorf("minmod theta must be in (0,2], have %g", theta)
		return
	}
	mm = MinMod{Theta: theta}
	return
}

// xmin2s returns 2*s*min(|a|,|b|) carrying the common sign of a and b, or
// zero when the signs differ. The sign test is folded into copysign.
func xmin2s(s, a, b float64) float64 {
	var (
		sa, sb     = math.Copysign(s, a), math.Copysign(s, b)
		absA, absB = math.Abs(a), math.Abs(b)
		minAbs     = absA
	)
	if absB < absA {
		minAbs = absB
	}
	return (sa + sb) * minAbs
}

func (mm MinMod) LimDiff(um, u0, up float64) float64 {
	var (
		du1 = u0 - um // Difference to left
		du2 = up - u0 // Difference to right
		duc = up - um // Centered difference
	)
	return xmin2s(0.25, xmin2s(mm.Theta, du1, du2), duc)
}
