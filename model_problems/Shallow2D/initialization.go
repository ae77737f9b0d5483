package Shallow2D

import (
	"fmt"
	"math"
	"strings"
)

type InitType uint

const (
	DAM_BREAK InitType = iota
	POND
	RIVER
	WAVE
)

var (
	InitNames = map[string]InitType{
		"dam_break": DAM_BREAK,
		"pond":      POND,
		"river":     RIVER,
		"wave":      WAVE,
	}
	InitLabels     = []string{"dam_break", "pond", "river", "wave"}
	InitPrintNames = []string{"Circular Dam Break", "Still Pond", "River", "Wave on a River"}
)

func (it InitType) Print() (txt string) {
	txt = InitPrintNames[it]
	return
}

func (it InitType) String() string { return InitLabels[it] }

// NewInitType looks up label. An unknown label returns DAM_BREAK together
// with an error naming the label, callers may report it and continue.
func NewInitType(label string) (it InitType, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if it, ok = InitNames[label]; !ok {
		it = DAM_BREAK
		err = fmt.Errorf("unknown initial conditions %q, must be one of %v, using %s",
			label, InitLabels, it)
	}
	return
}

/*
NewInitFunc returns the initial state for the problem on a W x H domain.

	dam_break: h = 1.5 inside a circle of radius 0.5 at the domain center, 1 outside, at rest
	pond:      h = 1 at rest, nothing should move
	river:     h = 1, hu = 1, a uniform flow that should stay uniform
	wave:      h = 1 + 0.2 sin(pi x) on a river, steepens into a shock
*/
func NewInitFunc(it InitType, W, H float64) (fn func(U []float64, x, y float64)) {
	switch it {
	case POND:
		fn = func(U []float64, x, y float64) {
			U[0], U[1], U[2] = 1, 0, 0
		}
	case RIVER:
		fn = func(U []float64, x, y float64) {
			U[0], U[1], U[2] = 1, 1, 0
		}
	case WAVE:
		fn = func(U []float64, x, y float64) {
			U[0], U[1], U[2] = 1+0.2*math.Sin(math.Pi*x), 1, 0
		}
	default:
		var (
			x0, y0 = 0.5 * W, 0.5 * H
		)
		fn = func(U []float64, x, y float64) {
			x -= x0
			y -= y0
			U[0] = 1
			if x*x+y*y < 0.25+1.e-5 {
				U[0] = 1.5
			}
			U[1], U[2] = 0, 0
		}
	}
	return
}
