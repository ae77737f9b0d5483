package FV2D

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Report holds the area weighted integrals of the first three components and
// the range of the first component over the interior.
type Report struct {
	Volume               float64
	MomentumX, MomentumY float64
	HMin, HMax           float64
}

func (r Report) String() string {
	return fmt.Sprintf("-\n  Volume: %.6g\n  Momentum: (%.6g, %.6g)\n  Range: [%.6g, %.6g]\n",
		r.Volume, r.MomentumX, r.MomentumY, r.HMin, r.HMax)
}

/*
SolutionCheck scans the interior, returns the Report and writes it to w when w
is not nil. Components beyond those carried by the physics read as zero. A
non-positive first component anywhere is returned as ErrNonPositive and
nothing is written.
*/
func (c *Central2D[P, L]) SolutionCheck(w io.Writer) (r Report, err error) {
	var (
		g    = c.Grid
		col  = make([]float64, g.NX)
		sums [3]float64
	)
	r.HMin, r.HMax = math.Inf(1), math.Inf(-1)
	for iy := NGhost; iy < g.NY+NGhost; iy++ {
		row := g.U.RowView(NGhost, g.NX+NGhost, iy)
		for m := 0; m < len(sums) && m < g.NC; m++ {
			mat.Col(col, m, row)
			if m == 0 {
				for i, h := range col {
					if !(h > 0) {
						err = fmt.Errorf("%w: cell (%d,%d) h = %g",
							ErrNonPositive, i, iy-NGhost, h)
						return Report{}, err
					}
				}
				r.HMin = math.Min(r.HMin, floats.Min(col))
				r.HMax = math.Max(r.HMax, floats.Max(col))
			}
			sums[m] += floats.Sum(col)
		}
	}
	floats.Scale(g.DX*g.DY, sums[:])
	r.Volume, r.MomentumX, r.MomentumY = sums[0], sums[1], sums[2]
	if w != nil {
		_, err = io.WriteString(w, r.String())
	}
	return
}
