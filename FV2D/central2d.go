/*
Package FV2D implements the Jiang-Tadmor central scheme for hyperbolic
systems in two space dimensions:

	∂U/∂t + ∂F(U)/∂x + ∂G(U)/∂y = 0

on a periodic rectangle. The scheme needs neither Riemann solvers nor flux
Jacobians; it needs the fluxes F, G and a bound on the local wave speeds,
supplied by a Physics capability, and a slope Limiter.

Staggered grids:
The scheme alternates between the primary grid and a grid offset by half a
cell in each direction. On even half-steps u(i,j) is the average over the cell
centered at (x_i, y_j); on odd half-steps the same entry is the average over
the cell centered at (x_i + dx/2, y_j + dy/2). Run always takes an even number
of half-steps, so outside the solver the data lives on the primary grid. Over
one pair, unew(i,j) depends on uold(p,q) for |p-i| <= 3 and |q-j| <= 3.

Each half-step is a sequence of passes over the padded grid:

	ApplyPeriodic -> ComputeFGSpeeds -> LimitedDerivs -> predictor -> corrector -> copy-back

A pass reads values written by every cell of the previous pass and must
complete before the next begins. Within a pass no cell reads another cell's
output of the same pass, so every pass is split into row buckets and run in
parallel with the bucket join as the only synchronization.
*/
package FV2D

import (
	"fmt"
	"math"
	"runtime"

	"github.com/notargets/central2d/utils"
)

const DefaultCFL = 0.45

/*
Physics describes the conservation law. Flux and WaveSpeed are pure and
cell-local; the solver calls them for every cell, ghosts included, from
concurrent pass partitions.
*/
type Physics interface {
	NumComponents() int
	Flux(F, G, U []float64)                 // x and y flux vectors of state U
	WaveSpeed(U []float64) (cx, cy float64) // Local maximum characteristic speeds
	ByteAlign() int                         // Preferred vector alignment, a hint only
}

type Central2D[P Physics, L Limiter] struct {
	*Grid
	Phys           P
	Lim            L
	CFL            float64 // Max allowed CFL number
	ParallelDegree int     // Number of go routines per pass
	partitions     map[int]*utils.PartitionMap
	uh             [][]float64 // Predictor scratch, one per partition
	cxP, cyP       []float64   // Wave speed maxima, one per partition
	errP           []error     // Positivity failures, one per partition
	time           float64
	steps          int
	lastDt         float64
	lastCx, lastCy float64
}

func NewCentral2D[P Physics, L Limiter](phys P, lim L,
	W, H float64, NX, NY int, CFL float64) (c *Central2D[P, L], err error) {
	var (
		grid *Grid
	)
	if CFL <= 0 {
		CFL = DefaultCFL
	}
	if math.IsNaN(CFL) || math.IsInf(CFL, 0) {
		err = fmt.Errorf("%w: CFL = %g", ErrInvalidGrid, CFL)
		return
	}
	if grid, err = NewGrid(W, H, NX, NY, phys.NumComponents()); err != nil {
		return
	}
	c = &Central2D[P, L]{
		Grid: grid,
		Phys: phys,
		Lim:  lim,
		CFL:  CFL,
	}
	c.SetParallelDegree(1)
	return
}

// Init calls fn at the center of each interior cell to set the initial state.
// Cell (i,j) covers [i*dx, (i+1)*dx] x [j*dy, (j+1)*dy].
func (c *Central2D[P, L]) Init(fn func(U []float64, x, y float64)) {
	for iy := 0; iy < c.NY; iy++ {
		for ix := 0; ix < c.NX; ix++ {
			fn(c.U.Cell(NGhost+ix, NGhost+iy),
				(float64(ix)+0.5)*c.DX, (float64(iy)+0.5)*c.DY)
		}
	}
}

// At returns interior cell (i,j) of the solution, 0 based, as a mutable view.
func (c *Central2D[P, L]) At(i, j int) []float64 {
	if i < 0 || i >= c.NX || j < 0 || j >= c.NY {
		panic(fmt.Sprintf("interior index (%d,%d) out of range [0,%d)x[0,%d)",
			i, j, c.NX, c.NY))
	}
	return c.U.Cell(i+NGhost, j+NGhost)
}

func (c *Central2D[P, L]) XSize() int { return c.NX }
func (c *Central2D[P, L]) YSize() int { return c.NY }

// Time is the simulated time accumulated over all calls to Run.
func (c *Central2D[P, L]) Time() float64 { return c.time }

// Steps is the number of half-steps taken, always even between calls to Run.
func (c *Central2D[P, L]) Steps() int { return c.steps }

// LastStep reports the most recent phase-0 step size and the wave speed
// bounds it was chosen from.
func (c *Central2D[P, L]) LastStep() (dt, cx, cy float64) {
	return c.lastDt, c.lastCx, c.lastCy
}

func (c *Central2D[P, L]) SetParallelDegree(ProcLimit int) {
	if ProcLimit > 0 {
		c.ParallelDegree = ProcLimit
	} else {
		c.ParallelDegree = runtime.NumCPU()
	}
	if c.ParallelDegree > c.NY {
		c.ParallelDegree = c.NY
	}
	c.partitions = make(map[int]*utils.PartitionMap)
	c.uh = make([][]float64, c.ParallelDegree)
	for np := range c.uh {
		c.uh[np] = make([]float64, c.NC)
	}
	c.cxP = make([]float64, c.ParallelDegree)
	c.cyP = make([]float64, c.ParallelDegree)
	c.errP = make([]error, c.ParallelDegree)
}
