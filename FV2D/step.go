package FV2D

import (
	"fmt"
)

/*
ComputeStep advances the solution one half-step of size dt from the grid
selected by io (0 = primary, 1 = staggered) to the other. The fluxes and the
limited derivatives must be current for U.
*/
func (c *Central2D[P, L]) ComputeStep(io int, dt float64) (err error) {
	var (
		dtcdx2 = 0.5 * dt / c.DX
		dtcdy2 = 0.5 * dt / c.DY
	)
	c.predictor(dtcdx2, dtcdy2)
	c.corrector(io, dtcdx2, dtcdy2)
	return c.copyBack(io)
}

/*
predictor replaces F and G at every non-edge cell with the flux of the state
advanced half a step:

	uh = u - dtcdx2*fx - dtcdy2*gy

The overwrite is in place. It is safe only because a cell's predicted flux
depends on its own u, fx and gy alone, and no cell reads another cell's F or
G during this pass. Any change that lets a cell read a neighbor's flux here
must move the result into a separate field.
*/
func (c *Central2D[P, L]) predictor(dtcdx2, dtcdy2 float64) {
	var (
		g = c.Grid
	)
	c.forEachBucket(1, g.NYAll-1, func(np, iyMin, iyMax int) {
		uh := c.uh[np]
		for iy := iyMin; iy < iyMax; iy++ {
			for ix := 1; ix < g.NXAll-1; ix++ {
				var (
					u  = g.U.Cell(ix, iy)
					fx = g.FX.Cell(ix, iy)
					gy = g.GY.Cell(ix, iy)
				)
				for m := range uh {
					uh[m] = u[m] - dtcdx2*fx[m] - dtcdy2*gy[m]
				}
				c.Phys.Flux(g.F.Cell(ix, iy), g.G.Cell(ix, iy), uh)
			}
		}
	})
}

// corrector writes V over the 2x2 stencil window shifted by io.
func (c *Central2D[P, L]) corrector(io int, dtcdx2, dtcdy2 float64) {
	var (
		g            = c.Grid
		ixMin, ixMax = NGhost - io, g.NX + NGhost - io
	)
	c.forEachBucket(NGhost-io, g.NY+NGhost-io, func(_, iyMin, iyMax int) {
		for iy := iyMin; iy < iyMax; iy++ {
			for ix := ixMin; ix < ixMax; ix++ {
				var (
					v                  = g.V.Cell(ix, iy)
					u00, u10           = g.U.Cell(ix, iy), g.U.Cell(ix+1, iy)
					u01, u11           = g.U.Cell(ix, iy+1), g.U.Cell(ix+1, iy+1)
					ux00, ux10         = g.UX.Cell(ix, iy), g.UX.Cell(ix+1, iy)
					ux01, ux11         = g.UX.Cell(ix, iy+1), g.UX.Cell(ix+1, iy+1)
					uy00, uy10         = g.UY.Cell(ix, iy), g.UY.Cell(ix+1, iy)
					uy01, uy11         = g.UY.Cell(ix, iy+1), g.UY.Cell(ix+1, iy+1)
					f00, f10, f01, f11 = g.F.Cell(ix, iy), g.F.Cell(ix+1, iy), g.F.Cell(ix, iy+1), g.F.Cell(ix+1, iy+1)
					g00, g10, g01, g11 = g.G.Cell(ix, iy), g.G.Cell(ix+1, iy), g.G.Cell(ix, iy+1), g.G.Cell(ix+1, iy+1)
				)
				for m := range v {
					v[m] = 0.2500*(u00[m]+u10[m]+u01[m]+u11[m]) -
						0.0625*(ux10[m]-ux00[m]+
							ux11[m]-ux01[m]+
							uy01[m]-uy00[m]+
							uy11[m]-uy10[m]) -
						dtcdx2*(f10[m]-f00[m]+
							f11[m]-f01[m]) -
						dtcdy2*(g01[m]-g00[m]+
							g11[m]-g10[m])
				}
			}
		}
	})
}

/*
copyBack moves V into the canonical interior of U, u(i,j) = v(i-io,j-io), and
checks the first component of every copied cell. A failure is recorded per
partition and the lowest partition's failure is returned.
*/
func (c *Central2D[P, L]) copyBack(io int) (err error) {
	var (
		g = c.Grid
	)
	c.forEachBucket(NGhost, g.NY+NGhost, func(np, iyMin, iyMax int) {
		for iy := iyMin; iy < iyMax; iy++ {
			var (
				dst = g.U.Span(NGhost, g.NX+NGhost, iy)
				src = g.V.Span(NGhost-io, g.NX+NGhost-io, iy-io)
			)
			copy(dst, src)
			if c.errP[np] != nil {
				continue
			}
			for i := 0; i < g.NX; i++ {
				if h := dst[i*g.NC]; !(h > 0) {
					c.errP[np] = fmt.Errorf("%w: cell (%d,%d) h = %g",
						ErrNonPositive, i, iy-NGhost, h)
					break
				}
			}
		}
	})
	return c.firstError()
}
