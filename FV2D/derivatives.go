package FV2D

/*
LimitedDerivs estimates the x and y derivatives of U and the x derivative of
F and y derivative of G at every cell with both neighbors on the padded grid.
Each cell writes only its own UX, UY, FX, GY entries.
*/
func (c *Central2D[P, L]) LimitedDerivs() {
	var (
		g = c.Grid
	)
	c.forEachBucket(1, g.NYAll-1, func(_, iyMin, iyMax int) {
		for iy := iyMin; iy < iyMax; iy++ {
			for ix := 1; ix < g.NXAll-1; ix++ {
				u0 := g.U.Cell(ix, iy)
				// x derivs
				c.limdiff(g.UX.Cell(ix, iy), g.U.Cell(ix-1, iy), u0, g.U.Cell(ix+1, iy))
				c.limdiff(g.FX.Cell(ix, iy), g.F.Cell(ix-1, iy), g.F.Cell(ix, iy), g.F.Cell(ix+1, iy))
				// y derivs
				c.limdiff(g.UY.Cell(ix, iy), g.U.Cell(ix, iy-1), u0, g.U.Cell(ix, iy+1))
				c.limdiff(g.GY.Cell(ix, iy), g.G.Cell(ix, iy-1), g.G.Cell(ix, iy), g.G.Cell(ix, iy+1))
			}
		}
	})
}

// limdiff applies the limiter to each component of a cell vector.
func (c *Central2D[P, L]) limdiff(du, um, u0, up []float64) {
	for m := range du {
		du[m] = c.Lim.LimDiff(um[m], u0[m], up[m])
	}
}
