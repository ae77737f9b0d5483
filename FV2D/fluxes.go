package FV2D

const speedFloor = 1.e-15 // Keeps the CFL ratio finite when the flow is at rest

/*
ComputeFGSpeeds evaluates the fluxes F, G at every cell of the padded grid and
returns the maximum wave speeds in x and y. Ghost cells are included: the
limited flux derivatives one ring in from the edge read them.
*/
func (c *Central2D[P, L]) ComputeFGSpeeds() (cx, cy float64) {
	var (
		g = c.Grid
	)
	for np := range c.cxP {
		c.cxP[np], c.cyP[np] = speedFloor, speedFloor
	}
	c.forEachBucket(0, g.NYAll, func(np, iyMin, iyMax int) {
		var (
			cxL, cyL = c.cxP[np], c.cyP[np]
		)
		for iy := iyMin; iy < iyMax; iy++ {
			for ix := 0; ix < g.NXAll; ix++ {
				u := g.U.Cell(ix, iy)
				c.Phys.Flux(g.F.Cell(ix, iy), g.G.Cell(ix, iy), u)
				cellCx, cellCy := c.Phys.WaveSpeed(u)
				if cellCx > cxL {
					cxL = cellCx
				}
				if cellCy > cyL {
					cyL = cellCy
				}
			}
		}
		c.cxP[np], c.cyP[np] = cxL, cyL
	})
	cx, cy = speedFloor, speedFloor
	for np := range c.cxP {
		if c.cxP[np] > cx {
			cx = c.cxP[np]
		}
		if c.cyP[np] > cy {
			cy = c.cyP[np]
		}
	}
	return
}
