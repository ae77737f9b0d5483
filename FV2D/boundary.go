package FV2D

/*
ApplyPeriodic fills the ghost ring from the periodic image of the interior.
Cells NGhost <= ix < NX+NGhost, NGhost <= iy < NY+NGhost are canonical and
every other cell takes the value of the canonical cell (ix+p*NX, iy+q*NY).
Both sweeps read canonical cells only; the corner ghosts are written by both
with the same value, so the sweeps are separate passes.
*/
func (c *Central2D[P, L]) ApplyPeriodic() {
	var (
		g = c.Grid
		u = g.U
	)
	// Copy data between right and left boundaries
	c.forEachBucket(0, g.NYAll, func(_, iyMin, iyMax int) {
		for iy := iyMin; iy < iyMax; iy++ {
			wy := g.WrapY(iy)
			for ix := 0; ix < NGhost; ix++ {
				ixR := g.NX + NGhost + ix
				copy(u.Cell(ix, iy), u.Cell(g.WrapX(ix), wy))
				copy(u.Cell(ixR, iy), u.Cell(g.WrapX(ixR), wy))
			}
		}
	})
	// Copy data between top and bottom boundaries
	c.forEachBucket(0, g.NXAll, func(_, ixMin, ixMax int) {
		for ix := ixMin; ix < ixMax; ix++ {
			wx := g.WrapX(ix)
			for iy := 0; iy < NGhost; iy++ {
				iyT := g.NY + NGhost + iy
				copy(u.Cell(ix, iy), u.Cell(wx, g.WrapY(iy)))
				copy(u.Cell(ix, iyT), u.Cell(wx, g.WrapY(iyT)))
			}
		}
	})
}
