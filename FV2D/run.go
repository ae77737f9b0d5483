package FV2D

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

/*
Run advances the solution by tfinal, an offset from the current time. Steps
are taken in pairs, primary grid to staggered grid and back, so the solution
is on the primary grid when Run returns. The step size of a pair is chosen at
its first half-step from the CFL bound; the last pair is shortened to land
exactly on tfinal.
*/
func (c *Central2D[P, L]) Run(tfinal float64) (err error) {
	var (
		done bool
		t    float64
		dt   float64
		log  = Logger()
	)
	if math.IsNaN(tfinal) || tfinal < 0 || math.IsInf(tfinal, 0) {
		err = fmt.Errorf("%w: tfinal = %g", ErrInvalidTime, tfinal)
		return
	}
	for !done {
		for io := 0; io < 2; io++ {
			c.ApplyPeriodic()
			cx, cy := c.ComputeFGSpeeds()
			c.LimitedDerivs()
			if io == 0 {
				dt = c.CFL / math.Max(cx/c.DX, cy/c.DY)
				if t+2*dt >= tfinal {
					dt = (tfinal - t) / 2
					done = true
				}
				c.lastDt, c.lastCx, c.lastCy = dt, cx, cy
			}
			if err = c.ComputeStep(io, dt); err != nil {
				err = fmt.Errorf("step %d at t = %g: %w", c.steps, c.time+t, err)
				return
			}
			t += dt
			c.steps++
		}
		log.Debug("step pair",
			zap.Int("steps", c.steps),
			zap.Float64("t", c.time+t),
			zap.Float64("dt", c.lastDt),
			zap.Float64("cx", c.lastCx),
			zap.Float64("cy", c.lastCy))
	}
	c.time += t
	return
}
