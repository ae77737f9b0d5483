package benchmarks

import (
	"fmt"
	"testing"

	"github.com/notargets/central2d/FV2D"
	"github.com/notargets/central2d/model_problems/Shallow2D"
)

func newSolver(b *testing.B, NX, ProcLimit int) (c *Shallow2D.Solver) {
	var (
		err error
		lim FV2D.MinMod
	)
	if lim, err = FV2D.NewMinMod(0); err != nil {
		b.Fatal(err)
	}
	if c, err = FV2D.NewCentral2D(Shallow2D.NewShallow(0), lim, 2, 2, NX, NX, 0); err != nil {
		b.Fatal(err)
	}
	c.SetParallelDegree(ProcLimit)
	c.Init(Shallow2D.NewInitFunc(Shallow2D.DAM_BREAK, 2, 2))
	return
}

func BenchmarkShallowRun(b *testing.B) {
	for _, NP := range []int{1, 4} {
		b.Run(fmt.Sprintf("NX=200 NP=%d", NP), func(b *testing.B) {
			c := newSolver(b, 200, NP)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				// One frame of the default driver
				if err := c.Run(0.01); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkShallowPasses(b *testing.B) {
	var (
		c = newSolver(b, 200, 1)
	)
	b.Run("ApplyPeriodic", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			c.ApplyPeriodic()
		}
	})
	b.Run("ComputeFGSpeeds", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			c.ComputeFGSpeeds()
		}
	})
	b.Run("LimitedDerivs", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			c.LimitedDerivs()
		}
	})
	b.Run("SolutionCheck", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := c.SolutionCheck(nil); err != nil {
				b.Fatal(err)
			}
		}
	})
}
