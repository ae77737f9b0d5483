package FV2D

import (
	"github.com/notargets/central2d/utils"
)

// forEachBucket runs one pass over indices iMin <= i < iMax split into
// ParallelDegree contiguous buckets, returning when every bucket is done.
func (c *Central2D[P, L]) forEachBucket(iMin, iMax int, fn func(np, i0, i1 int)) {
	var (
		n      = iMax - iMin
		pm, ok = c.partitions[n]
	)
	if !ok {
		pm = utils.NewPartitionMap(c.ParallelDegree, n)
		c.partitions[n] = pm
	}
	pm.RunParallel(iMin, fn)
}

func (c *Central2D[P, L]) firstError() (err error) {
	for np, e := range c.errP {
		if e != nil && err == nil {
			err = e
		}
		c.errP[np] = nil
	}
	return
}
