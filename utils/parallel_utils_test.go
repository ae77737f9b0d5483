package utils

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{ // Test PartitionMap
		getHisto := func(K, Np int) (histo map[int]int) {
			pm := NewPartitionMap(Np, K)
			histo = make(map[int]int)
			for np := 0; np < pm.ParallelDegree; np++ {
				maxK := pm.GetBucketDimension(np)
				histo[maxK]++
			}
			return
		}
		getTotal := func(histo map[int]int) (total int) {
			for key, count := range histo {
				total += key * count
			}
			return
		}
		assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
		assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
		assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
		assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
		assert.Equal(t, 287, getTotal(getHisto(287, 32)))
		for n := 64; n < 2000; n++ {
			var (
				keys   [2]float64
				keyNum int
			)
			histo := getHisto(n, 32)
			for key := range histo {
				keys[keyNum] = float64(key)
				keyNum++
			}
			if keyNum == 2 {
				assert.Equal(t, 1., math.Abs(keys[0]-keys[1])) // Maximum imbalance of 1
			}
			assert.Equal(t, n, getTotal(histo))
		}
	}
	{ // Test inverted bucket probe - find bucket that contains index
		for maxIndex := 10; maxIndex < 500; maxIndex++ {
			pm := NewPartitionMap(5, maxIndex)
			for k := 0; k < maxIndex; k++ {
				bn, min, max := pm.GetBucket(k)
				mmin, mmax := pm.GetBucketRange(bn)
				assert.True(t, k >= min && k < max && min == mmin && max == mmax)
			}
			bn, _, _ := pm.GetBucket(maxIndex)
			assert.Equal(t, -1, bn)
		}
	}
	{ // Degree below one collapses to serial
		pm := NewPartitionMap(0, 7)
		assert.Equal(t, 1, pm.ParallelDegree)
		assert.Equal(t, [2]int{0, 7}, pm.Partitions[0])
	}
}

func TestRunParallel(t *testing.T) {
	for _, NP := range []int{1, 3, 8, 40} {
		var (
			offset = 5
			n      = 29
			pm     = NewPartitionMap(NP, n)
			hits   = make([]int, n+offset)
			mu     sync.Mutex
			calls  int
		)
		pm.RunParallel(offset, func(np, iMin, iMax int) {
			mu.Lock()
			calls++
			mu.Unlock()
			for i := iMin; i < iMax; i++ {
				hits[i]++ // buckets are disjoint
			}
		})
		for i := 0; i < offset; i++ {
			assert.Equal(t, 0, hits[i])
		}
		for i := offset; i < n+offset; i++ {
			assert.Equal(t, 1, hits[i])
		}
		if NP <= n {
			assert.Equal(t, NP, calls)
		} else {
			assert.Equal(t, n, calls)
		}
	}
	{ // Empty range never calls fn
		pm := NewPartitionMap(1, 0)
		pm.RunParallel(0, func(np, iMin, iMax int) {
			t.Fatalf("unexpected call")
		})
	}
}

func TestGetMemUsage(t *testing.T) {
	assert.Contains(t, GetMemUsage(), "Alloc = ")
	assert.Contains(t, GetMemUsage(), "Goroutines = ")
}
