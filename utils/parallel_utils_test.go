package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scicomp-go/poisson2d/types"
)

func TestPartitionMap(t *testing.T) {
	// Even split
	{
		pm := NewPartitionMap(4, 100)
		var total int
		for n := 0; n < 4; n++ {
			assert.Equal(t, 25, pm.GetBucketDimension(n))
			total += pm.GetBucketDimension(n)
		}
		assert.Equal(t, 100, total)
	}
	// Remainder spread over the first buckets, buckets contiguous
	{
		pm := NewPartitionMap(3, 10)
		assert.Equal(t, 4, pm.GetBucketDimension(0))
		assert.Equal(t, 3, pm.GetBucketDimension(1))
		assert.Equal(t, 3, pm.GetBucketDimension(2))
		var last int
		for n := 0; n < 3; n++ {
			kMin, kMax := pm.GetBucketRange(n)
			assert.Equal(t, last, kMin)
			last = kMax
		}
		assert.Equal(t, 10, last)
	}
	// More workers than items leaves empty buckets, never negative
	{
		pm := NewPartitionMap(4, 2)
		var total int
		for n := 0; n < 4; n++ {
			assert.GreaterOrEqual(t, pm.GetBucketDimension(n), 0)
			total += pm.GetBucketDimension(n)
		}
		assert.Equal(t, 2, total)
	}
}

func TestCollective(t *testing.T) {
	// All workers observe the same sum and max, across repeated rounds
	{
		NP := 5
		c := NewCollective(NP)
		sums := make([]float64, NP)
		maxs := make([]float64, NP)
		wg := sync.WaitGroup{}
		for round := 0; round < 3; round++ {
			for np := 0; np < NP; np++ {
				wg.Add(1)
				go func(np int) {
					defer wg.Done()
					s, err := c.AllReduceSum(np, float64(np+1))
					assert.NoError(t, err)
					sums[np] = s
					m, err := c.AllReduceMax(np, float64(np))
					assert.NoError(t, err)
					maxs[np] = m
				}(np)
			}
			wg.Wait()
			for np := 0; np < NP; np++ {
				assert.Equal(t, 15., sums[np])
				assert.Equal(t, 4., maxs[np])
			}
		}
	}
	// Worker index outside the collective
	{
		c := NewCollective(1)
		_, err := c.AllReduceSum(1, 0)
		assert.Error(t, err)
		var re *types.ReductionError
		assert.ErrorAs(t, err, &re)
	}
}

func TestSparse(t *testing.T) {
	// Accumulate sums duplicate contributions, CSR preserves them
	{
		d := NewDOK(3, 3)
		d.Accumulate(0, 0, 1)
		d.Accumulate(0, 0, 2)
		d.Accumulate(2, 1, -1)
		c := d.ToCSR()
		assert.Equal(t, 3., c.At(0, 0))
		assert.Equal(t, -1., c.At(2, 1))
	}
	// MulRawVec matches the dense product
	{
		d := NewDOK(2, 2)
		d.Set(0, 0, 2)
		d.Set(0, 1, 1)
		d.Set(1, 1, 3)
		c := d.ToCSR()
		y := make([]float64, 2)
		c.MulRawVec(y, []float64{1, 2})
		assert.Equal(t, []float64{4, 6}, y)
		dense := c.Dense()
		assert.Equal(t, 2., dense.At(0, 0))
		assert.Equal(t, 3., dense.At(1, 1))
	}
}
