package utils

import (
	"math"
	"sync"

	"github.com/scicomp-go/poisson2d/types"
)

// PartitionMap splits a linear index range (cells, DOFs) into
// ParallelDegree contiguous buckets with a maximum imbalance of one item.
// Each SPMD worker owns exactly one bucket.
type PartitionMap struct {
	MaxIndex       int
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketDimension(bucketNum int) (kMax int) {
	var (
		k1, k2 = pm.GetBucketRange(bucketNum)
	)
	kMax = k2 - k1
	return
}

func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	var (
		Npart            = pm.MaxIndex / pm.ParallelDegree
		startAdd, endAdd int
		remainder        = pm.MaxIndex % pm.ParallelDegree
	)
	if remainder != 0 { // spread the remainder over the first chunks evenly
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}

// Collective implements the two reductions the pipeline needs: global sum
// and global max across SPMD workers. Every worker must reach each call or
// the run deadlocks - there is deliberately no timeout or cancellation.
// Each worker reduces the slot array in the same order, so the result is
// identical (bitwise) on all workers and across reruns.
type Collective struct {
	NP    int
	slots []float64

	mu         sync.Mutex
	cond       *sync.Cond
	arrived    int
	generation int
}

func NewCollective(NP int) (c *Collective) {
	c = &Collective{
		NP:    NP,
		slots: make([]float64, NP),
	}
	c.cond = sync.NewCond(&c.mu)
	return
}

// await blocks until all NP workers have arrived, then releases the whole
// group. Reusable across rounds via the generation counter.
func (c *Collective) await() {
	c.mu.Lock()
	gen := c.generation
	c.arrived++
	if c.arrived == c.NP {
		c.arrived = 0
		c.generation++
		c.cond.Broadcast()
	} else {
		for gen == c.generation {
			c.cond.Wait()
		}
	}
	c.mu.Unlock()
}

func (c *Collective) reduce(myWorker int, val float64, op func(a, b float64) float64) (float64, error) {
	if myWorker < 0 || myWorker >= c.NP {
		return 0, types.ErrReduction("worker %d outside collective of degree %d", myWorker, c.NP)
	}
	c.slots[myWorker] = val
	c.await()
	acc := c.slots[0]
	for n := 1; n < c.NP; n++ {
		acc = op(acc, c.slots[n])
	}
	// Second sync so no worker overwrites a slot while another still reads
	c.await()
	return acc, nil
}

func (c *Collective) AllReduceSum(myWorker int, val float64) (float64, error) {
	return c.reduce(myWorker, val, func(a, b float64) float64 { return a + b })
}

func (c *Collective) AllReduceMax(myWorker int, val float64) (float64, error) {
	return c.reduce(myWorker, val, math.Max)
}
