package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, 3, aNr)
		assert.Equal(t, 2, aNc)
		assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, A.Data())
	}
	// Mul
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		I := NewMatrix(2, 2, []float64{
			1, 0,
			0, 1,
		})
		assert.Equal(t, M.Data(), M.Mul(I).Data())
	}
	// LUSolve
	{
		A := NewMatrix(2, 2, []float64{
			2, 0,
			0, 4,
		})
		b := NewVector(2, []float64{2, 8})
		x, err := A.LUSolve(b)
		assert.NoError(t, err)
		assert.InDelta(t, 1, x.AtVec(0), 1.e-14)
		assert.InDelta(t, 2, x.AtVec(1), 1.e-14)
	}
	// LUSolve on a singular system
	{
		A := NewMatrix(2, 2, []float64{
			1, 1,
			1, 1,
		})
		b := NewVector(2, []float64{1, 2})
		_, err := A.LUSolve(b)
		assert.Error(t, err)
	}
}

func TestVector(t *testing.T) {
	{
		v := NewVector(3, []float64{1, -5, 3})
		assert.Equal(t, 3., v.Max())
		assert.Equal(t, -5., v.Min())
		assert.Equal(t, 5., v.Copy().Apply(math.Abs).Max())
	}
	// MaxAbsDiff
	{
		a := NewVector(3, []float64{1, 2, 3})
		b := NewVector(3, []float64{1, 2.5, 2})
		assert.Equal(t, 1., a.MaxAbsDiff(b))
	}
	// Subtract changes the receiver
	{
		a := NewVector(2, []float64{3, 4})
		b := NewVector(2, []float64{1, 1})
		a.Subtract(b)
		assert.Equal(t, []float64{2, 3}, a.Data())
	}
}

func TestIndex(t *testing.T) {
	{
		I := NewRange(2, 5)
		assert.Equal(t, Index{2, 3, 4, 5}, I)
		assert.Equal(t, Index{4, 5, 6, 7}, I.Add(2))
		assert.True(t, I.Contains(3))
		assert.False(t, I.Contains(6))
	}
	{
		I := Index{5, 1, 5, 3, 1}
		assert.Equal(t, Index{1, 3, 5}, I.Dedup())
	}
}
