package utils

import (
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (V Vector) {
	if len(dataO) != 0 {
		V = Vector{mat.NewVecDense(n, dataO[0])}
	} else {
		V = Vector{mat.NewVecDense(n, make([]float64, n))}
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }
func (v Vector) Data() []float64          { return v.V.RawVector().Data }

func (v Vector) SetVec(i int, val float64) Vector {
	v.V.SetVec(i, val)
	return v
}

func (v Vector) Set(val float64) Vector {
	data := v.Data()
	for i := range data {
		data[i] = val
	}
	return v
}

func (v Vector) Copy() (R Vector) {
	data := make([]float64, v.Len())
	copy(data, v.Data())
	R = NewVector(v.Len(), data)
	return
}

func (v Vector) Subtract(a Vector) Vector { // Changes receiver
	v.V.SubVec(v.V, a.V)
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector { // Changes receiver
	data := v.Data()
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) Max() (max float64) {
	data := v.Data()
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) Min() (min float64) {
	data := v.Data()
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) MaxAbsDiff(a Vector) (max float64) {
	var (
		d1, d2 = v.Data(), a.Data()
	)
	for i := range d1 {
		if diff := math.Abs(d1[i] - d2[i]); diff > max {
			max = diff
		}
	}
	return
}
