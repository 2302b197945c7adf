package utils

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DOK and CSR wrap the james-bowman sparse types with the small surface the
// assembly code needs: accumulate-by-index during assembly, then freeze to
// CSR for matrix-vector products and solves.

type DOK struct {
	M *sparse.DOK
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{sparse.NewDOK(nr, nc)}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix      { return m.M.T() }

func (m DOK) Set(i, j int, val float64) { m.M.Set(i, j, val) }

func (m DOK) Accumulate(i, j int, val float64) {
	m.M.Set(i, j, m.M.At(i, j)+val)
}

func (m DOK) DoNonZero(fn func(i, j int, v float64)) { m.M.DoNonZero(fn) }

func (m DOK) NNZ() int { return m.M.NNZ() }

func (m DOK) ToCSR() CSR {
	return CSR{m.M.ToCSR()}
}

type CSR struct {
	M *sparse.CSR
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix      { return m.M.T() }

func (m CSR) DoNonZero(fn func(i, j int, v float64)) { m.M.DoNonZero(fn) }

func (m CSR) NNZ() int { return m.M.NNZ() }

// MulRawVec computes dst = M*x over the nonzero pattern.
func (m CSR) MulRawVec(dst, x []float64) {
	for i := range dst {
		dst[i] = 0
	}
	m.M.DoNonZero(func(i, j int, v float64) {
		dst[i] += v * x[j]
	})
}

// Dense expands the matrix for direct factorization. Only sensible for the
// small systems the direct strategy is configured for.
func (m CSR) Dense() (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	m.M.DoNonZero(func(i, j int, v float64) {
		R.M.Set(i, j, v)
	})
	return
}
