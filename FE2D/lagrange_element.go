package FE2D

import (
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/scicomp-go/poisson2d/types"
	"github.com/scicomp-go/poisson2d/utils"
)

/*
	LagrangeElement is a continuous tensor product Lagrange element on the
	reference square [-1,1]x[-1,1]. Nodes are the tensor grid of P+1
	equispaced points per axis, ordered with the first axis fastest:
		n = jy*(P+1) + jx
	so the local ordering matches the global structured DOF grid.
*/
type LagrangeElement struct {
	P    int // Polynomial degree
	Np1D int // Nodes per axis, P+1
	Np   int // Total nodes, (P+1)^2
	R    utils.Vector
}

func NewLagrangeElement(P int) (el *LagrangeElement, err error) {
	if P < 1 {
		err = types.ErrInvalidConfiguration("element degree must be a positive integer, have %d", P)
		return
	}
	el = &LagrangeElement{
		P:    P,
		Np1D: P + 1,
		Np:   (P + 1) * (P + 1),
	}
	r := make([]float64, el.Np1D)
	for j := range r {
		r[j] = -1 + 2*float64(j)/float64(P)
	}
	el.R = utils.NewVector(el.Np1D, r)
	return
}

// Lagrange1D evaluates the j-th 1D cardinal basis polynomial at r.
func (el *LagrangeElement) Lagrange1D(j int, r float64) (p float64) {
	var (
		nodes = el.R.Data()
	)
	p = 1
	for k, rk := range nodes {
		if k == j {
			continue
		}
		p *= (r - rk) / (nodes[j] - rk)
	}
	return
}

// Lagrange1DDeriv evaluates d/dr of the j-th cardinal polynomial at r.
func (el *LagrangeElement) Lagrange1DDeriv(j int, r float64) (dp float64) {
	var (
		nodes = el.R.Data()
	)
	for m, rm := range nodes {
		if m == j {
			continue
		}
		term := 1. / (nodes[j] - rm)
		for k, rk := range nodes {
			if k == j || k == m {
				continue
			}
			term *= (r - rk) / (nodes[j] - rk)
		}
		dp += term
	}
	return
}

// BasisAt evaluates all Np basis functions at the reference point (r,s).
func (el *LagrangeElement) BasisAt(r, s float64) (phi []float64) {
	var (
		lr = make([]float64, el.Np1D)
		ls = make([]float64, el.Np1D)
	)
	for j := 0; j < el.Np1D; j++ {
		lr[j] = el.Lagrange1D(j, r)
		ls[j] = el.Lagrange1D(j, s)
	}
	phi = make([]float64, el.Np)
	for jy := 0; jy < el.Np1D; jy++ {
		for jx := 0; jx < el.Np1D; jx++ {
			phi[jy*el.Np1D+jx] = lr[jx] * ls[jy]
		}
	}
	return
}

// BasisGradAt evaluates the reference gradients of all basis functions.
func (el *LagrangeElement) BasisGradAt(r, s float64) (dr, ds []float64) {
	var (
		lr  = make([]float64, el.Np1D)
		ls  = make([]float64, el.Np1D)
		dlr = make([]float64, el.Np1D)
		dls = make([]float64, el.Np1D)
	)
	for j := 0; j < el.Np1D; j++ {
		lr[j] = el.Lagrange1D(j, r)
		ls[j] = el.Lagrange1D(j, s)
		dlr[j] = el.Lagrange1DDeriv(j, r)
		dls[j] = el.Lagrange1DDeriv(j, s)
	}
	dr = make([]float64, el.Np)
	ds = make([]float64, el.Np)
	for jy := 0; jy < el.Np1D; jy++ {
		for jx := 0; jx < el.Np1D; jx++ {
			n := jy*el.Np1D + jx
			dr[n] = dlr[jx] * ls[jy]
			ds[n] = lr[jx] * dls[jy]
		}
	}
	return
}

// GaussQuadrature1D returns the n point Gauss-Legendre rule on [-1,1],
// exact for polynomials through degree 2n-1.
func GaussQuadrature1D(n int) (x, w []float64) {
	x = make([]float64, n)
	w = make([]float64, n)
	(quad.Legendre{}).FixedLocations(x, w, -1, 1)
	return
}
