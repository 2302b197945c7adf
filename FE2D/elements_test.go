package FE2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scicomp-go/poisson2d/types"
)

func near(a, b, tol float64) bool { return math.Abs(a-b) < tol }

func TestLagrangeElement(t *testing.T) {
	// Degree must be positive
	{
		_, err := NewLagrangeElement(0)
		var ice *types.InvalidConfigurationError
		assert.ErrorAs(t, err, &ice)
	}
	// Nodal delta property
	{
		for _, P := range []int{1, 2, 3} {
			el, err := NewLagrangeElement(P)
			assert.NoError(t, err)
			for jy := 0; jy < el.Np1D; jy++ {
				for jx := 0; jx < el.Np1D; jx++ {
					phi := el.BasisAt(el.R.AtVec(jx), el.R.AtVec(jy))
					for n, v := range phi {
						if n == jy*el.Np1D+jx {
							assert.True(t, near(v, 1, 1.e-12))
						} else {
							assert.True(t, near(v, 0, 1.e-12))
						}
					}
				}
			}
		}
	}
	// Partition of unity, gradient of the constant is zero
	{
		el, _ := NewLagrangeElement(2)
		r, s := -0.3137, 0.7211
		phi := el.BasisAt(r, s)
		dr, ds := el.BasisGradAt(r, s)
		var sum, sumDr, sumDs float64
		for n := range phi {
			sum += phi[n]
			sumDr += dr[n]
			sumDs += ds[n]
		}
		assert.True(t, near(sum, 1, 1.e-12))
		assert.True(t, near(sumDr, 0, 1.e-10))
		assert.True(t, near(sumDs, 0, 1.e-10))
	}
	// Gauss rule integrates through degree 2n-1
	{
		x, w := GaussQuadrature1D(2)
		var i2, i3 float64
		for q := range x {
			i2 += w[q] * x[q] * x[q]
			i3 += w[q] * x[q] * x[q] * x[q]
		}
		assert.True(t, near(i2, 2./3., 1.e-12))
		assert.True(t, near(i3, 0, 1.e-12))
	}
}

func TestFunctionSpace(t *testing.T) {
	msh, _ := NewUnitSquareMesh(4, 4)
	// DOF counts follow mesh and degree only
	{
		fs1, err := NewFunctionSpace(msh, Lagrange, 1)
		assert.NoError(t, err)
		assert.Equal(t, 25, fs1.NumDofs())
		fs2, _ := NewFunctionSpace(msh, Lagrange, 2)
		assert.Equal(t, 81, fs2.NumDofs())
		_, err = NewFunctionSpace(msh, Lagrange, -1)
		var ice *types.InvalidConfigurationError
		assert.ErrorAs(t, err, &ice)
	}
	// Cell DOFs share grid points with neighbors
	{
		fs, _ := NewFunctionSpace(msh, Lagrange, 1)
		d0 := fs.CellDofs(0)
		d1 := fs.CellDofs(1)
		assert.Equal(t, d0[1], d1[0])
		assert.Equal(t, d0[3], d1[2])
	}
	// Boundary DOFs of the unit square are exactly the perimeter points
	{
		for _, P := range []int{1, 2} {
			fs, _ := NewFunctionSpace(msh, Lagrange, P)
			bdofs, err := fs.BoundaryDofs()
			assert.NoError(t, err)
			assert.Equal(t, 2*(4*P+4*P), len(bdofs))
			onBoundary := func(d int) bool {
				x, y := fs.DofCoord(d)
				return x == 0 || x == 1 || y == 0 || y == 1
			}
			for _, d := range bdofs {
				assert.True(t, onBoundary(d))
			}
			// and no perimeter point is missing
			var count int
			for d := 0; d < fs.NumDofs(); d++ {
				if onBoundary(d) {
					count++
				}
			}
			assert.Equal(t, count, len(bdofs))
		}
	}
}

func TestFunction(t *testing.T) {
	msh, _ := NewRectangleMesh(-1, 0, 2, 2, 3, 3)
	fs, _ := NewFunctionSpace(msh, Lagrange, 1)
	// Bilinear fields are reproduced exactly by degree 1 interpolation
	{
		expr := func(x, y float64) float64 { return 2 + x + 3*y + x*y }
		f := NewFunction(fs).Interpolate(expr)
		for _, k := range []int{0, 4, 8} {
			x0, y0 := fs.CellOrigin(k)
			r, s := -0.25, 0.6
			x := x0 + (r+1)/2*fs.Hx
			y := y0 + (s+1)/2*fs.Hy
			assert.True(t, near(f.EvalInCell(k, r, s), expr(x, y), 1.e-12))
		}
	}
	// Dirichlet constraint values come from the boundary function
	{
		g := NewFunction(fs).Interpolate(func(x, y float64) float64 { return 1 + x*x + 2*y*y })
		bc, err := NewDirichletBC(fs, g)
		assert.NoError(t, err)
		assert.Equal(t, 2*(3+3), len(bc.Dofs))
		for n, d := range bc.Dofs {
			x, y := fs.DofCoord(d)
			assert.True(t, near(bc.Values[n], 1+x*x+2*y*y, 1.e-14))
		}
	}
}
