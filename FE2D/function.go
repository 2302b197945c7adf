package FE2D

import (
	"github.com/scicomp-go/poisson2d/utils"
)

// Function assigns a scalar value to every DOF of a FunctionSpace. Values
// are mutable at construction/interpolation time only; once a Function is
// handed to the solver or the error evaluator it is treated as a read-only
// sampled field.
type Function struct {
	FS     *FunctionSpace
	Values utils.Vector
}

func NewFunction(fs *FunctionSpace) (f *Function) {
	f = &Function{
		FS:     fs,
		Values: utils.NewVector(fs.NumDofs()),
	}
	return
}

// Interpolate samples expr at every DOF coordinate. The expression must be
// evaluable everywhere in the domain closure.
func (f *Function) Interpolate(expr func(x, y float64) float64) *Function {
	for d := 0; d < f.FS.NumDofs(); d++ {
		x, y := f.FS.DofCoord(d)
		f.Values.SetVec(d, expr(x, y))
	}
	return f
}

// EvalInCell evaluates the field at reference point (r,s) of cell k.
func (f *Function) EvalInCell(k int, r, s float64) (val float64) {
	var (
		phi  = f.FS.El.BasisAt(r, s)
		dofs = f.FS.CellDofs(k)
		data = f.Values.Data()
	)
	for n, d := range dofs {
		val += phi[n] * data[d]
	}
	return
}

func (f *Function) Copy() (r *Function) {
	r = &Function{
		FS:     f.FS,
		Values: f.Values.Copy(),
	}
	return
}
