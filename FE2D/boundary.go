package FE2D

import (
	"github.com/scicomp-go/poisson2d/types"
	"github.com/scicomp-go/poisson2d/utils"
)

// DirichletBC fixes the solution value at every DOF lying on the exterior
// boundary, taking the prescribed values from a boundary Function on the
// same space. An empty boundary DOF set (closed manifold) is legal and
// constrains nothing - guarding against the resulting under-constrained
// system is the solver's concern.
type DirichletBC struct {
	FS     *FunctionSpace
	Dofs   utils.Index
	Values []float64
}

func NewDirichletBC(fs *FunctionSpace, g *Function) (bc *DirichletBC, err error) {
	if g.FS != fs {
		err = types.ErrInvalidConfiguration("boundary function lives on a different space")
		return
	}
	if fs.Msh.FacetDim() != fs.Msh.TDim()-1 {
		err = types.ErrTopology("facet dimension %d does not match topological dimension %d - 1",
			fs.Msh.FacetDim(), fs.Msh.TDim())
		return
	}
	var dofs utils.Index
	if dofs, err = fs.BoundaryDofs(); err != nil {
		return
	}
	bc = &DirichletBC{
		FS:     fs,
		Dofs:   dofs,
		Values: make([]float64, len(dofs)),
	}
	gd := g.Values.Data()
	for n, d := range dofs {
		bc.Values[n] = gd[d]
	}
	return
}

// Mask returns a per-DOF constrained flag for the assembly loop.
func (bc *DirichletBC) Mask() (mask []bool) {
	mask = make([]bool, bc.FS.NumDofs())
	for _, d := range bc.Dofs {
		mask[d] = true
	}
	return
}

// PrescribedValues expands the constraint pairs onto the full DOF vector,
// zero away from the boundary.
func (bc *DirichletBC) PrescribedValues() (g []float64) {
	g = make([]float64, bc.FS.NumDofs())
	for n, d := range bc.Dofs {
		g[d] = bc.Values[n]
	}
	return
}
