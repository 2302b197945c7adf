package FE2D

import (
	"github.com/scicomp-go/poisson2d/types"
	"github.com/scicomp-go/poisson2d/utils"
)

type Family uint8

const (
	Lagrange Family = iota
)

/*
	FunctionSpace pairs a mesh with an element description. On a structured
	quad mesh with tensor Lagrange elements the global DOFs form a grid of
	(Nx*P+1) x (Ny*P+1) points; shared cell boundaries share DOFs, which is
	what makes the space continuous. DOF count therefore depends only on the
	mesh subdivisions and the element degree.
*/
type FunctionSpace struct {
	Msh    *CartMesh
	El     *LagrangeElement
	P      int
	NDx    int     // DOF columns, Nx*P+1
	NDy    int     // DOF rows, Ny*P+1
	Hx, Hy float64 // Cell extents
}

func NewFunctionSpace(msh *CartMesh, family Family, degree int) (fs *FunctionSpace, err error) {
	if family != Lagrange {
		err = types.ErrInvalidConfiguration("unsupported element family %d", family)
		return
	}
	var el *LagrangeElement
	if el, err = NewLagrangeElement(degree); err != nil {
		return
	}
	fs = &FunctionSpace{
		Msh: msh,
		El:  el,
		P:   degree,
		NDx: msh.Nx*degree + 1,
		NDy: msh.Ny*degree + 1,
		Hx:  (msh.XMax - msh.XMin) / float64(msh.Nx),
		Hy:  (msh.YMax - msh.YMin) / float64(msh.Ny),
	}
	return
}

func (fs *FunctionSpace) NumDofs() int { return fs.NDx * fs.NDy }

// DofCoord returns the coordinates of DOF d in the global grid numbering.
func (fs *FunctionSpace) DofCoord(d int) (x, y float64) {
	var (
		iy = d / fs.NDx
		ix = d - iy*fs.NDx
	)
	x = fs.Msh.XMin + float64(ix)*fs.Hx/float64(fs.P)
	y = fs.Msh.YMin + float64(iy)*fs.Hy/float64(fs.P)
	return
}

// CellDofs returns the global DOF indices of cell k in element node order.
func (fs *FunctionSpace) CellDofs(k int) (dofs utils.Index) {
	var (
		nx = fs.Msh.Nx
		j  = k / nx
		i  = k - j*nx
		p  = fs.P
	)
	dofs = utils.NewIndex(fs.El.Np)
	var n int
	for jy := 0; jy <= p; jy++ {
		for jx := 0; jx <= p; jx++ {
			dofs[n] = (j*p+jy)*fs.NDx + i*p + jx
			n++
		}
	}
	return
}

// CellOrigin returns the lower left corner of cell k.
func (fs *FunctionSpace) CellOrigin(k int) (x0, y0 float64) {
	var (
		nx = fs.Msh.Nx
		j  = k / nx
		i  = k - j*nx
	)
	x0 = fs.Msh.XMin + float64(i)*fs.Hx
	y0 = fs.Msh.YMin + float64(j)*fs.Hy
	return
}

// FacetDofs returns the DOFs in the closure of facet f - for Lagrange
// elements these are the P+1 grid points along the facet.
func (fs *FunctionSpace) FacetDofs(f int) (dofs utils.Index, err error) {
	var (
		horizontal bool
		i, j       int
		p          = fs.P
	)
	if horizontal, i, j, err = fs.Msh.FacetInfo(f); err != nil {
		return
	}
	dofs = utils.NewIndex(p + 1)
	if horizontal {
		for jx := 0; jx <= p; jx++ {
			dofs[jx] = (j*p)*fs.NDx + i*p + jx
		}
	} else {
		for jy := 0; jy <= p; jy++ {
			dofs[jy] = (j*p+jy)*fs.NDx + i*p
		}
	}
	return
}

// BoundaryDofs computes the DOFs supported on the exterior boundary. The
// facet-cell connectivity is a prerequisite; BuildConnectivity is lazy and
// idempotent so the ordering dependency lives inside the mesh, not with the
// caller.
func (fs *FunctionSpace) BoundaryDofs() (dofs utils.Index, err error) {
	fs.Msh.BuildConnectivity()
	var (
		ext utils.Index
	)
	if ext, err = fs.Msh.ExteriorFacets(); err != nil {
		return
	}
	var all utils.Index
	for _, f := range ext {
		var fd utils.Index
		if fd, err = fs.FacetDofs(f); err != nil {
			return
		}
		all = append(all, fd...)
	}
	dofs = all.Dedup()
	return
}
