package FE2D

import (
	"github.com/scicomp-go/poisson2d/types"
	"github.com/scicomp-go/poisson2d/utils"
)

/*
	CartMesh is a structured quadrilateral mesh over an axis aligned
	rectangle. Cells, vertices and facets are numbered row-major from the
	lower left corner:
		cell   (i,j) -> j*Nx + i
		vertex (i,j) -> j*(Nx+1) + i
	Facets are the cell edges. Horizontal facets (the bottom/top edges) come
	first, then vertical facets (the left/right edges).

	The mesh is immutable once constructed. Facet to cell connectivity is
	built on demand and cached - every boundary query needs it, and building
	it twice is a no-op.
*/
type CartMesh struct {
	Nx, Ny                 int
	XMin, YMin, XMax, YMax float64
	K                      int // Number of cells
	NVerts, NFacets        int
	VX, VY                 utils.Vector // Vertex coordinates
	EToV                   [][4]int     // Cell vertices, CCW from lower left
	CToF                   [][4]int     // Cell facets: bottom, right, top, left
	FToC                   [][]int      // Facet to adjacent cells, nil until built
}

func NewUnitSquareMesh(nx, ny int) (msh *CartMesh, err error) {
	return NewRectangleMesh(0, 0, 1, 1, nx, ny)
}

func NewRectangleMesh(xmin, ymin, xmax, ymax float64, nx, ny int) (msh *CartMesh, err error) {
	if nx < 1 || ny < 1 {
		err = types.ErrInvalidConfiguration("subdivision counts must be positive, have nx=%d, ny=%d", nx, ny)
		return
	}
	if xmax <= xmin || ymax <= ymin {
		err = types.ErrInvalidConfiguration("degenerate rectangle [%g,%g]x[%g,%g]", xmin, xmax, ymin, ymax)
		return
	}
	msh = &CartMesh{
		Nx: nx, Ny: ny,
		XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax,
		K:       nx * ny,
		NVerts:  (nx + 1) * (ny + 1),
		NFacets: nx*(ny+1) + (nx+1)*ny,
	}
	msh.buildGeometry()
	msh.buildCellTopology()
	return
}

func (msh *CartMesh) TDim() int     { return 2 }
func (msh *CartMesh) FacetDim() int { return msh.TDim() - 1 }

func (msh *CartMesh) buildGeometry() {
	var (
		nx, ny = msh.Nx, msh.Ny
		hx     = (msh.XMax - msh.XMin) / float64(nx)
		hy     = (msh.YMax - msh.YMin) / float64(ny)
	)
	msh.VX, msh.VY = utils.NewVector(msh.NVerts), utils.NewVector(msh.NVerts)
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			v := j*(nx+1) + i
			msh.VX.SetVec(v, msh.XMin+float64(i)*hx)
			msh.VY.SetVec(v, msh.YMin+float64(j)*hy)
		}
	}
}

func (msh *CartMesh) buildCellTopology() {
	var (
		nx, ny = msh.Nx, msh.Ny
	)
	msh.EToV = make([][4]int, msh.K)
	msh.CToF = make([][4]int, msh.K)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			k := j*nx + i
			bl := j*(nx+1) + i
			msh.EToV[k] = [4]int{bl, bl + 1, bl + nx + 2, bl + nx + 1}
			msh.CToF[k] = [4]int{
				msh.hFacet(i, j),
				msh.vFacet(i+1, j),
				msh.hFacet(i, j+1),
				msh.vFacet(i, j),
			}
		}
	}
}

// hFacet indexes the horizontal facet on vertex row j above cell column i.
func (msh *CartMesh) hFacet(i, j int) int { return j*msh.Nx + i }

// vFacet indexes the vertical facet on vertex column i beside cell row j.
func (msh *CartMesh) vFacet(i, j int) int {
	return msh.Nx*(msh.Ny+1) + j*(msh.Nx+1) + i
}

// FacetInfo decodes a facet index back into orientation and grid position.
func (msh *CartMesh) FacetInfo(f int) (horizontal bool, i, j int, err error) {
	var (
		nH = msh.Nx * (msh.Ny + 1)
	)
	switch {
	case f < 0 || f >= msh.NFacets:
		err = types.ErrTopology("facet %d out of range [0,%d)", f, msh.NFacets)
	case f < nH:
		horizontal = true
		j = f / msh.Nx
		i = f - j*msh.Nx
	default:
		f -= nH
		j = f / (msh.Nx + 1)
		i = f - j*(msh.Nx+1)
	}
	return
}

// BuildConnectivity computes the facet to cell adjacency through a sparse
// cell/facet incidence product. Idempotent - repeated calls return the
// cached adjacency.
func (msh *CartMesh) BuildConnectivity() {
	if msh.FToC != nil {
		return
	}
	CToF := utils.NewDOK(msh.K, msh.NFacets)
	for k := 0; k < msh.K; k++ {
		for _, f := range msh.CToF[k] {
			CToF.Set(k, f, 1)
		}
	}
	msh.FToC = make([][]int, msh.NFacets)
	CToF.ToCSR().DoNonZero(func(k, f int, v float64) {
		msh.FToC[f] = append(msh.FToC[f], k)
	})
}

// ExteriorFacets returns the facets adjacent to exactly one cell. The
// connectivity must exist first - callers that cannot guarantee ordering
// should go through BuildConnectivity, which is free when already built.
func (msh *CartMesh) ExteriorFacets() (ext utils.Index, err error) {
	if msh.FToC == nil {
		err = types.ErrTopology("exterior facet query before facet-cell connectivity was built")
		return
	}
	for f := 0; f < msh.NFacets; f++ {
		if len(msh.FToC[f]) == 1 {
			ext = append(ext, f)
		}
	}
	return
}

// CellPartition splits the cell range across NP workers.
func (msh *CartMesh) CellPartition(NP int) *utils.PartitionMap {
	return utils.NewPartitionMap(NP, msh.K)
}
