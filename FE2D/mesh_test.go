package FE2D

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scicomp-go/poisson2d/types"
)

func TestCartMesh(t *testing.T) {
	// Entity counts
	{
		msh, err := NewRectangleMesh(0, 0, 3, 2, 3, 2)
		assert.NoError(t, err)
		assert.Equal(t, 6, msh.K)
		assert.Equal(t, 12, msh.NVerts)
		assert.Equal(t, 3*3+4*2, msh.NFacets)
	}
	// Invalid configurations
	{
		_, err := NewUnitSquareMesh(0, 4)
		var ice *types.InvalidConfigurationError
		assert.ErrorAs(t, err, &ice)
		_, err = NewRectangleMesh(1, 0, 1, 1, 4, 4)
		assert.ErrorAs(t, err, &ice)
	}
	// Cell topology: shared vertices and facets between neighbors
	{
		msh, _ := NewUnitSquareMesh(2, 2)
		// cells 0 and 1 share the right/left facet
		assert.Equal(t, msh.CToF[0][1], msh.CToF[1][3])
		// cells 0 and 2 share the top/bottom facet
		assert.Equal(t, msh.CToF[0][2], msh.CToF[2][0])
		// vertex sharing along the common edge
		assert.Equal(t, msh.EToV[0][1], msh.EToV[1][0])
		assert.Equal(t, msh.EToV[0][2], msh.EToV[1][3])
	}
	// FacetInfo round trip
	{
		msh, _ := NewUnitSquareMesh(3, 2)
		for k := 0; k < msh.K; k++ {
			for _, f := range msh.CToF[k] {
				_, _, _, err := msh.FacetInfo(f)
				assert.NoError(t, err)
			}
		}
		_, _, _, err := msh.FacetInfo(msh.NFacets)
		assert.Error(t, err)
	}
}

func TestConnectivity(t *testing.T) {
	// Exterior facet query requires connectivity
	{
		msh, _ := NewUnitSquareMesh(4, 4)
		_, err := msh.ExteriorFacets()
		var te *types.TopologyError
		assert.ErrorAs(t, err, &te)
	}
	// Exterior facets of a rectangle: the perimeter edges
	{
		msh, _ := NewRectangleMesh(0, 0, 1, 1, 4, 3)
		msh.BuildConnectivity()
		msh.BuildConnectivity() // idempotent
		ext, err := msh.ExteriorFacets()
		assert.NoError(t, err)
		assert.Equal(t, 2*(4+3), len(ext))
		// every interior facet has exactly two adjacent cells
		for f := 0; f < msh.NFacets; f++ {
			nAdj := len(msh.FToC[f])
			assert.True(t, nAdj == 1 || nAdj == 2)
			if nAdj == 2 {
				assert.False(t, ext.Contains(f))
			}
		}
	}
}
