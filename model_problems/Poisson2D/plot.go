package Poisson2D

import (
	"fmt"

	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"

	"github.com/scicomp-go/poisson2d/FE2D"
	"github.com/scicomp-go/poisson2d/types"
)

// PlotMeta controls solution rendering. With WarpScale nonzero the field
// displaces the mesh vertically before shading, giving a pseudo-3D view of
// the solution surface on a 2D canvas.
type PlotMeta struct {
	FieldMin, FieldMax float64 // zero/zero means autoscale
	WarpScale          float64
	FileBase           string // offscreen: write <base>.gobcfd mesh + field instead of rendering
}

/*
	PlotSolution renders the solved field as a shaded vertex scalar over the
	triangulated DOF mesh. Interactive mode opens an OpenGL window and
	blocks. Offscreen mode serializes the graph mesh and field for external
	viewers and returns.
*/
func (p *Poisson) PlotSolution(pm PlotMeta) (err error) {
	if p.U == nil {
		err = types.ErrInvalidConfiguration("no solution to plot: Solve must succeed first")
		return
	}
	var (
		gm    = FE2D.CreateGraphMesh(p.FS)
		field = FE2D.SolutionField(p.U)
	)
	if pm.FileBase != "" {
		FE2D.WriteGraphMesh(gm, pm.FileBase+".gobcfd")
		FE2D.WriteSolutionField(field, pm.FileBase+".gobcfd")
		return
	}
	var (
		fMin, fMax = float32(pm.FieldMin), float32(pm.FieldMax)
		yMin, yMax = float32(p.YMin), float32(p.YMax)
	)
	if fMin == 0 && fMax == 0 {
		fMin, fMax = fieldMinMax(field)
	}
	if pm.WarpScale != 0 {
		gm = FE2D.WarpByScalar(gm, field, float32(pm.WarpScale))
		yMin += float32(pm.WarpScale) * fMin
		yMax += float32(pm.WarpScale) * fMax
	}
	ch := chart2d.NewChart2D(float32(p.XMin), float32(p.XMax), yMin, yMax,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	vs := geometry.VertexScalar{
		TMesh:       &gm,
		FieldValues: field,
	}
	fmt.Printf("fMin: %f, fMax: %f\n", fMin, fMax)
	ch.AddShadedVertexScalar(&vs, fMin, fMax)
	ch.AddTriMesh(gm)
	for {
	}
}

func fieldMinMax(field []float32) (fMin, fMax float32) {
	for i, f := range field {
		if i == 0 {
			fMin = f
			fMax = f
		}
		if f < fMin {
			fMin = f
		}
		if f > fMax {
			fMax = f
		}
	}
	return
}
