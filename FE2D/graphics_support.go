package FE2D

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/notargets/avs/geometry"
)

// CreateGraphMesh triangulates the DOF grid of a FunctionSpace into a
// renderable TriMesh. Each fine grid quad splits into two triangles; the
// point ordering matches the DOF numbering so a solution's DOF values can
// attach directly as a vertex scalar field.
func CreateGraphMesh(fs *FunctionSpace) (gm geometry.TriMesh) {
	var (
		nx, ny = fs.NDx - 1, fs.NDy - 1
		XY     = make([]float32, 2*fs.NumDofs())
	)
	for d := 0; d < fs.NumDofs(); d++ {
		x, y := fs.DofCoord(d)
		XY[2*d] = float32(x)
		XY[2*d+1] = float32(y)
	}
	TriVerts := make([][3]int64, 0, 2*nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			bl := int64(j*fs.NDx + i)
			br := bl + 1
			tl := bl + int64(fs.NDx)
			tr := tl + 1
			TriVerts = append(TriVerts,
				[3]int64{bl, br, tr},
				[3]int64{bl, tr, tl},
			)
		}
	}
	gm = geometry.TriMesh{
		XY:       XY,
		TriVerts: TriVerts,
	}
	return
}

// SolutionField converts a Function's DOF values to the float32 point
// scalars the renderer consumes. Ordering matches CreateGraphMesh.
func SolutionField(f *Function) (field []float32) {
	var (
		data = f.Values.Data()
	)
	field = make([]float32, len(data))
	for i, v := range data {
		field[i] = float32(v)
	}
	return
}

// WarpByScalar displaces each point along the vertical axis proportional to
// the field value. Presentation only - the numerical pipeline never reads
// the warped geometry back.
func WarpByScalar(gm geometry.TriMesh, field []float32, scale float32) (warped geometry.TriMesh) {
	var (
		XY = make([]float32, len(gm.XY))
	)
	copy(XY, gm.XY)
	for i, f := range field {
		XY[2*i+1] += scale * f
	}
	warped = geometry.TriMesh{
		XY:       XY,
		TriVerts: gm.TriVerts,
	}
	return
}

// WriteGraphMesh saves the triangulated mesh as the offscreen artifact.
func WriteGraphMesh(gm geometry.TriMesh, fileName string) {
	var (
		err         error
		file        *os.File
		lenXYCoords = int64(len(gm.XY))
		lenTriVerts = int64(len(gm.TriVerts))
	)
	file, err = os.Create(fileName)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	fmt.Printf("Number of Coordinate Pairs: %d\n", lenXYCoords/2)
	fmt.Printf("Number of Triangle Elements: %d\n", lenTriVerts)
	nDimensions := int64(2) // 2D
	binary.Write(file, binary.LittleEndian, nDimensions)
	binary.Write(file, binary.LittleEndian, lenTriVerts)
	binary.Write(file, binary.LittleEndian, gm.TriVerts)
	binary.Write(file, binary.LittleEndian, lenXYCoords)
	binary.Write(file, binary.LittleEndian, gm.XY)
}

// WriteSolutionField appends a point scalar field to the artifact.
func WriteSolutionField(field []float32, fileName string) {
	var (
		lenField = int64(len(field))
	)
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	binary.Write(file, binary.LittleEndian, lenField)
	binary.Write(file, binary.LittleEndian, field)
}
