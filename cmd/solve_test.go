package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/scicomp-go/poisson2d/InputParameters"
)

func TestSolveInput(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
Nx: 10
Ny: 10
PolynomialOrder: 1
SolverType: iterative # Can be "direct"
MaxIterations: 5000
Tolerance: 1.e-12
`)
	var input InputParameters.PoissonParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Nx, 10)
	assert.Equal(t, input.Ny, 10)
	assert.Equal(t, input.SolverType, "iterative")
	assert.Equal(t, input.Tolerance, 1.e-12)
	// Unset fields take defaults
	assert.Equal(t, input.XMax, 1.)
	assert.Equal(t, input.Preconditioner, "none")
	input.Print()
}
