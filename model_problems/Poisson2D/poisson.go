package Poisson2D

import (
	"fmt"
	"runtime"

	"github.com/scicomp-go/poisson2d/FE2D"
)

/*
	Poisson orchestrates the pipeline for -div(grad(u)) = f on a rectangle
	with Dirichlet data g on the whole exterior boundary:

		mesh -> space -> (boundary condition, weak forms)
		     -> solve -> {error metrics, visualization}

	Data flows strictly forward; every stage's output is immutable input to
	the next. A solver failure voids the error and visualization stages.
*/
type Poisson struct {
	// Input parameters
	Nx, Ny                 int
	XMin, YMin, XMax, YMax float64
	N                      int // Polynomial degree
	Source                 func(x, y float64) float64
	Exact                  func(x, y float64) float64 // boundary data and reference solution
	ParallelDegree         int
	Opts                   SolverOptions

	// Pipeline stages
	Msh *FE2D.CartMesh
	FS  *FE2D.FunctionSpace
	G   *FE2D.Function // Boundary function, Exact interpolated on FS
	BC  *FE2D.DirichletBC
	U   *FE2D.Function // Solution, nil until Solve succeeds
}

// DefaultSource is the constant source of the reference problem.
func DefaultSource(x, y float64) float64 { return -6 }

// DefaultExact is the boundary/exact solution 1 + x^2 + 2y^2 of the
// reference problem; DefaultSource is its negative Laplacian.
func DefaultExact(x, y float64) float64 { return 1 + x*x + 2*y*y }

func NewPoisson(xmin, ymin, xmax, ymax float64, nx, ny, N int,
	source, exact func(x, y float64) float64,
	procLimit int, opts SolverOptions, verbose bool) (p *Poisson, err error) {
	p = &Poisson{
		Nx: nx, Ny: ny,
		XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax,
		N:      N,
		Source: source,
		Exact:  exact,
		Opts:   opts,
	}
	if p.Source == nil {
		p.Source = DefaultSource
	}
	if p.Exact == nil {
		p.Exact = DefaultExact
	}
	if p.Msh, err = FE2D.NewRectangleMesh(xmin, ymin, xmax, ymax, nx, ny); err != nil {
		return
	}
	if p.FS, err = FE2D.NewFunctionSpace(p.Msh, FE2D.Lagrange, N); err != nil {
		return
	}
	p.SetParallelDegree(procLimit)
	p.G = FE2D.NewFunction(p.FS).Interpolate(p.Exact)
	if p.BC, err = FE2D.NewDirichletBC(p.FS, p.G); err != nil {
		return
	}
	if verbose {
		fmt.Printf("Poisson Equation in 2 Dimensions\n")
		fmt.Printf("Using %d go routines in parallel\n", p.ParallelDegree)
		fmt.Printf("Solver: %s\n", p.Opts.Strategy.Print())
		fmt.Printf("Polynomial Degree N = %d (1 is linear), Num Elements K = %d, DOFs = %d\n\n",
			N, p.Msh.K, p.FS.NumDofs())
	}
	return
}

// NewUnitSquarePoisson is the canonical configuration: unit square domain,
// reference source and boundary data.
func NewUnitSquarePoisson(nx, ny, N int, procLimit int, opts SolverOptions,
	verbose bool) (p *Poisson, err error) {
	return NewPoisson(0, 0, 1, 1, nx, ny, N, DefaultSource, DefaultExact,
		procLimit, opts, verbose)
}

func (p *Poisson) SetParallelDegree(procLimit int) {
	if procLimit != 0 {
		p.ParallelDegree = procLimit
	} else {
		p.ParallelDegree = runtime.NumCPU()
	}
	if p.ParallelDegree < 1 || p.ParallelDegree > p.Msh.K {
		p.ParallelDegree = 1
	}
}

// Solve declares the weak forms, assembles and solves. The stiffness and
// load forms are rebuilt per call - they are declarative and cheap.
func (p *Poisson) Solve() (err error) {
	var (
		a = StiffnessForm()
		L = LoadForm(p.Source)
	)
	if p.U, err = SolveSystem(p.FS, a, L, p.BC, p.Opts, p.ParallelDegree); err != nil {
		p.U = nil
		return
	}
	return
}

// ComputeErrors runs the collective error evaluation against the exact
// solution. Must follow a successful Solve.
func (p *Poisson) ComputeErrors(opts ErrorOptions) (em ErrorMetrics, err error) {
	if p.U == nil {
		err = fmt.Errorf("no solution: Solve must succeed before ComputeErrors")
		return
	}
	return ComputeErrors(p.U, p.G, p.Exact, opts)
}
