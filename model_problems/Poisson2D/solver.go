package Poisson2D

import (
	"math"
	"strings"

	"github.com/vladimir-ch/iterative"

	"github.com/scicomp-go/poisson2d/FE2D"
	"github.com/scicomp-go/poisson2d/types"
	"github.com/scicomp-go/poisson2d/utils"
)

type SolverStrategy uint8

const (
	Direct SolverStrategy = iota // LU factorize and back-substitute
	Iterative                    // Conjugate gradients, no preconditioner
)

var solverNameMap = map[string]SolverStrategy{
	"direct":    Direct,
	"lu":        Direct,
	"iterative": Iterative,
	"cg":        Iterative,
}

func NewSolverStrategy(label string) (s SolverStrategy, err error) {
	var ok bool
	if s, ok = solverNameMap[strings.ToLower(label)]; !ok {
		err = types.ErrInvalidConfiguration("unknown solver strategy %q", label)
	}
	return
}

func (s SolverStrategy) Print() string {
	switch s {
	case Iterative:
		return "Iterative (CG)"
	default:
		return "Direct (LU)"
	}
}

type SolverOptions struct {
	Strategy       SolverStrategy
	Preconditioner string // only "none" is supported
	MaxIterations  int    // iterative only, 0 means library default
	Tolerance      float64
}

func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Strategy:       Direct,
		Preconditioner: "none",
	}
}

/*
	SolveSystem assembles the weak forms plus boundary constraints and
	solves the resulting sparse system, returning the solution as a
	Function over the trial space. A singular or inconsistent system is a
	LinearSolveError - fatal, never retried.
*/
func SolveSystem(fs *FE2D.FunctionSpace, a, L Form, bc *FE2D.DirichletBC,
	opts SolverOptions, NP int) (u *FE2D.Function, err error) {
	if opts.Preconditioner != "" && opts.Preconditioner != "none" {
		err = types.ErrInvalidConfiguration("unsupported preconditioner %q", opts.Preconditioner)
		return
	}
	var (
		K utils.CSR
		F []float64
	)
	if K, F, err = AssembleSystem(fs, a, L, bc, NP); err != nil {
		return
	}
	var x []float64
	switch opts.Strategy {
	case Direct:
		var X utils.Vector
		if X, err = K.Dense().LUSolve(utils.NewVector(len(F), F)); err != nil {
			err = types.ErrLinearSolve(err, "direct factorization of %d DOF system failed", len(F))
			return
		}
		x = X.Data()
	case Iterative:
		ops := iterative.MatrixOps{
			MatVec: func(dst, src []float64) { K.MulRawVec(dst, src) },
		}
		settings := iterative.Settings{}
		if opts.Tolerance > 0 {
			settings.Tolerance = opts.Tolerance
		}
		if opts.MaxIterations > 0 {
			settings.MaxIterations = opts.MaxIterations
		}
		res, cgErr := iterative.LinearSolve(ops, F, &iterative.CG{}, settings)
		if cgErr != nil {
			err = types.ErrLinearSolve(cgErr, "CG did not converge on %d DOF system", len(F))
			return
		}
		x = res.X
	default:
		err = types.ErrInvalidConfiguration("unknown solver strategy %d", opts.Strategy)
		return
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			err = types.ErrLinearSolve(nil, "non-finite entries in solution, system is singular or inconsistent")
			return
		}
	}
	u = FE2D.NewFunction(fs)
	copy(u.Values.Data(), x)
	return
}
