package Poisson2D

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"github.com/scicomp-go/poisson2d/FE2D"
	"github.com/scicomp-go/poisson2d/utils"
)

// ErrorMetrics holds the globally reduced comparison against the exact
// solution. Derived per run, never persisted.
type ErrorMetrics struct {
	L2  float64 // sqrt of the domain integrated squared difference
	Max float64 // max |boundary function - solution| over the original DOFs
}

// ErrorOptions configures the evaluator. The reporting worker is an
// explicit designation rather than implicit global rank state; a negative
// value disables printing entirely (tests use that).
type ErrorOptions struct {
	ParallelDegree  int
	ReportingWorker int
	Output          io.Writer
}

func DefaultErrorOptions(NP int) ErrorOptions {
	return ErrorOptions{
		ParallelDegree:  NP,
		ReportingWorker: 0,
		Output:          os.Stdout,
	}
}

/*
	ComputeErrors compares the computed solution against the exact
	expression.

	The L2 comparison interpolates the exact solution into a space one
	degree higher than the solution's - comparing in the same space would
	alias the very approximation error being measured. Each worker
	integrates the squared difference over its cell bucket; the local
	contributions reduce by global sum, then sqrt.

	The max metric compares the boundary function's DOF values against the
	solution's over the ORIGINAL space, reduced by global max.

	Every worker participates in both reductions - the reductions are
	collective - and only the designated reporting worker prints.
*/
func ComputeErrors(u *FE2D.Function, g *FE2D.Function,
	exact func(x, y float64) float64, opts ErrorOptions) (em ErrorMetrics, err error) {
	var (
		fs  = u.FS
		NP  = opts.ParallelDegree
		out = opts.Output
	)
	if NP < 1 {
		NP = 1
	}
	if out == nil {
		out = os.Stdout
	}

	fsHi, err := FE2D.NewFunctionSpace(fs.Msh, FE2D.Lagrange, fs.P+1)
	if err != nil {
		return
	}
	exactHi := FE2D.NewFunction(fsHi).Interpolate(exact)

	var (
		nq     = fs.P + 2 // exact through degree 2*(P+1)+1, covers the squared difference
		x1, w1 = FE2D.GaussQuadrature1D(nq)
		detJ   = fs.Hx * fs.Hy / 4
		pmK    = fs.Msh.CellPartition(NP)
		pmD    = utils.NewPartitionMap(NP, fs.NumDofs())
		coll   = utils.NewCollective(NP)
		l2     = make([]float64, NP)
		mx     = make([]float64, NP)
		errs   = make([]error, NP)
		wg     = sync.WaitGroup{}
		uD, gD = u.Values.Data(), g.Values.Data()
	)
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			var (
				localSq  float64
				localMax float64
			)
			kMin, kMax := pmK.GetBucketRange(np)
			for k := kMin; k < kMax; k++ {
				for qj := 0; qj < nq; qj++ {
					for qi := 0; qi < nq; qi++ {
						r, s := x1[qi], x1[qj]
						diff := u.EvalInCell(k, r, s) - exactHi.EvalInCell(k, r, s)
						localSq += w1[qi] * w1[qj] * detJ * diff * diff
					}
				}
			}
			dMin, dMax := pmD.GetBucketRange(np)
			for d := dMin; d < dMax; d++ {
				if diff := math.Abs(gD[d] - uD[d]); diff > localMax {
					localMax = diff
				}
			}
			var rerr error
			if l2[np], rerr = coll.AllReduceSum(np, localSq); rerr != nil {
				errs[np] = rerr
				return
			}
			l2[np] = math.Sqrt(l2[np])
			if mx[np], rerr = coll.AllReduceMax(np, localMax); rerr != nil {
				errs[np] = rerr
				return
			}
			if np == opts.ReportingWorker {
				fmt.Fprintf(out, "Error_L2 : %.2e\n", l2[np])
				fmt.Fprintf(out, "Error_max : %.2e\n", mx[np])
			}
		}(np)
	}
	wg.Wait()
	for np := 0; np < NP; np++ {
		if errs[np] != nil {
			err = errs[np]
			return
		}
	}
	em = ErrorMetrics{L2: l2[0], Max: mx[0]}
	return
}
