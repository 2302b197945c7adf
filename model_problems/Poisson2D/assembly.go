package Poisson2D

import (
	"sort"
	"sync"

	"github.com/scicomp-go/poisson2d/FE2D"
	"github.com/scicomp-go/poisson2d/types"
	"github.com/scicomp-go/poisson2d/utils"
)

// quadPoint2D carries one tensor Gauss point with the combined weight and
// the pre-evaluated basis values/physical gradients of the trial space.
type quadPoint2D struct {
	r, s, w float64
	samples []basisSample
}

// cellQuadrature builds the tensor product rule on the reference square
// with the basis tables baked in. nq points per axis integrate polynomials
// through degree 2*nq-1 exactly, so nq = P+1 is exact for the stiffness
// integrand of degree P elements.
func cellQuadrature(fs *FE2D.FunctionSpace, nq int) (qp []quadPoint2D) {
	var (
		x1, w1 = FE2D.GaussQuadrature1D(nq)
		rx     = 2 / fs.Hx // reference to physical gradient scaling
		sy     = 2 / fs.Hy
		detJ   = fs.Hx * fs.Hy / 4
	)
	qp = make([]quadPoint2D, 0, nq*nq)
	for qj := 0; qj < nq; qj++ {
		for qi := 0; qi < nq; qi++ {
			r, s := x1[qi], x1[qj]
			phi := fs.El.BasisAt(r, s)
			dr, ds := fs.El.BasisGradAt(r, s)
			samples := make([]basisSample, fs.El.Np)
			for n := range samples {
				samples[n] = basisSample{
					v:  phi[n],
					gx: dr[n] * rx,
					gy: ds[n] * sy,
				}
			}
			qp = append(qp, quadPoint2D{
				r: r, s: s,
				w:       w1[qi] * w1[qj] * detJ,
				samples: samples,
			})
		}
	}
	return
}

/*
	AssembleSystem turns the declared forms into the discrete system K*u=F.

	SPMD: the cell range is partitioned across NP workers, each assembling
	its cells into a private sparse accumulator, merged after the join. The
	merge order is fixed (worker 0 first), so assembly is deterministic for
	a given partitioning.

	Dirichlet conditions are eliminated symmetrically: constrained columns
	fold into the right hand side, constrained rows/columns drop, and the
	diagonal gets a unit entry with the prescribed value on the RHS. The
	eliminated system stays SPD, which both solve strategies rely on.
*/
func AssembleSystem(fs *FE2D.FunctionSpace, a, L Form, bc *FE2D.DirichletBC,
	NP int) (K utils.CSR, F []float64, err error) {
	if !a.integrand.usesTrial() || !a.integrand.usesTest() {
		err = types.ErrInvalidConfiguration("bilinear form must reference both trial and test functions")
		return
	}
	if L.integrand.usesTrial() {
		err = types.ErrInvalidConfiguration("linear form must not reference the trial function")
		return
	}
	var (
		nDofs = fs.NumDofs()
		Np    = fs.El.Np
		pm    = fs.Msh.CellPartition(NP)
		qp    = cellQuadrature(fs, fs.P+1)
		wK    = make([]utils.DOK, NP)
		wF    = make([][]float64, NP)
		wg    = sync.WaitGroup{}
	)
	for np := 0; np < NP; np++ {
		wK[np] = utils.NewDOK(nDofs, nDofs)
		wF[np] = make([]float64, nDofs)
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			var (
				kMin, kMax = pm.GetBucketRange(np)
				Ke         = make([]float64, Np*Np)
				Fe         = make([]float64, Np)
			)
			for k := kMin; k < kMax; k++ {
				for i := range Ke {
					Ke[i] = 0
				}
				for i := range Fe {
					Fe[i] = 0
				}
				x0, y0 := fs.CellOrigin(k)
				for _, q := range qp {
					x := x0 + (q.r+1)/2*fs.Hx
					y := y0 + (q.s+1)/2*fs.Hy
					for i := 0; i < Np; i++ {
						test := &q.samples[i]
						Fe[i] += q.w * L.integrand.eval(x, y, nil, test).s
						for j := 0; j < Np; j++ {
							trial := &q.samples[j]
							Ke[i*Np+j] += q.w * a.integrand.eval(x, y, trial, test).s
						}
					}
				}
				dofs := fs.CellDofs(k)
				for i, di := range dofs {
					wF[np][di] += Fe[i]
					for j, dj := range dofs {
						if v := Ke[i*Np+j]; v != 0 {
							wK[np].Accumulate(di, dj, v)
						}
					}
				}
			}
		}(np)
	}
	wg.Wait()

	// Merge worker shards in slot order
	global := utils.NewDOK(nDofs, nDofs)
	F = make([]float64, nDofs)
	for np := 0; np < NP; np++ {
		wK[np].DoNonZero(func(i, j int, v float64) {
			global.Accumulate(i, j, v)
		})
		for i, v := range wF[np] {
			F[i] += v
		}
	}

	K = applyDirichlet(global, F, bc)
	return
}

type matEntry struct {
	i, j int
	v    float64
}

func applyDirichlet(global utils.DOK, F []float64, bc *FE2D.DirichletBC) (K utils.CSR) {
	var (
		nDofs, _ = global.Dims()
		mask     = bc.Mask()
		g        = bc.PrescribedValues()
		reduced  = utils.NewDOK(nDofs, nDofs)
		ent      = make([]matEntry, 0, global.NNZ())
	)
	// DOK iteration is map ordered; the boundary fold sums into F so it must
	// walk the entries in a fixed order to keep reruns bitwise identical
	global.DoNonZero(func(i, j int, v float64) {
		ent = append(ent, matEntry{i, j, v})
	})
	sort.Slice(ent, func(a, b int) bool {
		if ent[a].i != ent[b].i {
			return ent[a].i < ent[b].i
		}
		return ent[a].j < ent[b].j
	})
	for _, e := range ent {
		switch {
		case !mask[e.i] && !mask[e.j]:
			reduced.Set(e.i, e.j, e.v)
		case !mask[e.i] && mask[e.j]:
			F[e.i] -= e.v * g[e.j] // lift the known boundary values
		}
	}
	for _, d := range bc.Dofs {
		reduced.Set(d, d, 1)
		F[d] = g[d]
	}
	K = reduced.ToCSR()
	return
}
