package Poisson2D

import "fmt"

/*
	Symbolic weak form layer. Forms are declared over trial/test function
	placeholders and evaluated only when the assembler walks the tree at a
	quadrature point. The supported node set is exactly what second order
	scalar problems need:

		a(u,v) = Integral(Dot(Grad(u), Grad(v)))
		L(v)   = Integral(Mul(Coeff(f), TestFunction()))

	Coefficients may be constant or spatially varying.
*/

type exprKind uint8

const (
	trialVar exprKind = iota
	testVar
	gradOp
	dotOp
	mulOp
	coeffOp
)

type Expr struct {
	kind  exprKind
	a, b  *Expr
	coeff func(x, y float64) float64
}

func TrialFunction() *Expr { return &Expr{kind: trialVar} }
func TestFunction() *Expr  { return &Expr{kind: testVar} }

func Grad(e *Expr) *Expr { return &Expr{kind: gradOp, a: e} }

func Dot(a, b *Expr) *Expr { return &Expr{kind: dotOp, a: a, b: b} }

func Mul(a, b *Expr) *Expr { return &Expr{kind: mulOp, a: a, b: b} }

func Coeff(f func(x, y float64) float64) *Expr {
	return &Expr{kind: coeffOp, coeff: f}
}

func Constant(val float64) *Expr {
	return Coeff(func(x, y float64) float64 { return val })
}

// Form is a declared integral over the domain. No numeric work happens
// until the assembler consumes it.
type Form struct {
	integrand *Expr
}

func Integral(e *Expr) Form { return Form{integrand: e} }

// StiffnessForm declares the Poisson bilinear form grad(u).grad(v).
func StiffnessForm() Form {
	return Integral(Dot(Grad(TrialFunction()), Grad(TestFunction())))
}

// LoadForm declares the linear form f*v for a constant or spatially
// varying source.
func LoadForm(f func(x, y float64) float64) Form {
	return Integral(Mul(Coeff(f), TestFunction()))
}

// basisSample holds one basis function evaluated at a quadrature point,
// with physical space gradients.
type basisSample struct {
	v, gx, gy float64
}

// value is the tagged result of evaluating a subtree: scalar or 2-vector.
type value struct {
	s      float64
	vx, vy float64
	isVec  bool
}

// eval walks the tree at physical point (x,y) with the trial and test
// placeholders bound to basis samples. trial is nil inside linear forms.
func (e *Expr) eval(x, y float64, trial, test *basisSample) value {
	switch e.kind {
	case trialVar:
		if trial == nil {
			panic("trial function bound inside a linear form")
		}
		return value{s: trial.v}
	case testVar:
		return value{s: test.v}
	case gradOp:
		switch e.a.kind {
		case trialVar:
			if trial == nil {
				panic("trial function bound inside a linear form")
			}
			return value{vx: trial.gx, vy: trial.gy, isVec: true}
		case testVar:
			return value{vx: test.gx, vy: test.gy, isVec: true}
		}
		panic("gradient is only supported on trial/test placeholders")
	case dotOp:
		va := e.a.eval(x, y, trial, test)
		vb := e.b.eval(x, y, trial, test)
		if !va.isVec || !vb.isVec {
			panic("dot product of non-vector operands")
		}
		return value{s: va.vx*vb.vx + va.vy*vb.vy}
	case mulOp:
		va := e.a.eval(x, y, trial, test)
		vb := e.b.eval(x, y, trial, test)
		if va.isVec || vb.isVec {
			panic("scalar product of vector operands")
		}
		return value{s: va.s * vb.s}
	case coeffOp:
		return value{s: e.coeff(x, y)}
	}
	panic(fmt.Sprintf("unknown expression node %d", e.kind))
}

func (e *Expr) usesTrial() bool {
	if e == nil {
		return false
	}
	if e.kind == trialVar {
		return true
	}
	return e.a.usesTrial() || e.b.usesTrial()
}

func (e *Expr) usesTest() bool {
	if e == nil {
		return false
	}
	if e.kind == testVar {
		return true
	}
	return e.a.usesTest() || e.b.usesTest()
}
