package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type PoissonParameters struct {
	Title           string  `yaml:"Title"`
	Nx              int     `yaml:"Nx"`
	Ny              int     `yaml:"Ny"`
	XMin            float64 `yaml:"XMin"`
	XMax            float64 `yaml:"XMax"`
	YMin            float64 `yaml:"YMin"`
	YMax            float64 `yaml:"YMax"`
	PolynomialOrder int     `yaml:"PolynomialOrder"`
	SourceConstant  float64 `yaml:"SourceConstant"` // constant f, 0 selects the reference -6
	SolverType      string  `yaml:"SolverType"`     // direct | iterative
	Preconditioner  string  `yaml:"Preconditioner"` // none
	MaxIterations   int     `yaml:"MaxIterations"`
	Tolerance       float64 `yaml:"Tolerance"`
	ParallelDegree  int     `yaml:"ParallelDegree"` // 0 uses all CPUs
}

func (pp *PoissonParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, pp); err != nil {
		return err
	}
	pp.applyDefaults()
	return nil
}

func (pp *PoissonParameters) applyDefaults() {
	if pp.Nx == 0 {
		pp.Nx = 8
	}
	if pp.Ny == 0 {
		pp.Ny = 8
	}
	if pp.XMax == 0 && pp.XMin == 0 {
		pp.XMax = 1
	}
	if pp.YMax == 0 && pp.YMin == 0 {
		pp.YMax = 1
	}
	if pp.PolynomialOrder == 0 {
		pp.PolynomialOrder = 1
	}
	if pp.SolverType == "" {
		pp.SolverType = "direct"
	}
	if pp.Preconditioner == "" {
		pp.Preconditioner = "none"
	}
}

func (pp *PoissonParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", pp.Title)
	fmt.Printf("[%d x %d]\t\t= Mesh Subdivisions\n", pp.Nx, pp.Ny)
	fmt.Printf("[%g,%g] x [%g,%g]\t= Domain\n", pp.XMin, pp.XMax, pp.YMin, pp.YMax)
	fmt.Printf("[%d]\t\t\t= Polynomial Order\n", pp.PolynomialOrder)
	fmt.Printf("[%s]\t\t= Solver Type\n", pp.SolverType)
	fmt.Printf("[%s]\t\t= Preconditioner\n", pp.Preconditioner)
	if pp.SolverType == "iterative" || pp.SolverType == "cg" {
		fmt.Printf("[%d]\t\t\t= Max Iterations\n", pp.MaxIterations)
		fmt.Printf("[%g]\t\t= Tolerance\n", pp.Tolerance)
	}
}
