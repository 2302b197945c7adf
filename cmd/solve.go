/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/scicomp-go/poisson2d/InputParameters"
	"github.com/scicomp-go/poisson2d/model_problems/Poisson2D"
)

type SolveModel struct {
	ICFile    string
	Graph     bool
	WarpScale float64
	PlotFile  string
	NoErrors  bool
}

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the Poisson demonstration problem and report errors",
	Long: `Solve the Poisson demonstration problem and report errors,
optionally displaying the solution field in an interactive window`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		sm := &SolveModel{}
		if sm.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		sm.Graph, _ = cmd.Flags().GetBool("graph")
		sm.WarpScale, _ = cmd.Flags().GetFloat64("warp")
		sm.PlotFile, _ = cmd.Flags().GetString("plotFile")
		sm.NoErrors, _ = cmd.Flags().GetBool("noErrors")
		pp := processSolveInput(sm)
		if err = RunSolve(sm, pp); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func processSolveInput(sm *SolveModel) (pp *InputParameters.PoissonParameters) {
	pp = &InputParameters.PoissonParameters{}
	if len(sm.ICFile) == 0 {
		exampleFile := `
########################################
Title: "Reference Problem"
Nx: 8
Ny: 8
PolynomialOrder: 1
SolverType: direct # Can be "iterative"
########################################
`
		fmt.Printf("No input file given, using defaults. Example File:%s\n", exampleFile)
		if err := pp.Parse([]byte("Title: Reference Problem\n")); err != nil {
			panic(err)
		}
		return
	}
	var (
		data []byte
		err  error
	)
	if data, err = ioutil.ReadFile(sm.ICFile); err != nil {
		panic(err)
	}
	if err = pp.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	SolveCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Nx, Ny\n\t- SolverType")
	SolveCmd.Flags().BoolP("graph", "g", false, "display the solution field after solving")
	SolveCmd.Flags().Float64P("warp", "w", 0, "warp the plotted mesh by the solution, scaled by this factor")
	SolveCmd.Flags().StringP("plotFile", "o", "", "write the graph mesh and field to <name>.gobcfd instead of rendering")
	SolveCmd.Flags().Bool("noErrors", false, "skip the error computation stage")
}

func RunSolve(sm *SolveModel, pp *InputParameters.PoissonParameters) (err error) {
	pp.Print()
	var (
		strategy Poisson2D.SolverStrategy
		source   = Poisson2D.DefaultSource
	)
	if strategy, err = Poisson2D.NewSolverStrategy(pp.SolverType); err != nil {
		return
	}
	if pp.SourceConstant != 0 {
		c := pp.SourceConstant
		source = func(x, y float64) float64 { return c }
	}
	opts := Poisson2D.SolverOptions{
		Strategy:       strategy,
		Preconditioner: pp.Preconditioner,
		MaxIterations:  pp.MaxIterations,
		Tolerance:      pp.Tolerance,
	}
	var p *Poisson2D.Poisson
	if p, err = Poisson2D.NewPoisson(
		pp.XMin, pp.YMin, pp.XMax, pp.YMax, pp.Nx, pp.Ny, pp.PolynomialOrder,
		source, Poisson2D.DefaultExact,
		pp.ParallelDegree, opts, true); err != nil {
		return
	}
	if err = p.Solve(); err != nil {
		return
	}
	if !sm.NoErrors {
		if _, err = p.ComputeErrors(
			Poisson2D.DefaultErrorOptions(p.ParallelDegree)); err != nil {
			return
		}
	}
	if sm.Graph || len(sm.PlotFile) != 0 {
		pm := Poisson2D.PlotMeta{
			WarpScale: sm.WarpScale,
			FileBase:  sm.PlotFile,
		}
		err = p.PlotSolution(pm)
	}
	return
}
