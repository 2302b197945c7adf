package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
)

/*
	Reads a CSV of mesh refinement runs and reports the observed
	convergence order between successive refinements. Expected columns:

		Title, Nx, Order, L2, Max

	Runs sharing a Title+Order form one study, ordered by Nx.
*/

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	studies := readCSV(csvFile)
	for _, cs := range studies {
		fmt.Printf("Title = %s, Element Order = %d\n", cs.title, cs.order)
		for i := range cs.nx {
			fmt.Printf("%d, %v, %v", cs.nx[i], cs.l2[i], cs.max[i])
			if i > 0 {
				fmt.Printf(", observed order = %5.2f", cs.ObservedOrder(i))
			}
			fmt.Printf("\n")
		}
	}
}

type ConvergenceStudy struct {
	title   string
	order   int
	nx      []int
	l2, max []float64
}

func NewConvergenceStudy(title string, order int) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
		order: order,
	}
}

func (cs *ConvergenceStudy) Add(nx int, l2, max float64) {
	cs.nx = append(cs.nx, nx)
	cs.l2 = append(cs.l2, l2)
	cs.max = append(cs.max, max)
}

// ObservedOrder is the L2 convergence rate between refinement i-1 and i,
// p = log(e1/e2) / log(h1/h2) with h = 1/Nx
func (cs *ConvergenceStudy) ObservedOrder(i int) float64 {
	var (
		h1, h2 = 1. / float64(cs.nx[i-1]), 1. / float64(cs.nx[i])
		e1, e2 = cs.l2[i-1], cs.l2[i]
	)
	return math.Log(e1/e2) / math.Log(h1/h2)
}

func readCSV(csvFile string) (studies map[string]*ConvergenceStudy) {
	var (
		records [][]string
		err     error
		f       *os.File
		ok      bool
		cs      *ConvergenceStudy
		l2, max float64
	)
	studies = make(map[string]*ConvergenceStudy)
	if f, err = os.Open(csvFile); err != nil {
		panic(err)
	}
	r := csv.NewReader(bufio.NewReader(f))
	if records, err = r.ReadAll(); err != nil {
		panic(err)
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		title, nxtxt, ntxt := rec[0], rec[1], rec[2]
		n, _ := strconv.Atoi(ntxt)
		nx, _ := strconv.Atoi(nxtxt)
		combTitle := title + ntxt
		if cs, ok = studies[combTitle]; !ok {
			cs = NewConvergenceStudy(title, n)
			studies[combTitle] = cs
		}
		_, _ = fmt.Sscanf(rec[3], "%f", &l2)
		_, _ = fmt.Sscanf(rec[4], "%f", &max)
		cs.Add(nx, l2, max)
	}
	return
}
