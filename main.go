package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/crillab/knapilp/knapsack"
	"github.com/crillab/knapilp/pbsolver"
	"github.com/crillab/knapilp/report"
)

// options are the settings of a run, as given on the command line.
type options struct {
	in      string // instance, in the text format
	out     string // where the selection is written
	pallets string // pallets CSV file, optional
	truck   string // truck CSV file, optional
	verbose bool
	report  string // JSON report path, optional
}

func main() {
	var opts options
	flag.StringVar(&opts.in, "in", "input.txt", "instance file: capacity, then one \"id profit weight\" line per item")
	flag.StringVar(&opts.out, "out", "output.txt", "output file, overwritten with the selected items")
	flag.StringVar(&opts.pallets, "pallets", "", "pallets CSV file (id,weight,profit); with -truck, the dataset is written to -in and solved")
	flag.StringVar(&opts.truck, "truck", "", "truck CSV file (capacity,pallets)")
	flag.BoolVar(&opts.verbose, "verbose", false, "sets verbose mode on")
	flag.StringVar(&opts.report, "report", "", "writes a JSON report of the run to this file")
	flag.Parse()
	if len(flag.Args()) != 0 {
		fmt.Fprintf(os.Stderr, "Syntax : %s [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run goes through the whole pipeline: parse, solve, write.
// Verbose information is written to w.
func run(opts options, w io.Writer) error {
	if (opts.pallets == "") != (opts.truck == "") {
		return fmt.Errorf("-pallets and -truck must be given together")
	}
	if opts.pallets != "" {
		if err := prepare(opts); err != nil {
			return fmt.Errorf("could not prepare instance: %v", err)
		}
	}
	if opts.verbose {
		fmt.Fprintf(w, "c solving %s\n", opts.in)
	}
	inst, err := knapsack.ParseFile(opts.in)
	if err != nil {
		return fmt.Errorf("could not parse problem: %v", err)
	}
	s := pbsolver.New()
	s.Verbose = opts.verbose
	start := time.Now()
	res, err := knapsack.Solve(inst, s)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("could not solve problem: %v", err)
	}
	if err := knapsack.WriteFile(opts.out, res.Items); err != nil {
		return fmt.Errorf("could not write solution: %v", err)
	}
	if !opts.verbose && opts.report == "" {
		return nil
	}
	rep := report.New(opts.in, inst, res, elapsed)
	rep.System = report.System()
	if bound, err := knapsack.Formulate(inst).Relaxation(); err == nil {
		rep.SetLPBound(bound)
	} else if opts.verbose {
		fmt.Fprintf(w, "c could not compute lp bound: %v\n", err)
	}
	if opts.verbose {
		rep.Comment(w)
	}
	if opts.report != "" {
		if err := rep.WriteJSON(opts.report); err != nil {
			return fmt.Errorf("could not write report: %v", err)
		}
	}
	return nil
}

// prepare loads the CSV dataset and writes it as the instance to solve.
func prepare(opts options) error {
	inst, err := knapsack.ParseCSVFiles(opts.pallets, opts.truck)
	if err != nil {
		return err
	}
	return knapsack.WriteInstanceFile(opts.in, inst)
}
