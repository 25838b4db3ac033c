// Command ffinfo tabulates semileptonic D -> P l nu form factors and
// decay observables over the physical q2 range.
//
// Usage:
//
//	ffinfo [flags] [process ...]
//
// Without arguments it prints all supported processes.
//
// Examples:
//
//	ffinfo D->K
//	ffinfo -l e -points 20 D->pi
//	ffinfo -ff KKMO2009 -diag D->pi
//	ffinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-hep/decay"
	"github.com/cwbudde/algo-hep/formfactor"
	"github.com/cwbudde/algo-hep/formfactor/dtopi"
	"github.com/cwbudde/algo-hep/params"
)

type processEntry struct {
	name    string
	options params.Options
	ff      formfactor.PToPProcess
}

var registry = []processEntry{
	{"D->pi", params.Options{"Q": "d", "q": "u", "I": "1"}, formfactor.DToPi},
	{"D->pi0", params.Options{"Q": "d", "q": "d", "I": "1"}, formfactor.DToPi},
	{"D->K", params.Options{"Q": "s", "q": "d", "I": "1/2"}, formfactor.DToK},
	{"D_s->K", params.Options{"Q": "d", "q": "s", "I": "1/2"}, formfactor.DsToK},
}

func main() {
	lepton := flag.String("l", "mu", "charged-lepton flavor (e, mu, tau)")
	family := flag.String("ff", "BSZ2015", "form-factor family (BSZ2015, KKMO2009)")
	points := flag.Int("points", 10, "number of q2 grid points")
	diag := flag.Bool("diag", false, "print the sum-rule diagnostics (KKMO2009 only)")
	list := flag.Bool("list", false, "list supported processes")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ffinfo [flags] [process ...]\n\n")
		fmt.Fprintf(os.Stderr, "Tabulates D -> P l nu form factors and observables.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints all supported processes.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ffinfo D->K\n")
		fmt.Fprintf(os.Stderr, "  ffinfo -l e -points 20 D->pi\n")
		fmt.Fprintf(os.Stderr, "  ffinfo -ff KKMO2009 -diag D->pi\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching processes\n")
		os.Exit(1)
	}

	store := params.NewStore()

	if *diag {
		if err := printDiagnostics(store); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
	}

	for _, e := range entries {
		if err := printProcess(store, e, *lepton, *family, *points); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			os.Exit(1)
		}
	}
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []processEntry {
	byName := make(map[string]processEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []processEntry
	for _, name := range names {
		name = strings.TrimSpace(name)
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown process %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printDiagnostics(store *params.Store) error {
	ff, err := dtopi.New(store, nil)
	if err != nil {
		return err
	}

	diags, err := ff.Diagnostics()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Diagnostic\tValue\n")
	fmt.Fprintf(tw, "----------\t-----\n")
	for _, d := range diags {
		fmt.Fprintf(tw, "%s\t%.5f\n", d.Description, d.Value)
	}
	return tw.Flush()
}

func printProcess(store *params.Store, e processEntry, lepton, family string, points int) error {
	options := params.Options{"l": lepton, "form-factors": family}
	for k, v := range e.options {
		options[k] = v
	}

	obs, err := decay.New(store, options)
	if err != nil {
		return err
	}

	var ff formfactor.PToP
	if family == "KKMO2009" {
		ff, err = dtopi.New(store, options)
	} else {
		ff, err = formfactor.NewBSZPToP(store, e.ff)
	}
	if err != nil {
		return err
	}

	br, err := obs.IntegratedBranchingRatio(obs.Q2Min(), obs.Q2Max())
	if err != nil {
		return err
	}

	fmt.Printf("%s (l = %s, %s): BR = %.4e\n", e.name, lepton, family, br)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "q2 [GeV^2]\tf_+\tf_0\tf_T\tdBR/dq2\tA_FB\tF_H\n")
	fmt.Fprintf(tw, "----------\t---\t---\t---\t-------\t----\t---\n")

	q2Min := obs.Q2Min()
	q2Max := obs.Q2Max()
	for i := 0; i < points; i++ {
		q2 := q2Min + (q2Max-q2Min)*(float64(i)+0.5)/float64(points)

		fp, err := ff.FPlus(q2)
		if err != nil {
			return err
		}
		f0, err := ff.FZero(q2)
		if err != nil {
			return err
		}
		fT, err := ff.FT(q2)
		if err != nil {
			return err
		}
		dbr, err := obs.DifferentialBranchingRatio(q2)
		if err != nil {
			return err
		}
		afb, err := obs.DifferentialAFB(q2)
		if err != nil {
			return err
		}
		fh, err := obs.DifferentialFlatTerm(q2)
		if err != nil {
			return err
		}

		fmt.Fprintf(tw, "%.4f\t%.4f\t%.4f\t%.4f\t%.4e\t%.4e\t%.4e\n", q2, fp, f0, fT, dbr, afb, fh)
	}
	return tw.Flush()
}
