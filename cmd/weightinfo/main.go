// Command weightinfo prints the IEC 61672-1 frequency weighting tables.
//
// Usage:
//
//	weightinfo [flags] [curve-name ...]
//
// Without arguments it prints the corrections of all curves at every
// nominal one-third-octave frequency.
//
// Examples:
//
//	weightinfo a
//	weightinfo -freq 1000 a c
//	weightinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-acoustics/standards/iec61672"
)

var registry = []struct {
	name  string
	curve iec61672.Curve
}{
	{"a", iec61672.CurveA},
	{"c", iec61672.CurveC},
	{"z", iec61672.CurveZ},
}

func main() {
	freq := flag.Float64("freq", 0, "print only the correction at this nominal frequency in Hz")
	list := flag.Bool("list", false, "list available curve names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: weightinfo [flags] [curve-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints IEC 61672-1 frequency weighting corrections.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints all curves at all nominal frequencies.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  weightinfo a c\n")
		fmt.Fprintf(os.Stderr, "  weightinfo -freq 1000 a\n")
		fmt.Fprintf(os.Stderr, "  weightinfo -list\n")
	}
	flag.Parse()

	if *list {
		for _, e := range registry {
			fmt.Println(e.name)
		}
		return
	}

	curves := resolveCurves(flag.Args())
	if len(curves) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching weighting curves\n")
		os.Exit(1)
	}

	if *freq != 0 {
		printSingle(curves, *freq)
		return
	}

	printTable(curves)
}

func resolveCurves(names []string) []iec61672.Curve {
	if len(names) == 0 {
		curves := make([]iec61672.Curve, len(registry))
		for i, e := range registry {
			curves[i] = e.curve
		}
		return curves
	}

	var curves []iec61672.Curve
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))

		found := false
		for _, e := range registry {
			if e.name == name {
				curves = append(curves, e.curve)
				found = true
				break
			}
		}

		if !found {
			fmt.Fprintf(os.Stderr, "warning: unknown curve %q (use -list to see available)\n", name)
		}
	}

	return curves
}

func printSingle(curves []iec61672.Curve, freq float64) {
	for _, curve := range curves {
		dB, err := iec61672.Weighting(curve, freq)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s(%g Hz) = %+.1f dB\n", curve, freq, dB)
	}
}

func printTable(curves []iec61672.Curve) {
	tables := make([][]float64, len(curves))
	for i, curve := range curves {
		table, err := iec61672.Corrections(curve)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		tables[i] = table
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "Freq [Hz]\t")
	for _, curve := range curves {
		fmt.Fprintf(tw, "%s [dB]\t", curve)
	}
	fmt.Fprintln(tw)

	for i, f := range iec61672.NominalFrequencies() {
		fmt.Fprintf(tw, "%g\t", f)
		for c := range curves {
			fmt.Fprintf(tw, "%+.1f\t", tables[c][i])
		}
		fmt.Fprintln(tw)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
