// Package main provides the ndarray command line: version information, a
// matrix multiplication benchmark and a short demo of the array API.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"k8s.io/klog/v2"
)

const version = "v0.1.0-dev"

var (
	flagSize    = flag.Int("size", 256, "Matrix extent used by bench: products are size x size.")
	flagBatch   = flag.Int("batch", 1, "Number of matrices multiplied per bench iteration.")
	flagIters   = flag.Int("iters", 20, "Number of bench iterations.")
	flagWorkers = flag.Int("workers", 1, "Goroutines used by matrix multiplication; 0 means one per CPU.")
	flagScalar  = flag.Bool("scalar", false, "Disable the batch layer and run scalar kernels only.")
	flagSeed    = flag.Uint64("seed", 42, "Seed for the random inputs.")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(14)
	valueStyle = lipgloss.NewStyle().Bold(true)
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, titleStyle.Render("ndarray "+version))
	fmt.Fprintln(out, "\nUsage: ndarray [flags] <command>")
	fmt.Fprintln(out, "\nCommands:")
	fmt.Fprintln(out, "  version    Show version")
	fmt.Fprintln(out, "  bench      Benchmark batched matrix multiplication")
	fmt.Fprintln(out, "  demo       Walk through views, broadcasting and reductions")
	fmt.Fprintln(out, "\nFlags:")
	flag.PrintDefaults()
}

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()
	defer klog.Flush()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch cmd := flag.Arg(0); cmd {
	case "version":
		fmt.Printf("ndarray %s\n", version)
	case "bench":
		err = runBench(benchOptions{
			Size:    *flagSize,
			Batch:   *flagBatch,
			Iters:   *flagIters,
			Workers: *flagWorkers,
			Scalar:  *flagScalar,
			Seed:    *flagSeed,
		})
	case "demo":
		err = runDemo(os.Stdout)
	default:
		klog.Errorf("unknown command %q", cmd)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		klog.Errorf("%s failed: %+v", flag.Arg(0), err)
		klog.Flush()
		os.Exit(1)
	}
}

// field renders one "label value" line of a report.
func field(label string, value any) string {
	return labelStyle.Render(label) + valueStyle.Render(fmt.Sprint(value))
}
