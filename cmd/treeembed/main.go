// Command treeembed embeds a k-ary tree into the Euclidean plane or the
// Poincaré disk by gradient descent and prints "<iteration> <energy>" every
// report interval.
//
// Usage:
//
//	treeembed [-config run.json] [-geometry euclidean|hyperbolic] [-n 21]
//	          [-branching 4] [-iterations N] [-report-every N] [-lr X]
//	          [-seed S] [-init-scale X] [-clip X]
//	          [-csv out.csv|-] [-db runs.sqlite [-nearest K]] [-plot]
//
// The preset selected by -geometry (or the file given by -config) supplies
// every value; flags override only what they set explicitly.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/treeembed/energy"
	"github.com/katalvlaran/treeembed/experiment"
	"github.com/katalvlaran/treeembed/plot"
	"github.com/katalvlaran/treeembed/store"
)

type flags struct {
	config      string
	geometry    string
	n           int
	branching   int
	iterations  int
	reportEvery int
	lr          float64
	seed        int64
	initScale   float64
	clip        float64

	csv     string
	db      string
	nearest int
	plot    bool
}

func parseFlags(fs *flag.FlagSet, args []string) (*flags, error) {
	f := &flags{}
	a := experiment.DefaultConfig()
	fs.StringVar(&f.config, "config", "", "JSON run configuration file")
	fs.StringVar(&f.geometry, "geometry", a.Geometry, "euclidean or hyperbolic")
	fs.IntVar(&f.n, "n", a.Points, "number of tree nodes")
	fs.IntVar(&f.branching, "branching", a.Branching, "children per internal node")
	fs.IntVar(&f.iterations, "iterations", a.Iterations, "descent steps (preset default)")
	fs.IntVar(&f.reportEvery, "report-every", a.ReportEvery, "report interval, 0 disables")
	fs.Float64Var(&f.lr, "lr", a.LearningRate, "learning rate (preset default)")
	fs.Int64Var(&f.seed, "seed", a.Seed, "initialization seed")
	fs.Float64Var(&f.initScale, "init-scale", a.InitScale, "initial coordinate scale")
	fs.Float64Var(&f.clip, "clip", a.ClipBound, "Riemannian step clip bound")
	fs.StringVar(&f.csv, "csv", "", "write final points as CSV to this file (- for stdout)")
	fs.StringVar(&f.db, "db", "", "archive the run in this SQLite database")
	fs.IntVar(&f.nearest, "nearest", 0, "with -db, print the K nodes nearest to the root")
	fs.BoolVar(&f.plot, "plot", false, "show the final layout in the terminal")

	return f, fs.Parse(args)
}

// resolve builds the run configuration: preset or file first, then every
// flag the user set explicitly.
func resolve(fs *flag.FlagSet, f *flags) (experiment.Config, error) {
	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	var (
		cfg experiment.Config
		err error
	)
	if f.config != "" {
		cfg, err = experiment.Load(f.config)
	} else {
		cfg, err = experiment.Preset(f.geometry)
	}
	if err != nil {
		return experiment.Config{}, err
	}

	if set["geometry"] {
		cfg.Geometry = f.geometry
	}
	if set["n"] {
		cfg.Points = f.n
	}
	if set["branching"] {
		cfg.Branching = f.branching
	}
	if set["iterations"] {
		cfg.Iterations = f.iterations
	}
	if set["report-every"] {
		cfg.ReportEvery = f.reportEvery
	}
	if set["lr"] {
		cfg.LearningRate = f.lr
	}
	if set["seed"] {
		cfg.Seed = f.seed
	}
	if set["init-scale"] {
		cfg.InitScale = f.initScale
	}
	if set["clip"] {
		cfg.ClipBound = f.clip
	}

	return cfg, cfg.Validate()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("treeembed: ")

	fs := flag.NewFlagSet("treeembed", flag.ExitOnError)
	f, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		log.Fatalf("flags: %v", err)
	}
	cfg, err := resolve(fs, f)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, cfg, f, os.Stdout); err != nil {
		stop()
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, cfg experiment.Config, f *flags, stdout io.Writer) error {
	out, err := experiment.Run(ctx, cfg, stdout)
	if err != nil {
		return err
	}
	log.Printf("%s: final energy %.6f after %d iterations", cfg.Geometry, out.Result.Energy, out.Result.Iterations)
	if cfg.Reference != 0 {
		log.Printf("reference %.4f, deviation %.4f", cfg.Reference, out.Deviation())
	}

	if f.csv != "" {
		if err = writeCSV(f.csv, out, stdout); err != nil {
			return err
		}
	}
	if f.db != "" {
		if err = archive(ctx, f.db, f.nearest, out, stdout); err != nil {
			return err
		}
	}
	if f.plot {
		return show(out)
	}

	return nil
}

func writeCSV(path string, out *experiment.Outcome, stdout io.Writer) error {
	if path == "-" {
		return plot.WriteCSV(stdout, out.Result.Points, out.Parents())
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: %w", err)
	}
	if err = plot.WriteCSV(file, out.Result.Points, out.Parents()); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

func archive(ctx context.Context, dsn string, nearest int, out *experiment.Outcome, stdout io.Writer) error {
	db, err := store.Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.SaveRun(ctx, out)
	if err != nil {
		return err
	}
	log.Printf("archived as run %d in %s", id, dsn)

	if nearest <= 0 {
		return nil
	}
	nb, err := db.Nearest(ctx, id, 0, nearest)
	if err != nil {
		return err
	}
	for _, n := range nb {
		fmt.Fprintf(stdout, "nearest %d %.6f\n", n.Node, n.Distance)
	}

	return nil
}

func show(out *experiment.Outcome) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	if err = screen.Init(); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	defer screen.Fini()

	opts := []plot.Option{
		plot.WithTitle(fmt.Sprintf("%s  n=%d  E=%.4f  (any key to exit)",
			out.Config.Geometry, out.Tree.Len(), out.Result.Energy)),
	}
	if g, _ := out.Config.GeometryKind(); g == energy.GeometryHyperbolic {
		opts = append(opts, plot.WithDisk())
	}

	return plot.Show(screen, out.Result.Points, out.Parents(), opts...)
}
