// Command gridpatrol reads a patrol board and prints the number of cells the
// guard visits and the number of single-obstacle placements that trap it.
//
//	gridpatrol [-config run.yaml] [-workers n] [-v] [board.txt|-]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/gridpatrol/config"
	"github.com/katalvlaran/gridpatrol/grid"
	"github.com/katalvlaran/gridpatrol/obstruction"
	"github.com/katalvlaran/gridpatrol/patrol"
)

const usage = "usage: gridpatrol [-config run.yaml] [-workers n] [-v] [board.txt|-]"

func main() {
	logger := log.New(os.Stderr, "[gridpatrol] ", log.LstdFlags|log.Lmicroseconds)
	if err := run(os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		logger.Fatalf("%v", err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	fs := flag.NewFlagSet("gridpatrol", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfgPath := fs.String("config", "", "YAML run settings (move_cap, cycle_rule, workers)")
	workers := fs.Int("workers", 0, "override the configured obstruction worker count")
	verbose := fs.Bool("v", false, "log progress and the looping placements")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("expected at most one board file, got %d", fs.NArg())
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	layout, err := readLayout(fs.Arg(0), stdin)
	if err != nil {
		return err
	}
	if *verbose {
		logger.Printf("board %dx%d, %d obstacles, guard %v facing %v",
			layout.Grid.Width, layout.Grid.Height, layout.Grid.ObstacleCount(), layout.Start, layout.Facing)
		logger.Printf("config: move_cap=%d cycle_rule=%s workers=%d", cfg.MoveCap, cfg.CycleRule, cfg.Workers)
	}

	start := patrol.State{Pos: layout.Start, Dir: layout.Facing}
	report, err := obstruction.Search(layout.Grid, start, cfg.SearchOptions()...)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if report.Anomalous() {
		logger.Printf("warning: baseline walk %v after %d moves instead of leaving the board; counts are unreliable",
			report.Baseline.Outcome, report.Baseline.Moves)
	}
	if report.CapExceeded > 0 {
		logger.Printf("warning: %d placements hit the move cap without a repeated state", report.CapExceeded)
	}
	if *verbose {
		logger.Printf("trials: %d evaluated, %d excluded, %d looped", report.Candidates, report.Excluded, report.Loops)
		for _, p := range report.LoopPositions {
			logger.Printf("loop at %v", p)
		}
	}

	fmt.Fprintf(stdout, "visited: %d\n", report.Visited())
	fmt.Fprintf(stdout, "obstructions: %d\n", report.Loops)
	return nil
}

// readLayout parses the board from path, or from stdin when path is "" or "-".
func readLayout(path string, stdin io.Reader) (*grid.Layout, error) {
	src, name := stdin, "stdin"
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open board: %w", err)
		}
		defer f.Close()
		src, name = f, path
	}
	layout, err := grid.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return layout, nil
}
