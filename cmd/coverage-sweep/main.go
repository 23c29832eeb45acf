// Command coverage-sweep measures how seeding coverage translates into the
// initial alive fraction and the population left after a number of steps.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gamecubate/cellular-landscaper/pkg/automaton"
	"github.com/gamecubate/cellular-landscaper/pkg/core"

	"golang.org/x/sync/errgroup"
)

type trial struct {
	coverage float64
	seed     int64
}

type trialResult struct {
	seeded   float64
	survived float64
}

type summary struct {
	coverage     float64
	trials       int
	meanSeeded   float64
	minSeeded    float64
	maxSeeded    float64
	meanSurvived float64
}

func main() {
	size := flag.Int("size", 100, "grid width and height")
	padding := flag.Int("padding", 0, "border left unseeded")
	trials := flag.Int("trials", 20, "trials per coverage value")
	steps := flag.Int("steps", 50, "generations to run after seeding")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel trial evaluations")
	seed := flag.Int64("seed", 1337, "base seed; trial i uses seed+i")
	rule := flag.String("rule", "B3/S23", "life-like rule in B/S notation")
	list := flag.String("coverages", "0.05,0.15,0.25,0.35,0.5,0.65,0.8,0.95", "comma-separated coverage values")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("coverage-sweep: ")

	coverages, err := parseCoverages(*list)
	if err != nil {
		log.Fatal(err)
	}
	ll, err := automaton.ParseLifeLike(*rule)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Sweeping %d coverages x %d trials on %dx%d (%d workers, %d steps, rule %s)\n",
		len(coverages), *trials, *size, *size, *workers, *steps, ll)

	start := time.Now()
	sums, err := sweep(context.Background(), coverages, sweepOptions{
		size:    *size,
		padding: *padding,
		trials:  *trials,
		steps:   *steps,
		workers: *workers,
		seed:    *seed,
		rule:    ll.Rule(),
	})
	if err != nil {
		log.Fatal(err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "coverage\tseeded mean\tseeded min\tseeded max\talive after")
	for _, s := range sums {
		fmt.Fprintf(tw, "%.2f\t%.4f\t%.4f\t%.4f\t%.4f\n", s.coverage, s.meanSeeded, s.minSeeded, s.maxSeeded, s.meanSurvived)
	}
	if err := tw.Flush(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nelapsed %s\n", time.Since(start).Round(time.Millisecond))
}

func parseCoverages(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("coverage %q: %w", field, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no coverage values in %q", s)
	}
	return out, nil
}

type sweepOptions struct {
	size    int
	padding int
	trials  int
	steps   int
	workers int
	seed    int64
	rule    automaton.Rule
}

// sweep runs every (coverage, trial) pair on its own automaton and folds the
// results per coverage in input order.
func sweep(ctx context.Context, coverages []float64, opts sweepOptions) ([]summary, error) {
	if opts.trials <= 0 {
		return nil, fmt.Errorf("trials must be positive, got %d", opts.trials)
	}
	results := make([][]trialResult, len(coverages))
	for i := range results {
		results[i] = make([]trialResult, opts.trials)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.workers, 1))
	for ci, coverage := range coverages {
		for ti := 0; ti < opts.trials; ti++ {
			ci, ti := ci, ti
			tr := trial{coverage: coverage, seed: opts.seed + int64(ti)}
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := runTrial(tr, opts)
				if err != nil {
					return err
				}
				results[ci][ti] = res
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sums := make([]summary, len(coverages))
	for ci, coverage := range coverages {
		s := summary{coverage: coverage, trials: opts.trials, minSeeded: 1}
		for _, r := range results[ci] {
			s.meanSeeded += r.seeded
			s.meanSurvived += r.survived
			s.minSeeded = min(s.minSeeded, r.seeded)
			s.maxSeeded = max(s.maxSeeded, r.seeded)
		}
		s.meanSeeded /= float64(opts.trials)
		s.meanSurvived /= float64(opts.trials)
		sums[ci] = s
	}
	return sums, nil
}

func runTrial(tr trial, opts sweepOptions) (trialResult, error) {
	rng := core.NewRNG(tr.seed)
	ca, err := automaton.New(opts.size, opts.size, opts.rule, rng.Source())
	if err != nil {
		return trialResult{}, err
	}
	if err := ca.Seed(tr.coverage, opts.padding); err != nil {
		return trialResult{}, fmt.Errorf("seed %d: %w", tr.seed, err)
	}
	seedable := max(opts.size-2*opts.padding, 0)
	res := trialResult{}
	if seedable > 0 {
		res.seeded = float64(ca.Grid().Population()) / float64(seedable*seedable)
	}
	for i := 0; i < opts.steps; i++ {
		ca.Advance()
	}
	res.survived = float64(ca.Grid().Population()) / float64(opts.size*opts.size)
	return res, nil
}
