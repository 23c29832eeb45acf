package main

import (
	"context"
	"errors"
	"testing"

	"github.com/gamecubate/cellular-landscaper/pkg/automaton"
)

func TestSweepTracksCoverage(t *testing.T) {
	sums, err := sweep(context.Background(), []float64{0, 0.5, 1}, sweepOptions{
		size:    40,
		trials:  4,
		steps:   0,
		workers: 3,
		seed:    7,
		rule:    automaton.Conway,
	})
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(sums) != 3 {
		t.Fatalf("got %d summaries, want 3", len(sums))
	}
	if sums[0].maxSeeded != 0 {
		t.Fatalf("zero coverage seeded %.3f", sums[0].maxSeeded)
	}
	if sums[2].minSeeded != 1 {
		t.Fatalf("full coverage seeded only %.3f", sums[2].minSeeded)
	}
	if m := sums[1].meanSeeded; m < 0.4 || m > 0.6 {
		t.Fatalf("half coverage mean %.3f outside [0.4, 0.6]", m)
	}
	if sums[1].meanSurvived != sums[1].meanSeeded {
		t.Fatal("with zero steps the population should be unchanged")
	}
}

func TestSweepPaddingNormalizesSeededArea(t *testing.T) {
	sums, err := sweep(context.Background(), []float64{1}, sweepOptions{
		size:    10,
		padding: 2,
		trials:  1,
		workers: 1,
		rule:    automaton.Conway,
	})
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if sums[0].meanSeeded != 1 {
		t.Fatalf("seeded fraction of padded interior = %.3f, want 1", sums[0].meanSeeded)
	}
	if sums[0].meanSurvived != 0.36 {
		t.Fatalf("alive fraction of whole grid = %.3f, want 0.36", sums[0].meanSurvived)
	}
}

func TestSweepPropagatesSeedErrors(t *testing.T) {
	_, err := sweep(context.Background(), []float64{1.5}, sweepOptions{
		size:    10,
		trials:  2,
		workers: 2,
		rule:    automaton.Conway,
	})
	if !errors.Is(err, automaton.ErrConfiguration) {
		t.Fatalf("sweep error = %v, want ErrConfiguration", err)
	}
}

func TestParseCoverages(t *testing.T) {
	got, err := parseCoverages(" 0.1, 0.5 ,,1")
	if err != nil {
		t.Fatalf("parseCoverages: %v", err)
	}
	if len(got) != 3 || got[0] != 0.1 || got[2] != 1 {
		t.Fatalf("parseCoverages = %v", got)
	}
	if _, err := parseCoverages("a"); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := parseCoverages(" , "); err == nil {
		t.Fatal("expected error for empty list")
	}
}
