// Command life runs a simulation headless and prints each generation as text.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gamecubate/cellular-landscaper/internal/app"
	"github.com/gamecubate/cellular-landscaper/pkg/core"
	_ "github.com/gamecubate/cellular-landscaper/pkg/sims/landscape"
	_ "github.com/gamecubate/cellular-landscaper/pkg/sims/life"
)

// levelRamp renders level values from bare to peak.
const levelRamp = ".:-=+*#%@"

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not key=value", value)
	}
	*l = append(*l, value)
	return nil
}

// apply merges the overrides into cfg, later entries winning.
func (l kvList) apply(cfg map[string]string) {
	for _, kv := range l {
		key, value, _ := strings.Cut(kv, "=")
		cfg[key] = value
	}
}

func main() {
	cfg := app.NewConfig()
	cfg.Sim = "life"
	cfg.Bind(flag.CommandLine)
	generations := flag.Int("generations", 20, "number of generations to run")
	every := flag.Int("every", 1, "print every n-th generation")
	delay := flag.Duration("delay", 0, "pause between printed frames")
	var overrides kvList
	flag.Var(&overrides, "set", "sim config override in key=value form (repeatable)")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("life: ")

	simCfg := cfg.SimConfig()
	overrides.apply(simCfg)
	sim, err := core.Build(cfg.Sim, simCfg)
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	step := max(*every, 1)
	for gen := 0; gen <= *generations; gen++ {
		if gen > 0 {
			sim.Step()
		}
		if gen%step != 0 && gen != *generations {
			continue
		}
		if err := writeFrame(out, sim, gen); err != nil {
			log.Fatalf("write frame %d: %v", gen, err)
		}
		if *delay > 0 {
			if err := out.Flush(); err != nil {
				log.Fatal(err)
			}
			time.Sleep(*delay)
		}
	}
}

func writeFrame(w io.Writer, sim core.Sim, gen int) error {
	size := sim.Size()
	cells := sim.Cells()
	live := 0
	for _, c := range cells {
		if c != 0 {
			live++
		}
	}
	if _, err := fmt.Fprintf(w, "%s generation %d (%d non-zero)\n", sim.Name(), gen, live); err != nil {
		return err
	}
	line := make([]byte, size.W+1)
	line[size.W] = '\n'
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			line[x] = glyph(cells[y*size.W+x])
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func glyph(v uint8) byte {
	if v == 0 {
		return levelRamp[0]
	}
	if int(v) >= len(levelRamp) {
		return levelRamp[len(levelRamp)-1]
	}
	return levelRamp[v]
}
