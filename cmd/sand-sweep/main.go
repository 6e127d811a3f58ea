package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"sandfall/internal/analysis"
	"sandfall/internal/sims/sand"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	*l = (*l)[:0]
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("bad list entry %q: %w", part, err)
		}
		*l = append(*l, v)
	}
	return nil
}

// checkSweep rejects flag combinations that would run no scenario or leave
// the job feeder without a reader.
func checkSweep(workers, seeds int, radii []int) error {
	if workers <= 0 {
		return fmt.Errorf("-workers %d must be positive", workers)
	}
	if seeds <= 0 {
		return fmt.Errorf("-seeds %d must be positive", seeds)
	}
	if len(radii) == 0 {
		return fmt.Errorf("-radii is empty")
	}
	for _, r := range radii {
		if r < 0 {
			return fmt.Errorf("-radii entry %d must not be negative", r)
		}
	}
	return nil
}

func main() {
	pourTicks := flag.Int("pour", 120, "ticks to pour per scenario")
	settleCap := flag.Int("settle", 4000, "maximum ticks to wait for the pile to settle")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seeds := flag.Int("seeds", 3, "seeds per radius/policy combination")
	plotDir := flag.String("plot", "", "directory for height-profile PNGs (empty disables plotting)")
	radii := intList{2, 5, 8}
	flag.Var(&radii, "radii", "comma-separated brush radii to sweep")
	var overrides kvList
	flag.Var(&overrides, "set", "base config override in key=value form (repeatable)")
	flag.Parse()

	if err := checkSweep(*workers, *seeds, radii); err != nil {
		log.Fatal(err)
	}

	opts := map[string]string{"w": "160", "h": "120"}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("override %q is not key=value", kv)
		}
		opts[parts[0]] = parts[1]
	}
	base := sand.FromMap(opts)

	var sets []analysis.Scenario
	for _, r := range radii {
		for _, policy := range []sand.FillPolicy{sand.PolicyEmptyOnly, sand.PolicyOverwrite} {
			for s := 0; s < *seeds; s++ {
				sets = append(sets, analysis.Scenario{
					Radius:     r,
					Policy:     policy,
					Seed:       base.Seed + int64(s),
					PourTicks:  *pourTicks,
					SettleCap:  *settleCap,
					SpoutDepth: r,
				})
			}
		}
	}

	fmt.Printf("Sweeping %d scenarios on %dx%d (%d workers, %d pour ticks)\n",
		len(sets), base.Width, base.Height, *workers, *pourTicks)

	jobs := make(chan analysis.Scenario)
	results := make(chan analysis.Result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- analysis.Run(base, sc)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []analysis.Result
	for res := range results {
		all = append(all, res)
		if !res.Conserved {
			log.Printf("particle count changed while settling: %s", res.Scenario)
		}
		if !res.Settled {
			log.Printf("did not settle within %d ticks: %s", res.SettleTicks, res.Scenario)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i].Scenario, all[j].Scenario
		if a.Radius != b.Radius {
			return a.Radius < b.Radius
		}
		if a.Policy != b.Policy {
			return a.Policy < b.Policy
		}
		return a.Seed < b.Seed
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		s := res.Summary
		fmt.Printf("%s poured=%d particles=%d settle=%d peak=%d@%d width=%d mean=%.2f sd=%.2f slope=%.3f\n",
			res.Scenario, res.Poured, s.Particles, res.SettleTicks, s.Peak, s.PeakX, s.Width, s.Mean, s.StdDev, s.Slope)
	}

	if *plotDir == "" {
		return
	}
	byRadius := map[int]map[string][]float64{}
	for _, res := range all {
		sc := res.Scenario
		if byRadius[sc.Radius] == nil {
			byRadius[sc.Radius] = map[string][]float64{}
		}
		byRadius[sc.Radius][fmt.Sprintf("%s/%d", sc.Policy, sc.Seed)] = res.Profile
	}
	for r, series := range byRadius {
		path := filepath.Join(*plotDir, fmt.Sprintf("profile_r%02d.png", r))
		if err := analysis.SaveProfiles(path, fmt.Sprintf("Settled pile, brush radius %d", r), series); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}
}
