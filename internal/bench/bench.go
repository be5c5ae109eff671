// Package bench runs the word-list benchmark: build a ring over a node
// set, select a node for every word in a sample file, and report timing
// and the per-node selection counts.
package bench

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"hashring/internal/hasher"
	"hashring/internal/ring"
)

// Report holds the outcome of one benchmark run.
type Report struct {
	Words        int
	RealNodes    int
	VirtualNodes int
	Replicas     int
	BuildTime    time.Duration
	SelectTime   time.Duration
	Selected     map[string]int // node ID -> selection count
}

// ReadWords reads one sample key per line from path, skipping blank
// lines.
func ReadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word file: %w", err)
	}
	return words, nil
}

// Run builds a ring and looks up every word once for timing, then once
// more to count selections per node. The timed loop does nothing but
// lookups so the measurement is not skewed by counting.
func Run(nodes []ring.Node, replicas int, h hasher.Hasher, words []string) (*Report, error) {
	buildStart := time.Now()
	r, err := ring.Build(nodes, replicas, ring.WithHasher(h))
	if err != nil {
		return nil, fmt.Errorf("build ring: %w", err)
	}
	buildTime := time.Since(buildStart)

	selectStart := time.Now()
	for _, word := range words {
		if _, err := r.Lookup(word); err != nil {
			return nil, fmt.Errorf("lookup %q: %w", word, err)
		}
	}
	selectTime := time.Since(selectStart)

	selected := make(map[string]int, len(r.Nodes()))
	for _, n := range r.Nodes() {
		selected[n.ID] = 0
	}
	for _, word := range words {
		owner, err := r.Lookup(word)
		if err != nil {
			return nil, fmt.Errorf("lookup %q: %w", word, err)
		}
		selected[owner.ID]++
	}

	return &Report{
		Words:        len(words),
		RealNodes:    len(r.Nodes()),
		VirtualNodes: r.Len(),
		Replicas:     replicas,
		BuildTime:    buildTime,
		SelectTime:   selectTime,
		Selected:     selected,
	}, nil
}

// WordsPerSecond returns the lookup throughput of the timed loop.
func (rep *Report) WordsPerSecond() float64 {
	if rep.SelectTime <= 0 {
		return 0
	}
	return float64(rep.Words) / rep.SelectTime.Seconds()
}

// Print writes the report in the reference benchmark's format. Node
// counts are printed in sorted ID order so output is deterministic.
func (rep *Report) Print(w io.Writer) {
	fmt.Fprintf(w, "WORD COUNT: %d\n", rep.Words)
	fmt.Fprintf(w, "REAL NODE COUNT: %d\n", rep.RealNodes)
	fmt.Fprintf(w, "VIRTUAL NODE COUNT: %d (%d per node)\n", rep.VirtualNodes, rep.Replicas)

	ids := make([]string, 0, len(rep.Selected))
	for id := range rep.Selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(w, "\nSELECTED COUNT PER NODE:\n")
	for _, id := range ids {
		fmt.Fprintf(w, "- %s: \t%d\n", id, rep.Selected[id])
	}

	fmt.Fprintf(w, "\nELAPSED: %d ms (for building ring), %d ms (for selecting nodes)\n",
		rep.BuildTime.Milliseconds(), rep.SelectTime.Milliseconds())
	fmt.Fprintf(w, "WORDS PER SECOND: %d\n", int64(rep.WordsPerSecond()))
}
