// Package it contains the exec-based integration harness for the
// ringbench binary. Tests here need a prebuilt binary; build it first
// with 'go build -o ringbench ./cmd/ringbench' and point RINGBENCH_BIN
// at it.
package it

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Result is the parsed report of one ringbench run.
type Result struct {
	Words    int
	Selected map[string]int // node ID -> selection count
	Output   string         // raw stdout/stderr, kept for failure messages
}

// RunBench executes the ringbench binary against wordFile with the
// given node list and replica count, and parses its report.
func RunBench(ctx context.Context, binary, wordFile, nodes string, replicas int) (*Result, error) {
	cmd := exec.CommandContext(ctx, binary,
		"-nodes", nodes,
		"-replicas", strconv.Itoa(replicas),
		wordFile,
	)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("run %s: %w\noutput:\n%s", binary, err, out.String())
	}
	return parseReport(out.String())
}

func parseReport(output string) (*Result, error) {
	res := &Result{
		Selected: make(map[string]int),
		Output:   output,
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "WORD COUNT:"):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "WORD COUNT:")))
			if err != nil {
				return nil, fmt.Errorf("parse word count from %q: %w", line, err)
			}
			res.Words = n
		case strings.HasPrefix(line, "- "):
			entry := strings.TrimPrefix(line, "- ")
			id, countStr, found := strings.Cut(entry, ":")
			if !found {
				continue
			}
			count, err := strconv.Atoi(strings.TrimSpace(countStr))
			if err != nil {
				return nil, fmt.Errorf("parse selection count from %q: %w", line, err)
			}
			res.Selected[strings.TrimSpace(id)] = count
		}
	}
	return res, nil
}
