// ringbench builds a consistent-hash ring over a set of nodes, maps
// every word of a sample file onto it, and prints the per-node
// selection counts with timing.
//
// Usage:
//
//	ringbench -nodes n1,n2,n3 -replicas 1000 /usr/share/dict/words
//	ringbench -config ring.toml
package main

import (
	"flag"
	"log"
	"os"

	"hashring/internal/bench"
	"hashring/internal/config"
)

var (
	configPath = flag.String("config", "", "path to a TOML config file")
	nodesFlag  = flag.String("nodes", "", "comma-separated node list (id or id=addr)")
	replicas   = flag.Int("replicas", 1000, "virtual nodes per node")
	hashName   = flag.String("hash", "xxhash", "hash family: xxhash, murmur3 or fnv")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	// Flags set on the command line override the config file.
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["nodes"] {
		nodes, err := config.ParseNodes(*nodesFlag)
		if err != nil {
			log.Fatalf("parse nodes: %v", err)
		}
		cfg.Nodes = nodes
	}
	if set["replicas"] {
		cfg.Replicas = *replicas
	}
	if set["hash"] {
		cfg.Hash = *hashName
	}
	if flag.NArg() > 0 {
		cfg.WordFile = flag.Arg(0)
	}

	if cfg.WordFile == "" {
		log.Fatal("no word file given (positional argument or WordFile in the config)")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	words, err := bench.ReadWords(cfg.WordFile)
	if err != nil {
		log.Fatalf("%v", err)
	}

	nodes, err := cfg.RingNodes()
	if err != nil {
		log.Fatalf("%v", err)
	}
	h, err := cfg.Hasher()
	if err != nil {
		log.Fatalf("%v", err)
	}

	report, err := bench.Run(nodes, cfg.Replicas, h, words)
	if err != nil {
		log.Fatalf("benchmark failed: %v", err)
	}
	report.Print(os.Stdout)
}
