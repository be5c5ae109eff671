package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"hashring/internal/hasher"
	"hashring/internal/ring"
)

// Config holds the ring and benchmark configuration. Node entries are
// either a bare ID ("n1") or an ID with an address ("n1=host:port").
type Config struct {
	Nodes    []string
	Replicas int
	Hash     string
	WordFile string
}

// Default returns a config with the reference benchmark defaults:
// 1000 virtual nodes per node, xxhash.
func Default() *Config {
	return &Config{
		Replicas: 1000,
		Hash:     "xxhash",
	}
}

// Load reads a TOML config file. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseNodes parses a comma-separated node list, e.g.
// "n1,n2,n3" or "n1=127.0.0.1:50051,n2=127.0.0.1:50052".
func ParseNodes(nodesStr string) ([]string, error) {
	if strings.TrimSpace(nodesStr) == "" {
		return []string{}, nil
	}

	parts := strings.Split(nodesStr, ",")
	nodes := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, err := parseEntry(part); err != nil {
			return nil, err
		}
		nodes = append(nodes, part)
	}
	return nodes, nil
}

// parseEntry splits a node entry into its ID and optional address.
func parseEntry(entry string) (ring.Node, error) {
	id, addr, found := strings.Cut(entry, "=")
	id = strings.TrimSpace(id)
	addr = strings.TrimSpace(addr)

	if id == "" {
		return ring.Node{}, fmt.Errorf("node ID cannot be empty: %q", entry)
	}
	if found && addr == "" {
		return ring.Node{}, fmt.Errorf("node address cannot be empty: %q", entry)
	}
	return ring.Node{ID: id, Addr: addr}, nil
}

// Validate checks that the config describes a buildable ring.
func (c *Config) Validate() error {
	if len(c.Nodes) == 0 {
		return fmt.Errorf("at least one node is required")
	}
	if c.Replicas < 1 {
		return fmt.Errorf("replicas must be at least 1, got %d", c.Replicas)
	}
	if _, err := hasher.ByName(c.Hash); err != nil {
		return err
	}
	if _, err := c.RingNodes(); err != nil {
		return err
	}
	return nil
}

// RingNodes converts the configured node entries into ring.Node values.
func (c *Config) RingNodes() ([]ring.Node, error) {
	nodes := make([]ring.Node, 0, len(c.Nodes))
	for _, entry := range c.Nodes {
		n, err := parseEntry(entry)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// Hasher returns the configured hash family.
func (c *Config) Hasher() (hasher.Hasher, error) {
	return hasher.ByName(c.Hash)
}
