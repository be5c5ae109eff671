package ring

import (
	"errors"
	"fmt"
	"sort"

	"hashring/internal/hasher"
)

// Build and lookup failures.
var (
	// ErrNoNodes is returned by Build when the node list is empty.
	ErrNoNodes = errors.New("ring: node list is empty")
	// ErrInvalidReplicas is returned by Build when replicas < 1.
	ErrInvalidReplicas = errors.New("ring: replicas must be at least 1")
	// ErrEmptyRing is returned by lookups on a ring with no virtual nodes.
	ErrEmptyRing = errors.New("ring: ring has no virtual nodes")
)

// Node represents a physical node that can own keys. The ring never
// interprets the ID beyond hashing it; Addr is carried through for
// callers that route to the selected node.
type Node struct {
	ID   string
	Addr string
}

// vnode represents a virtual node on the ring. owner indexes into the
// ring's node slice.
type vnode struct {
	hash  uint64
	owner int
}

// Ring is a consistent hashing ring with virtual nodes. It is immutable
// after Build, so any number of goroutines may call Lookup and
// Candidates concurrently.
type Ring struct {
	hasher hasher.Hasher
	nodes  []Node
	vnodes []vnode
}

type options struct {
	hasher hasher.Hasher
}

// Option configures ring construction.
type Option func(*options)

// WithHasher selects the hash family used to place virtual nodes and
// keys. The default is hasher.Default(). The same hasher is used for
// construction and lookup so both land in the same keyspace.
func WithHasher(h hasher.Hasher) Option {
	return func(o *options) {
		o.hasher = h
	}
}

// Build constructs a ring with replicas virtual nodes per physical
// node. Nodes with duplicate IDs are dropped, keeping the first
// occurrence. The virtual nodes are sorted ascending by hash; equal
// hashes are ordered by owner ID so the resulting ring is identical
// across runs with identical inputs.
func Build(nodes []Node, replicas int, opts ...Option) (*Ring, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}
	if replicas < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidReplicas, replicas)
	}

	o := options{hasher: hasher.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	// Drop duplicate node IDs, first occurrence wins.
	seen := make(map[string]bool, len(nodes))
	owned := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		owned = append(owned, n)
	}

	vnodes := make([]vnode, 0, len(owned)*replicas)
	for i, n := range owned {
		for j := 0; j < replicas; j++ {
			h := o.hasher.Sum64([]byte(fmt.Sprintf("%s-vnode-%d", n.ID, j)))
			vnodes = append(vnodes, vnode{hash: h, owner: i})
		}
	}

	// Sort by (hash, owner ID). The secondary key keeps the order total
	// when two virtual nodes collide on a hash value.
	sort.Slice(vnodes, func(a, b int) bool {
		if vnodes[a].hash != vnodes[b].hash {
			return vnodes[a].hash < vnodes[b].hash
		}
		return owned[vnodes[a].owner].ID < owned[vnodes[b].owner].ID
	})

	return &Ring{
		hasher: o.hasher,
		nodes:  owned,
		vnodes: vnodes,
	}, nil
}

// Lookup returns the node responsible for key: the owner of the first
// virtual node at or after the key's hash, wrapping to the start of the
// ring when the key hashes past the last virtual node. Lookup is a
// binary search over the sorted virtual nodes.
func (r *Ring) Lookup(key string) (Node, error) {
	if len(r.vnodes) == 0 {
		return Node{}, ErrEmptyRing
	}

	h := r.hasher.Sum64([]byte(key))
	idx := sort.Search(len(r.vnodes), func(i int) bool {
		return r.vnodes[i].hash >= h
	})
	if idx == len(r.vnodes) {
		idx = 0
	}
	return r.nodes[r.vnodes[idx].owner], nil
}

// Candidates returns up to k distinct nodes for key, highest priority
// first: the responsible node followed by the owners of the next
// virtual nodes walking clockwise. Useful as a replica preference list.
// Returns fewer than k nodes when the ring holds fewer distinct nodes.
func (r *Ring) Candidates(key string, k int) ([]Node, error) {
	if len(r.vnodes) == 0 {
		return nil, ErrEmptyRing
	}
	if k <= 0 {
		return []Node{}, nil
	}

	h := r.hasher.Sum64([]byte(key))
	idx := sort.Search(len(r.vnodes), func(i int) bool {
		return r.vnodes[i].hash >= h
	})
	if idx == len(r.vnodes) {
		idx = 0
	}

	taken := make(map[int]bool, k)
	result := make([]Node, 0, k)
	for i := 0; i < len(r.vnodes) && len(result) < k; i++ {
		owner := r.vnodes[(idx+i)%len(r.vnodes)].owner
		if taken[owner] {
			continue
		}
		taken[owner] = true
		result = append(result, r.nodes[owner])
	}
	return result, nil
}

// Nodes returns a copy of the distinct physical nodes in the ring, in
// build order.
func (r *Ring) Nodes() []Node {
	nodes := make([]Node, len(r.nodes))
	copy(nodes, r.nodes)
	return nodes
}

// Len returns the number of virtual nodes in the ring.
func (r *Ring) Len() int {
	return len(r.vnodes)
}
