// Package hasher provides the 64-bit hash functions used to place
// virtual nodes and keys on the ring. The same hasher must be used for
// both so they land in the same keyspace; callers pick the hash family
// at ring construction time.
package hasher
