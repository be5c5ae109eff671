// Package ring implements a statically built consistent hashing ring
// with virtual nodes. A ring is constructed once from a fixed node set
// and is immutable afterwards: lookups are deterministic, safe for
// concurrent readers without coordination, and changing membership
// means building a new ring.
package ring
