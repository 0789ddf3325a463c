package hashing

import (
	"hash"
)

// Provider is a source of hash constructors. A provider may offer many
// algorithms (a combined provider) or exactly one (a dedicated provider).
type Provider interface {
	Name() string
	Description() string
	// Priority orders providers in the catalog. Lower values are asked first.
	Priority() int
	// Lookup returns the constructor for algorithm, or false if this
	// provider cannot supply it.
	Lookup(algorithm string) (func() hash.Hash, bool)
}

// Constructor builds a fresh hash object seeded with data.
type Constructor func(data []byte) hash.Hash
