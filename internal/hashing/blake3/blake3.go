package blake3

import (
	"hash"

	"github.com/zeebo/blake3"

	"hashlib/internal/hashing"
)

type BLAKE3Provider struct{}

const (
	AlgorithmBLAKE3 = "blake3"
	ProviderName    = "blake3"
)

func init() {
	hashing.Register(&BLAKE3Provider{})
}

func (p *BLAKE3Provider) Name() string {
	return ProviderName
}

func (p *BLAKE3Provider) Description() string {
	return "BLAKE3 is a tree-structured cryptographic hash producing 256-bit digests by default"
}

func (p *BLAKE3Provider) Priority() int {
	return 10
}

func (p *BLAKE3Provider) Lookup(algorithm string) (func() hash.Hash, bool) {
	if algorithm != AlgorithmBLAKE3 {
		return nil, false
	}
	return func() hash.Hash { return blake3.New() }, true
}
