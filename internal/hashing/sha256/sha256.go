package sha256

import (
	"hash"

	sha256simd "github.com/minio/sha256-simd"

	"hashlib/internal/hashing"
)

// SHA256Provider is the dedicated SHA-256 provider. It is asked after the
// combined provider and serves only AlgorithmSHA256.
type SHA256Provider struct{}

const (
	AlgorithmSHA256 = "sha256"
	ProviderName    = "sha256-simd"
)

func init() {
	hashing.Register(&SHA256Provider{})
}

func (p *SHA256Provider) Name() string {
	return ProviderName
}

func (p *SHA256Provider) Description() string {
	return "SHA-256 is a cryptographic hash function that produces a fixed-size 256-bit (32-byte) hash value; SIMD-accelerated where the CPU allows"
}

func (p *SHA256Provider) Priority() int {
	return 10
}

func (p *SHA256Provider) Lookup(algorithm string) (func() hash.Hash, bool) {
	if algorithm != AlgorithmSHA256 {
		return nil, false
	}
	return sha256simd.New, true
}
