// Package combined provides the multi-algorithm hash provider. It serves
// every algorithm in Go's crypto.Hash table that is linked into the binary.
package combined

import (
	"crypto"
	"hash"

	// Link the implementations so crypto.Hash.Available reports them.
	_ "crypto/md5"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"

	_ "golang.org/x/crypto/blake2b"
	_ "golang.org/x/crypto/blake2s"
	_ "golang.org/x/crypto/sha3"

	"hashlib/internal/hashing"
)

const ProviderName = "crypto"

// Names maps algorithm names to crypto.Hash identifiers.
var Names = map[string]crypto.Hash{
	"md5":         crypto.MD5,
	"sha1":        crypto.SHA1,
	"sha224":      crypto.SHA224,
	"sha256":      crypto.SHA256,
	"sha384":      crypto.SHA384,
	"sha512":      crypto.SHA512,
	"sha512_224":  crypto.SHA512_224,
	"sha512_256":  crypto.SHA512_256,
	"sha3_224":    crypto.SHA3_224,
	"sha3_256":    crypto.SHA3_256,
	"sha3_384":    crypto.SHA3_384,
	"sha3_512":    crypto.SHA3_512,
	"blake2b_256": crypto.BLAKE2b_256,
	"blake2b_384": crypto.BLAKE2b_384,
	"blake2b_512": crypto.BLAKE2b_512,
	"blake2s_256": crypto.BLAKE2s_256,
}

type Combined struct{}

func init() {
	hashing.Register(&Combined{})
}

func (c *Combined) Name() string {
	return ProviderName
}

func (c *Combined) Description() string {
	return "Go crypto.Hash table: the standard library SHA-1/SHA-2 family plus SHA-3 and BLAKE2 from golang.org/x/crypto"
}

func (c *Combined) Priority() int {
	return 0
}

func (c *Combined) Lookup(algorithm string) (func() hash.Hash, bool) {
	h, ok := Names[algorithm]
	if !ok || !h.Available() {
		return nil, false
	}
	return h.New, true
}
