package hashing

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"log/slog"
	"sort"

	"hashlib/internal/models"
)

// DefaultAlgorithms is registered when Load is given no names.
var DefaultAlgorithms = []string{"sha256"}

// ExtendedAlgorithms is the wider SHA family an operator may opt into.
var ExtendedAlgorithms = []string{"sha1", "sha224", "sha256", "sha384", "sha512"}

type binding struct {
	provider string
	newHash  func() hash.Hash
}

// Registry maps algorithm names to constructors. It is filled once by Load
// and never modified afterwards, so it is safe to share.
type Registry struct {
	bindings map[string]binding
}

type loadOptions struct {
	providers    []Provider
	providersSet bool
	logger       *slog.Logger
}

// Option configures Load.
type Option func(*loadOptions)

// WithProviders replaces the catalog with an explicit, ordered provider list.
func WithProviders(providers ...Provider) Option {
	return func(o *loadOptions) {
		o.providers = providers
		o.providersSet = true
	}
}

// WithLogger sets the logger used to report how each algorithm was bound.
func WithLogger(logger *slog.Logger) Option {
	return func(o *loadOptions) {
		o.logger = logger
	}
}

// Load builds a registry holding the given algorithms. Each name is bound to
// the first provider, in priority order, whose Lookup succeeds. If no
// provider can supply a name, Load fails with a *MissingPrimitiveError.
func Load(algorithms []string, opts ...Option) (*Registry, error) {
	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.providersSet {
		o.providers = Providers()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if len(algorithms) == 0 {
		algorithms = DefaultAlgorithms
	}

	r := &Registry{bindings: make(map[string]binding, len(algorithms))}
	for _, algorithm := range algorithms {
		if algorithm == "" {
			return nil, fmt.Errorf("algorithm name cannot be empty")
		}
		if _, exists := r.bindings[algorithm]; exists {
			return nil, fmt.Errorf("hash algorithm %q listed twice", algorithm)
		}
		b, err := resolve(algorithm, o.providers)
		if err != nil {
			return nil, err
		}
		o.logger.Debug("hash algorithm bound", "algorithm", algorithm, "provider", b.provider)
		r.bindings[algorithm] = b
	}
	return r, nil
}

func resolve(algorithm string, providers []Provider) (binding, error) {
	tried := make([]string, 0, len(providers))
	for _, p := range providers {
		newHash, ok := p.Lookup(algorithm)
		if ok && newHash != nil {
			return binding{provider: p.Name(), newHash: newHash}, nil
		}
		tried = append(tried, p.Name())
	}
	return binding{}, &MissingPrimitiveError{Algorithm: algorithm, Tried: tried}
}

// New returns a fresh hash object for algorithm, with data already written.
func (r *Registry) New(algorithm string, data []byte) (hash.Hash, error) {
	constructor, err := r.Constructor(algorithm)
	if err != nil {
		return nil, err
	}
	return constructor(data), nil
}

// Constructor returns the seeded constructor bound to algorithm.
func (r *Registry) Constructor(algorithm string) (Constructor, error) {
	b, exists := r.bindings[algorithm]
	if !exists {
		return nil, &UnsupportedAlgorithmError{Algorithm: algorithm}
	}
	return func(data []byte) hash.Hash {
		h := b.newHash()
		if len(data) > 0 {
			h.Write(data)
		}
		return h
	}, nil
}

// Sum returns the digest of data in one call.
func (r *Registry) Sum(algorithm string, data []byte) ([]byte, error) {
	h, err := r.New(algorithm, data)
	if err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// Digest streams reader through algorithm and returns the hex digest.
func (r *Registry) Digest(algorithm string, reader io.Reader) (string, error) {
	h, err := r.New(algorithm, nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, reader); err != nil {
		return "", fmt.Errorf("hashing with %s: %w", algorithm, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Supports reports whether algorithm is registered.
func (r *Registry) Supports(algorithm string) bool {
	_, exists := r.bindings[algorithm]
	return exists
}

// ProviderOf returns the name of the provider bound to algorithm.
func (r *Registry) ProviderOf(algorithm string) (string, bool) {
	b, exists := r.bindings[algorithm]
	return b.provider, exists
}

// Algorithms returns the registered names, sorted.
func (r *Registry) Algorithms() []string {
	names := make([]string, 0, len(r.bindings))
	for name := range r.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns listing records for every registered algorithm.
func (r *Registry) Describe() []models.Algorithm {
	names := r.Algorithms()
	algorithms := make([]models.Algorithm, 0, len(names))
	for _, name := range names {
		b := r.bindings[name]
		h := b.newHash()
		algorithms = append(algorithms, models.Algorithm{
			Name:      name,
			Provider:  b.provider,
			Size:      h.Size(),
			BlockSize: h.BlockSize(),
		})
	}
	return algorithms
}
