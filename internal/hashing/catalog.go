package hashing

import (
	"fmt"
	"sort"

	"hashlib/internal/models"
)

// catalog holds every provider linked into the binary. It is written only
// from init functions, so reads need no locking.
var catalog = make(map[string]Provider)

// Register adds a provider to the catalog. Provider packages call it from
// init; a bad registration is a programming error and panics.
func Register(p Provider) {
	if p == nil {
		panic("hashing: Register called with nil provider")
	}
	name := p.Name()
	if name == "" {
		panic("hashing: Register called with empty provider name")
	}
	if _, exists := catalog[name]; exists {
		panic(fmt.Sprintf("hashing: provider %q registered twice", name))
	}
	catalog[name] = p
}

// GetProvider retrieves a provider from the catalog by name.
func GetProvider(name string) (Provider, error) {
	p, exists := catalog[name]
	if !exists {
		return nil, fmt.Errorf("provider '%s' not found in catalog", name)
	}
	return p, nil
}

// Providers returns the catalog in query order: ascending priority, then name.
func Providers() []Provider {
	providers := make([]Provider, 0, len(catalog))
	for _, p := range catalog {
		providers = append(providers, p)
	}
	sortProviders(providers)
	return providers
}

// ProvidersByName resolves an explicit preference order. Every name must
// be in the catalog.
func ProvidersByName(names []string) ([]Provider, error) {
	providers := make([]Provider, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("provider '%s' listed twice", name)
		}
		seen[name] = true
		p, err := GetProvider(name)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return providers, nil
}

// ListProviders returns listing records for the catalog in query order.
func ListProviders() []models.Provider {
	providers := Providers()
	entries := make([]models.Provider, 0, len(providers))
	for _, p := range providers {
		entries = append(entries, models.Provider{
			Name:        p.Name(),
			Description: p.Description(),
			Priority:    p.Priority(),
		})
	}
	return entries
}

func sortProviders(providers []Provider) {
	sort.SliceStable(providers, func(i, j int) bool {
		if providers[i].Priority() != providers[j].Priority() {
			return providers[i].Priority() < providers[j].Priority()
		}
		return providers[i].Name() < providers[j].Name()
	})
}
