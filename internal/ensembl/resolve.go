// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ensembl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/genome-engine/pkg/types"
)

// Resolution failures callers may want to branch on.
var (
	ErrSpeciesNotFound  = errors.New("species not found")
	ErrSpeciesAmbiguous = errors.New("species matches more than one database")
)

// Database identifies one resolved core database.
type Database struct {
	// Name is the full identifier, e.g. "homo_sapiens_core_106_38".
	Name string

	// Release is the registry release the identifier belongs to.
	Release int
}

// speciesShortcuts expands common names to the scientific form used in
// database identifiers.
var speciesShortcuts = map[string]string{
	"human": "homo_sapiens",
	"mouse": "mus_musculus",
}

// NormalizeSpecies lower-cases a species token, expands the common-name
// shortcuts, and keeps only the segment before the first "/" so that a
// pasted listing path fragment still resolves.
func NormalizeSpecies(token string) string {
	t := strings.ToLower(strings.TrimSpace(token))
	if expanded, ok := speciesShortcuts[t]; ok {
		t = expanded
	}
	if i := strings.Index(t, "/"); i >= 0 {
		t = t[:i]
	}
	return t
}

// Resolver maps a species token to exactly one core database. It consults
// the vertebrate registry and the plant registry; the token may also be a
// full database identifier, which matches itself.
type Resolver struct {
	Vertebrate *Registry
	Plants     *Registry
}

// NewResolver returns a Resolver against the public registries.
func NewResolver(client *http.Client, cfg types.HTTPConfig) *Resolver {
	return &Resolver{
		Vertebrate: &Registry{Client: client, Base: vertebrateRegistryBase, Config: cfg},
		Plants:     &Registry{Client: client, Base: plantRegistryBase, Config: cfg},
	}
}

// Resolve normalizes the species token, fetches the candidate databases for
// the release, and applies the disambiguation policy. A zero release means
// the latest vertebrate release.
func (r *Resolver) Resolve(ctx context.Context, token string, release int) (Database, error) {
	species := NormalizeSpecies(token)
	if species == "" {
		return Database{}, fmt.Errorf("species is empty")
	}

	candidates, release, err := r.AvailableDatabases(ctx, release)
	if err != nil {
		return Database{}, err
	}

	return selectDatabase(species, candidates, release, r.Vertebrate.listingURL(release))
}

// AvailableDatabases returns the combined core-database list from both
// registries, plus the vertebrate release used. The release argument
// applies to the vertebrate registry only; the plant registry always
// serves its own latest release.
func (r *Resolver) AvailableDatabases(ctx context.Context, release int) ([]string, int, error) {
	vertebrate, release, err := r.Vertebrate.CoreDatabases(ctx, release)
	if err != nil {
		return nil, 0, fmt.Errorf("listing vertebrate databases: %w", err)
	}

	plants, _, err := r.Plants.CoreDatabases(ctx, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("listing plant databases: %w", err)
	}

	return append(vertebrate, plants...), release, nil
}

// selectDatabase picks the single database matching the normalized species
// as a substring. The mouse has many sub-strain databases sharing the
// species substring, so a multi-match there falls back to the canonical
// core database instead of failing.
func selectDatabase(species string, candidates []string, release int, listing string) (Database, error) {
	var matches []string
	for _, c := range candidates {
		if strings.Contains(c, species) {
			matches = append(matches, c)
		}
	}

	switch {
	case len(matches) == 1:
		return Database{Name: matches[0], Release: release}, nil
	case len(matches) > 1 && strings.Contains(species, "mus_musculus"):
		return Database{Name: mouseCoreDatabase(release), Release: release}, nil
	case len(matches) > 1:
		return Database{}, fmt.Errorf(
			"%w: %q matches %d databases in release %d; pass a specific core database (listed at %s)",
			ErrSpeciesAmbiguous, species, len(matches), release, listing)
	default:
		return Database{}, fmt.Errorf(
			"%w: no database matches %q in release %d; check spelling or pass a specific core database (listed at %s)",
			ErrSpeciesNotFound, species, release, listing)
	}
}

// mouseCoreDatabase returns the canonical mouse core database for a
// release. The trailing assembly suffix has been 39 since GRCm39.
func mouseCoreDatabase(release int) string {
	return fmt.Sprintf("mus_musculus_core_%d_39", release)
}
