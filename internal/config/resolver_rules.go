package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ResolverRules is a per-language project resolution rule file
// (<root>/resolvers/<language>.toml on disk; spec.md §6 calls the generated
// cache "resolvers/<language>.json" — this is the hand-authored TOML source
// a project can check in). Nothing in this module calls LoadResolverRules
// or reads PathAliases/SourceRoots; behavior.ProjectRules only aliases the
// type.
type ResolverRules struct {
	PathAliases map[string]string `toml:"path_aliases"`
	SourceRoots []string          `toml:"source_roots"`
}

// LoadResolverRules reads <root>/resolvers/<language>.toml. A missing file
// returns an empty, valid ResolverRules rather than an error, since most
// languages need no project-specific rules.
func LoadResolverRules(root, languageID string) (*ResolverRules, error) {
	path := filepath.Join(root, "resolvers", languageID+".toml")
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &ResolverRules{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var rules ResolverRules
	if err := toml.Unmarshal(content, &rules); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &rules, nil
}
