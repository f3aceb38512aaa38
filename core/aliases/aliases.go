// Package aliases holds the fixed alias/abbreviation table installed at
// interactive-session start and the engine that expands its tokens.
package aliases

import (
	"fmt"
	"strings"

	"github.com/hyde-project/hydeshell/core/config"
)

// Kind groups aliases by the job they do.
type Kind string

const (
	// KindListing aliases delegate to the listing tool.
	KindListing Kind = "listing"
	// KindNavigation abbreviations expand to relative cd chains.
	KindNavigation Kind = "navigation"
	// KindSafety abbreviations add a flag the user nearly always wants.
	KindSafety Kind = "safety"
)

// Alias maps an invocation token to its expansion.
type Alias struct {
	Token     string `yaml:"token" json:"token"`
	Expansion string `yaml:"expansion" json:"expansion"`
	Kind      Kind   `yaml:"kind" json:"kind"`
}

// Table returns the full alias table in its stable output order. The table
// is fixed per session and never mutated at runtime.
func Table(cfg *config.Configuration) []Alias {
	ls := cfg.ListingTool

	return []Alias{
		{Token: "ls", Expansion: ls + " -1 --icons=auto", Kind: KindListing},
		{Token: "l", Expansion: ls + " -lh --icons=auto", Kind: KindListing},
		{Token: "ll", Expansion: ls + " -lha --icons=auto --sort=name --group-directories-first", Kind: KindListing},
		{Token: "ld", Expansion: ls + " -lhD --icons=auto", Kind: KindListing},
		{Token: "lt", Expansion: ls + " --icons=auto --tree", Kind: KindListing},

		{Token: "..", Expansion: NavigationTarget(1), Kind: KindNavigation},
		{Token: "...", Expansion: NavigationTarget(2), Kind: KindNavigation},
		{Token: ".3", Expansion: NavigationTarget(3), Kind: KindNavigation},
		{Token: ".4", Expansion: NavigationTarget(4), Kind: KindNavigation},
		{Token: ".5", Expansion: NavigationTarget(5), Kind: KindNavigation},

		{Token: "mkdir", Expansion: "mkdir -p", Kind: KindSafety},
	}
}

// NavigationTarget returns a cd command with exactly depth ".." segments.
func NavigationTarget(depth int) string {
	if depth < 1 {
		panic(fmt.Sprintf("navigation depth must be positive, got %d", depth))
	}

	segments := make([]string, depth)
	for i := range segments {
		segments[i] = ".."
	}
	return "cd " + strings.Join(segments, "/")
}
