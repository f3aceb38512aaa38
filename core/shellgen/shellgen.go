// Package shellgen renders the alias table and prompt hook as rc lines for
// a concrete shell dialect.
package shellgen

import (
	"fmt"
	"io"

	"github.com/hyde-project/hydeshell/core/aliases"
)

// Dialect names a supported shell.
type Dialect string

const (
	Zsh  Dialect = "zsh"
	Bash Dialect = "bash"
	Fish Dialect = "fish"
)

// ParseDialect converts a user-supplied shell name into a Dialect.
func ParseDialect(name string) (Dialect, error) {
	switch Dialect(name) {
	case Zsh, Bash, Fish:
		return Dialect(name), nil
	default:
		return "", fmt.Errorf("unsupported shell %q (want zsh, bash or fish)", name)
	}
}

// Options control the rendered output.
type Options struct {
	// Table is the alias table to install, in output order.
	Table []aliases.Alias
	// PromptEngine is the prompt initializer to hook in. Empty disables
	// the prompt hook entirely.
	PromptEngine string
}

// Render writes the rc lines for the dialect. The prompt hook is emitted
// first and is guarded shell-side so it only runs in interactive sessions.
func Render(w io.Writer, d Dialect, opts Options) error {
	switch d {
	case Zsh, Bash:
		return renderPOSIX(w, d, opts)
	case Fish:
		return renderFish(w, opts)
	default:
		return fmt.Errorf("unsupported shell %q", d)
	}
}

func renderPOSIX(w io.Writer, d Dialect, opts Options) error {
	fmt.Fprintf(w, "# hydeshell glue for %s. Regenerate with: hydeshell init %s\n", d, d)

	if opts.PromptEngine != "" {
		fmt.Fprintln(w, "if [[ $- == *i* ]]; then")
		fmt.Fprintf(w, "  eval \"$(%s init %s)\"\n", opts.PromptEngine, d)
		fmt.Fprintln(w, "fi")
	}

	for _, alias := range opts.Table {
		fmt.Fprintf(w, "alias %s='%s'\n", alias.Token, alias.Expansion)
	}
	return nil
}

func renderFish(w io.Writer, opts Options) error {
	fmt.Fprintln(w, "# hydeshell glue for fish. Regenerate with: hydeshell init fish")

	if opts.PromptEngine != "" {
		fmt.Fprintln(w, "if status is-interactive")
		fmt.Fprintf(w, "  %s init fish | source\n", opts.PromptEngine)
		fmt.Fprintln(w, "end")
	}

	for _, alias := range opts.Table {
		// Listing aliases stay aliases, abbreviations expand inline so
		// the user sees the real command before running it.
		if alias.Kind == aliases.KindListing {
			fmt.Fprintf(w, "alias %s '%s'\n", alias.Token, alias.Expansion)
		} else {
			fmt.Fprintf(w, "abbr -a -- %s '%s'\n", alias.Token, alias.Expansion)
		}
	}
	return nil
}
