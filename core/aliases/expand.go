package aliases

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anmitsu/go-shlex"
	getopt "github.com/pborman/getopt/v2"
	"mvdan.cc/sh/v3/syntax"
)

// Expander rewrites command lines by substituting alias tokens found in
// command position.
type Expander struct {
	table map[string]Alias
}

// NewExpander creates an Expander over the given table.
func NewExpander(table []Alias) *Expander {
	byToken := make(map[string]Alias, len(table))
	for _, alias := range table {
		byToken[alias.Token] = alias
	}
	return &Expander{table: byToken}
}

type edit struct {
	start, end uint
	text       string
}

// ExpandLine expands every alias token that appears in command position,
// including after &&, ||, | and ;. Quoted words and words in argument
// position are left alone. On a syntax error the line is returned
// unchanged along with the error.
func (e *Expander) ExpandLine(line string) (string, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(line), "")
	if err != nil {
		return line, fmt.Errorf("syntax error: %w", err)
	}

	var edits []edit
	syntax.Walk(prog, func(node syntax.Node) bool {
		call, ok := node.(*syntax.CallExpr)
		if !ok || len(call.Args) == 0 {
			return true
		}

		word := call.Args[0]
		token := literalWord(word)
		if token == "" {
			return true
		}

		alias, ok := e.table[token]
		if !ok {
			return true
		}

		// Don't stack -p onto an invocation that already carries it.
		if alias.Kind == KindSafety && hasParentsFlag(line, word, call) {
			return true
		}

		edits = append(edits, edit{
			start: word.Pos().Offset(),
			end:   word.End().Offset(),
			text:  alias.Expansion,
		})
		return true
	})

	// Apply back to front so earlier offsets stay valid.
	sort.Slice(edits, func(i, j int) bool { return edits[i].start > edits[j].start })
	for _, ed := range edits {
		line = line[:ed.start] + ed.text + line[ed.end:]
	}
	return line, nil
}

// literalWord returns the word's value if it is a single unquoted literal,
// otherwise "".
func literalWord(w *syntax.Word) string {
	if len(w.Parts) != 1 {
		return ""
	}
	lit, ok := w.Parts[0].(*syntax.Lit)
	if !ok {
		return ""
	}
	return lit.Value
}

// hasParentsFlag reports whether the call's remaining argv already carries
// -p or --parents.
func hasParentsFlag(line string, cmdWord *syntax.Word, call *syntax.CallExpr) bool {
	rest := line[cmdWord.End().Offset():call.End().Offset()]
	args, err := shlex.Split(rest, true)
	if err != nil {
		return false
	}

	opts := getopt.New()
	parents := opts.BoolLong("parents", 'p', "make parents if needed")

	// Unknown flags abort parsing, any -p seen before that still counts.
	_ = opts.Getopt(append([]string{"mkdir"}, args...), nil)
	return *parents
}
