// This file is part of Emuconsole.
//
// Emuconsole is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emuconsole is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emuconsole.  If not, see <https://www.gnu.org/licenses/>.

package commandline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/emuconsole/curated"
)

// Validate input string against command definitions.
func (cmds *Commands) Validate(input string) error {
	return cmds.ValidateTokens(TokeniseInput(input))
}

// ValidateTokens is like Validate, but works on tokens rather than an input
// string. The token list is reset to the beginning on return.
func (cmds *Commands) ValidateTokens(tokens *Tokens) error {
	defer tokens.Reset()

	cmd, ok := tokens.Peek()
	if !ok {
		return nil
	}
	cmd = strings.ToUpper(cmd)

	n, ok := cmds.Index[cmd]
	if !ok {
		return curated.Errorf("unrecognised command (%s)", cmd)
	}

	v := &validator{
		tokens:   tokens.tokens,
		furthest: -1,
	}

	// the command must consume every token
	if v.sequence(n.branches[0], 1, func(pos int) bool {
		if pos == len(v.tokens) {
			return true
		}
		v.fail(pos, nil)
		return false
	}) {
		return nil
	}

	if v.furthest < len(v.tokens) {
		arg := v.tokens[v.furthest]

		// special handling for help command
		if cmd == cmds.helpCommand {
			return curated.Errorf("no help for %s", strings.ToUpper(arg))
		}

		return curated.Errorf("unrecognised argument (%s) for %s", arg, cmd)
	}

	return curated.Errorf("%s required", v.expectedVerbose())
}

// validator matches a list of tokens against a node tree. matching is done
// with backtracking so that the first complete match is found.
//
// each matching function takes a continuation function. the continuation is
// called with the position of the next token once the node has matched. if
// the continuation returns false then alternative matches are tried.
type validator struct {
	tokens []string

	// the furthest token position at which matching failed. and the nodes
	// that were expected at that position. used for error messages and tab
	// completion
	furthest int
	expected []*node
}

func (v *validator) fail(pos int, n *node) {
	if pos > v.furthest {
		v.furthest = pos
		v.expected = v.expected[:0]
	}
	if pos == v.furthest && n != nil {
		v.expected = append(v.expected, n)
	}
}

// expectedVerbose lists the nodes that were expected at the furthest point
// of matching.
func (v *validator) expectedVerbose() string {
	var s []string
	seen := make(map[string]bool)
	for _, n := range v.expected {
		t := n.tagVerbose()
		if !seen[t] {
			seen[t] = true
			s = append(s, t)
		}
	}
	if len(s) == 0 {
		return "argument"
	}
	return strings.Join(s, " or ")
}

func (v *validator) sequence(seq []*node, pos int, cont func(int) bool) bool {
	if len(seq) == 0 {
		return cont(pos)
	}
	return v.node(seq[0], pos, func(p int) bool {
		return v.sequence(seq[1:], p, cont)
	})
}

func (v *validator) node(n *node, pos int, cont func(int) bool) bool {
	switch n.typ {
	case nodeLeaf:
		if pos >= len(v.tokens) || !n.match(v.tokens[pos]) {
			v.fail(pos, n)
			return false
		}
		return cont(pos + 1)

	case nodeRequired:
		return v.branches(n, pos, cont)

	case nodeOptional:
		if v.branches(n, pos, cont) {
			return true
		}
		return cont(pos)

	case nodeRepeat:
		// each repetition must consume at least one token
		if v.branches(n, pos, func(p int) bool {
			return p > pos && v.node(n, p, cont)
		}) {
			return true
		}
		return cont(pos)
	}

	return false
}

// branches tries each branch of the group in turn. if the next token is a
// keyword that begins one or more of the branches then only those branches
// are tried. this means that the keyword is not accepted by a placeholder in
// another branch.
func (v *validator) branches(n *node, pos int, cont func(int) bool) bool {
	candidates := n.branches

	if pos < len(v.tokens) {
		tok := strings.ToUpper(v.tokens[pos])
		var committed [][]*node
		for _, b := range n.branches {
			if len(b) > 0 && b[0].isKeyword() && b[0].tag == tok {
				committed = append(committed, b)
			}
		}
		if len(committed) > 0 {
			candidates = committed
		}
	}

	for _, b := range candidates {
		if v.sequence(b, pos, cont) {
			return true
		}
	}
	return false
}

// match checks the token against a leaf node.
func (n *node) match(tok string) bool {
	switch n.tag {
	case "%N":
		return isNumber(tok)
	case "%P":
		_, err := strconv.ParseFloat(tok, 64)
		return err == nil
	case "%S", "%F":
		return true
	}

	// case insensitive matching. n.tag has been normalised already
	return strings.ToUpper(tok) == n.tag
}

func isNumber(tok string) bool {
	if _, err := strconv.ParseInt(tok, 0, 64); err == nil {
		return true
	}
	_, err := strconv.ParseUint(tok, 0, 64)
	return err == nil
}

// expectations returns the leaf nodes that could follow the tokens, for the
// named command.
func (cmds *Commands) expectations(tokens []string) []*node {
	if len(tokens) == 0 {
		return nil
	}

	n, ok := cmds.Index[strings.ToUpper(tokens[0])]
	if !ok {
		return nil
	}

	v := &validator{
		tokens:   tokens,
		furthest: -1,
	}

	// the continuation always fails so that every possibility is explored
	v.sequence(n.branches[0], 1, func(_ int) bool {
		return false
	})

	if v.furthest != len(tokens) {
		return nil
	}

	return v.expected
}

// ParseNumber is a convenience function for converting a token that has been
// validated against the %N placeholder. Negative numbers are allowed.
func ParseNumber(tok string) (int64, error) {
	if v, err := strconv.ParseInt(tok, 0, 64); err == nil {
		return v, nil
	}
	v, err := strconv.ParseUint(tok, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("commandline: %w", err)
	}
	return int64(v), nil
}

// ParseAddress is like ParseNumber but for unsigned values.
func ParseAddress(tok string) (uint64, error) {
	v, err := strconv.ParseUint(tok, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("commandline: %w", err)
	}
	return v, nil
}
