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
	"sort"
	"strings"

	"github.com/jetsetilly/emuconsole/curated"
)

// ParseCommandTemplate turns a string representation of a command template
// into a machine friendly representation.
//
// Each entry in the template is a single command. See the package
// documentation for the syntax of a command template.
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := &Commands{
		Index: make(map[string]*node),
		cmds:  make([]*node, 0, len(template)),
	}

	for t := range template {
		n, i, err := parseDefinition(template[t])
		if err != nil {
			return nil, curated.Errorf("parser: %s (line %d, col %d)", err, t+1, i+1)
		}

		if _, ok := cmds.Index[n.tag]; ok {
			return nil, curated.Errorf("parser: %s defined more than once (line %d)", n.tag, t+1)
		}

		cmds.cmds = append(cmds.cmds, n)
		cmds.Index[n.tag] = n
	}

	sort.Stable(cmds)

	return cmds, nil
}

// parser is a recursive descent parser for a single template entry.
type parser struct {
	defn string
	i    int
}

// parseDefinition parses a single template entry. The returned int is the
// index into the string at which parsing stopped. useful for error messages.
func parseDefinition(defn string) (*node, int, error) {
	p := &parser{defn: defn}

	branches, err := p.parseGroup(0)
	if err != nil {
		return nil, p.i, err
	}

	// alternatives are not allowed at the top level so there is exactly one
	// branch
	seq := branches[0]

	if len(seq) == 0 {
		return nil, p.i, fmt.Errorf("empty definition")
	}

	if !seq[0].isKeyword() {
		return nil, 0, fmt.Errorf("command must begin with a keyword")
	}

	n := &node{
		typ:      nodeRoot,
		tag:      seq[0].tag,
		branches: [][]*node{seq[1:]},
	}

	return n, p.i, nil
}

func closerFor(open byte) byte {
	switch open {
	case '[':
		return ']'
	case '(':
		return ')'
	case '{':
		return '}'
	}
	return 0
}

func groupTypeFor(open byte) nodeType {
	switch open {
	case '[':
		return nodeRequired
	case '(':
		return nodeOptional
	case '{':
		return nodeRepeat
	}
	panic(fmt.Sprintf("not a group delimiter: %c", open))
}

func isSpecial(c byte) bool {
	return strings.IndexByte("[](){}|%", c) != -1
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// parseGroup parses the definition up to and including the closer character.
// a closer of zero means the end of the definition
func (p *parser) parseGroup(closer byte) ([][]*node, error) {
	var branches [][]*node
	var seq []*node

	endBranch := func() error {
		if len(seq) == 0 && closer != 0 {
			if len(branches) == 0 {
				return fmt.Errorf("empty group")
			}
			return fmt.Errorf("empty branch")
		}
		branches = append(branches, seq)
		seq = nil
		return nil
	}

	for {
		for p.i < len(p.defn) && isSpace(p.defn[p.i]) {
			p.i++
		}

		if p.i >= len(p.defn) {
			if closer != 0 {
				return nil, fmt.Errorf("unterminated group (expecting %c)", closer)
			}
			return branches, endBranch()
		}

		c := p.defn[p.i]

		switch c {
		case closer:
			p.i++
			return branches, endBranch()

		case ']', ')', '}':
			return nil, fmt.Errorf("unexpected %c", c)

		case '|':
			if closer == 0 {
				return nil, fmt.Errorf("alternatives must be inside a group")
			}
			if err := endBranch(); err != nil {
				return nil, err
			}
			p.i++

		case '[', '(', '{':
			p.i++
			b, err := p.parseGroup(closerFor(c))
			if err != nil {
				return nil, err
			}
			seq = append(seq, &node{typ: groupTypeFor(c), branches: b})

		case '%':
			n, err := p.parsePlaceholder()
			if err != nil {
				return nil, err
			}
			seq = append(seq, n)

		default:
			start := p.i
			for p.i < len(p.defn) && !isSpace(p.defn[p.i]) && !isSpecial(p.defn[p.i]) {
				p.i++
			}
			seq = append(seq, &node{typ: nodeLeaf, tag: strings.ToUpper(p.defn[start:p.i])})
		}
	}
}

// parsePlaceholder parses placeholders of the form %N or %<label>N
func (p *parser) parsePlaceholder() (*node, error) {
	// skip % character
	p.i++

	n := &node{typ: nodeLeaf}

	if p.i < len(p.defn) && p.defn[p.i] == '<' {
		end := strings.IndexByte(p.defn[p.i:], '>')
		if end == -1 {
			return nil, fmt.Errorf("unterminated placeholder label")
		}
		n.placeholderLabel = p.defn[p.i+1 : p.i+end]
		if strings.TrimSpace(n.placeholderLabel) == "" {
			return nil, fmt.Errorf("empty placeholder label")
		}
		p.i += end + 1
	}

	if p.i >= len(p.defn) {
		return nil, fmt.Errorf("incomplete placeholder")
	}

	switch p.defn[p.i] {
	case 'N', 'P', 'S', 'F':
		n.tag = fmt.Sprintf("%%%c", p.defn[p.i])
	default:
		return nil, fmt.Errorf("unknown placeholder directive (%c)", p.defn[p.i])
	}
	p.i++

	// placeholders must be followed by a space or a group delimiter
	if p.i < len(p.defn) && !isSpace(p.defn[p.i]) && !isSpecial(p.defn[p.i]) {
		return nil, fmt.Errorf("placeholder directive must be followed by a space or delimiter")
	}

	return n, nil
}
