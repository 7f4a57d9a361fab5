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
	"strings"
)

type nodeType int

const (
	// a single word or placeholder
	nodeLeaf nodeType = iota

	// the first node of a command
	nodeRoot

	nodeRequired
	nodeOptional
	nodeRepeat
)

func (t nodeType) String() string {
	switch t {
	case nodeLeaf:
		return "nodeLeaf"
	case nodeRoot:
		return "nodeRoot"
	case nodeRequired:
		return "nodeRequired"
	case nodeOptional:
		return "nodeOptional"
	case nodeRepeat:
		return "nodeRepeat"
	}
	panic("unknown nodeType")
}

// the open and close characters for each group type
func (t nodeType) delimiters() (string, string) {
	switch t {
	case nodeRequired:
		return "[", "]"
	case nodeOptional:
		return "(", ")"
	case nodeRepeat:
		return "{", "}"
	}
	return "", ""
}

// a node is either a leaf or a group. leaf nodes have a tag, groups have one
// or more branches. each branch is a sequence of nodes.
//
// the root node of a command has a tag (the command keyword) and a single
// branch containing the arguments.
type node struct {
	typ nodeType

	// tag is either an uppercase keyword or a placeholder
	tag string

	// friendly name for the placeholder tags. not used if tag is not a
	// placeholder. you can use isPlaceholder() to check
	placeholderLabel string

	branches [][]*node
}

// String returns the verbose representation of the node (and its children).
// The result of String() can be parsed by ParseCommandTemplate() and will
// result in an identical node tree.
func (n *node) String() string {
	return n.string(false)
}

// usageString is like String() but placeholders with labels are shown as the
// label only. Better to use when displaying help.
func (n *node) usageString() string {
	return n.string(true)
}

func (n *node) string(useLabels bool) string {
	switch n.typ {
	case nodeLeaf:
		return n.tagString(useLabels)
	case nodeRoot:
		if len(n.branches) == 0 || len(n.branches[0]) == 0 {
			return n.tag
		}
		return fmt.Sprintf("%s %s", n.tag, sequenceString(n.branches[0], useLabels))
	}

	open, close := n.typ.delimiters()
	s := strings.Builder{}
	s.WriteString(open)
	for i, b := range n.branches {
		if i > 0 {
			s.WriteString("|")
		}
		s.WriteString(sequenceString(b, useLabels))
	}
	s.WriteString(close)
	return s.String()
}

func sequenceString(seq []*node, useLabels bool) string {
	s := make([]string, len(seq))
	for i := range seq {
		s[i] = seq[i].string(useLabels)
	}
	return strings.Join(s, " ")
}

func (n *node) tagString(useLabels bool) string {
	if n.isPlaceholder() && n.placeholderLabel != "" {
		if useLabels {
			return fmt.Sprintf("<%s>", n.placeholderLabel)
		}
		return fmt.Sprintf("%%<%s>%c", n.placeholderLabel, n.tag[1])
	}
	return n.tag
}

// tagVerbose returns a readable version of the tag field, using labels if
// possible.
func (n *node) tagVerbose() string {
	if n.isPlaceholder() {
		if n.placeholderLabel != "" {
			return n.placeholderLabel
		}

		switch n.tag {
		case "%S":
			return "string argument"
		case "%N":
			return "numeric argument"
		case "%P":
			return "floating-point argument"
		case "%F":
			return "filename argument"
		default:
			return "placeholder argument"
		}
	}
	return n.tag
}

// isPlaceholder checks tag to see if it is a placeholder. does not check to
// see if placeholder is valid.
func (n *node) isPlaceholder() bool {
	return n.typ == nodeLeaf && len(n.tag) == 2 && n.tag[0] == '%'
}

// isKeyword is true if the node is a leaf that must be matched literally.
func (n *node) isKeyword() bool {
	return n.typ == nodeLeaf && !n.isPlaceholder()
}
