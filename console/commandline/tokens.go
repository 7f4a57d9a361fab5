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
	"unicode"
)

// Tokens represents tokenised input. Can be used to walk through the input
// string (using Get()) for easy interpretation.
type Tokens struct {
	input  string
	tokens []string
	curr   int
}

func (tk *Tokens) String() string {
	return tk.input
}

// Reset begins the token traversal process from the beginning.
func (tk *Tokens) Reset() {
	tk.curr = 0
}

// End the token traversal process. It can be restarted with the Reset()
// function.
func (tk *Tokens) End() {
	tk.curr = len(tk.tokens)
}

// IsEnd returns true if we're at the end of the token list.
func (tk *Tokens) IsEnd() bool {
	return tk.curr >= len(tk.tokens)
}

// Remainder returns the remaining tokens as a string.
func (tk *Tokens) Remainder() string {
	return strings.Join(tk.tokens[tk.curr:], " ")
}

// Remaining returns the count of remaining tokens in the token list.
func (tk *Tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// Len returns the total number of tokens.
func (tk *Tokens) Len() int {
	return len(tk.tokens)
}

// Get returns the next token in the list, and a success boolean. If the end
// of the token list has been reached, the function returns false instead of
// true.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// GetAll returns all remaining tokens. The token list will be at the end
// after this function.
func (tk *Tokens) GetAll() []string {
	s := make([]string, len(tk.tokens)-tk.curr)
	copy(s, tk.tokens[tk.curr:])
	tk.End()
	return s
}

// Unget walks backwards in the token list.
func (tk *Tokens) Unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

// Update the most recently returned token.
func (tk *Tokens) Update(s string) {
	if tk.curr > 0 {
		tk.tokens[tk.curr-1] = s
	}
}

// Peek returns the next token in the list (without advancing the list), and a
// success boolean. If the end of the token list has been reached, the
// function returns false instead of true.
func (tk *Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// TokeniseInput creates and returns a new Tokens instance.
//
// Tokens are separated by white space. A token can contain spaces if it is
// enclosed in double quotes. Numbers written in the $ hexadecimal notation
// are normalised to the 0x notation unless they are quoted.
func TokeniseInput(input string) *Tokens {
	input = strings.TrimSpace(input)
	return &Tokens{
		input:  input,
		tokens: tokeniseInput(input),
	}
}

// tokeniseInput is the "raw" tokenising function. used by TokeniseInput() and
// TabCompletion.Complete()
func tokeniseInput(input string) []string {
	var toks []string

	s := strings.Builder{}
	started := false
	quoted := false
	inQuote := false

	endToken := func() {
		t := s.String()
		if !quoted && len(t) > 1 && t[0] == '$' && isHex(t[1:]) {
			t = fmt.Sprintf("0x%s", t[1:])
		}
		toks = append(toks, t)
		s.Reset()
		started = false
		quoted = false
	}

	for _, r := range input {
		switch {
		case inQuote:
			if r == '"' {
				inQuote = false
			} else {
				s.WriteRune(r)
			}
		case r == '"':
			inQuote = true
			quoted = true
			started = true
		case unicode.IsSpace(r):
			if started {
				endToken()
			}
		default:
			s.WriteRune(r)
			started = true
		}
	}

	if started {
		endToken()
	}

	return toks
}

func isHex(s string) bool {
	for _, r := range s {
		if !unicode.Is(unicode.ASCII_Hex_Digit, r) {
			return false
		}
	}
	return true
}
