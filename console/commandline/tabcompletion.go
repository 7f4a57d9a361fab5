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
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TabCompletion should be initialised once with the instance of Commands it
// is to work with.
type TabCompletion struct {
	cmds *Commands

	// the input up to the partial token being completed
	prefix string

	matches []string
	match   int

	// the string returned by the most recent call to Complete(). if the next
	// call to Complete() is with the same string then the next match is
	// returned
	lastCompletion string
}

// NewTabCompletion initialises a new TabCompletion instance. Completion
// works best if Commands has been sorted.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{cmds: cmds}
}

// Complete transforms the input such that the last word in the input is
// expanded to meet the closest match allowed by the template. Subsequent
// calls to Complete() without an intervening call to Reset() will cycle
// through the original available options.
func (tc *TabCompletion) Complete(input string) string {
	// continue with current completion session
	if len(tc.matches) > 0 && input == tc.lastCompletion {
		tc.match = (tc.match + 1) % len(tc.matches)
		tc.lastCompletion = tc.prefix + tc.completion(tc.matches[tc.match])
		return tc.lastCompletion
	}

	tc.Reset()

	toks := tokeniseInput(input)

	// the partial token is the word to be completed. if the input ends with a
	// space then the partial token is empty
	partial := ""
	if len(toks) > 0 && !strings.HasSuffix(input, " ") {
		partial = input[strings.LastIndexAny(input, " \t")+1:]
		toks = toks[:len(toks)-1]
	}

	// partial tokens inside quotes are not completed
	if strings.Count(input, "\"")%2 == 1 {
		return input
	}

	var candidates []string
	if len(toks) == 0 {
		candidates = tc.cmds.Keywords()
	} else {
		seen := make(map[string]bool)
		for _, n := range tc.cmds.expectations(toks) {
			switch {
			case n.isKeyword():
				if !seen[n.tag] {
					seen[n.tag] = true
					candidates = append(candidates, n.tag)
				}
			case n.tag == "%F":
				for _, f := range filenames(partial) {
					if !seen[f] {
						seen[f] = true
						candidates = append(candidates, f)
					}
				}
			}
		}
	}

	upper := strings.ToUpper(partial)
	for _, c := range candidates {
		if strings.HasPrefix(c, upper) || strings.HasPrefix(c, partial) {
			tc.matches = append(tc.matches, c)
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	sort.Strings(tc.matches)

	tc.prefix = input[:len(input)-len(partial)]
	tc.lastCompletion = tc.prefix + tc.completion(tc.matches[0])
	return tc.lastCompletion
}

// directories are completed without a trailing space so that completion can
// continue into the directory
func (tc *TabCompletion) completion(match string) string {
	if strings.HasSuffix(match, string(os.PathSeparator)) {
		return match
	}
	return match + " "
}

// Reset is used to clear an outstanding completion session. Note that this
// only needs to be called if the input has changed in some other way than
// through Complete().
func (tc *TabCompletion) Reset() {
	tc.prefix = ""
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.lastCompletion = ""
}

// filenames returns the files that begin with the partial path.
func filenames(partial string) []string {
	m, err := filepath.Glob(partial + "*")
	if err != nil {
		return nil
	}
	for i := range m {
		if fi, err := os.Stat(m[i]); err == nil && fi.IsDir() {
			m[i] += string(os.PathSeparator)
		}
	}
	return m
}
