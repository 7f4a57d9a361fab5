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

package terminal

import (
	"fmt"
	"strings"
)

// Prompt specifies the prompt text and the prompt style.
type Prompt struct {
	Content string

	// the console is recording input to a script
	Recording bool
}

// String returns the prompt with "standard" decoration.
func (p Prompt) String() string {
	content := strings.TrimSpace(p.Content)
	if p.Recording {
		return fmt.Sprintf("[ (rec) %s ] > ", content)
	}
	return fmt.Sprintf("[ %s ] > ", content)
}
