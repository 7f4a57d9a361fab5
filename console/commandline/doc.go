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

// Package commandline facilitates parsing of command line input. Given a
// command template, it can be used to tokenise and validate user input. It
// also functions as a tab-completion engine.
//
// The Commands type is the base product of the package. To create an instance
// of Commands, use ParseCommandTemplate() with a suitable template. An example
// template would be:
//
//	template := []string {
//		"LIST",
//		"PRINT [%S]",
//		"SORT (RISING|FALLING)",
//	}
//
// The syntax of a template entry is a keyword followed by zero or more
// arguments. An argument is either a literal word or a placeholder. Arguments
// can be grouped:
//
//	[a b]   required group
//	(a b)   optional group
//	{a b}   repeating group. the group can appear zero or more times
//
// Within a group, alternatives are separated by the | symbol. Placeholders
// are:
//
//	%N   numeric argument. decimal, hexadecimal (0x or $ prefix), octal or binary
//	%P   floating-point argument
//	%S   string argument
//	%F   filename argument
//
// A placeholder can be given a label that will be used in help and error
// messages. For example, %<address>N
//
// Once parsed, the resulting Commands instance can be used to validate input.
//
//	cmds, _ := ParseCommandTemplate(template)
//	toks := TokeniseInput("list")
//	err := cmds.ValidateTokens(toks)
//	if err != nil {
//		panic("validation failed")
//	}
//
// Note that all validation is case-insensitive. Once validated the tokens can
// be processed and acted upon. The Get() function of the Tokens type is used
// to retrieve the next token in line. Handling of the tokens can be simplified
// because we know that they have passed validation. For example, using the
// above template:
//
//	option, _ := toks.Get()
//	switch strings.ToUpper(option) {
//		case "LIST":
//			list()
//		case "PRINT":
//			fmt.Println(toks.Get())
//		case "SORT":
//			rising := true
//			if s, _ := toks.Get(); strings.ToUpper(s) == "FALLING" {
//				rising = false
//			}
//			sort(data, rising)
//	}
//
// The TabCompletion type is used to transform input such that it more closely
// resembles a valid command according to the supplied template.
//
//	tbc := NewTabCompletion(cmds)
//	inp := tbc.Complete("LIS")
//
// In this instance the value of inp will be "LIST " (note the trailing space).
// Given a number of options to use for the completion, the first option will
// be returned first followed by the second, third, etc. on subsequent calls to
// Complete(). A tab completion session can be terminated with a call to
// Reset().
package commandline
