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

package console

import (
	"fmt"

	"github.com/jetsetilly/emuconsole/console/commandline"
)

// console keywords.
const (
	cmdHelp = "HELP"
	cmdQuit = "QUIT"

	// bridge
	cmdDump       = "DUMP"
	cmdDumpFile   = "DUMPFILE"
	cmdUART       = "UART"
	cmdExternal   = "EXTERNAL"
	cmdSleep      = "SLEEP"
	cmdEcho       = "ECHO"
	cmdNext       = "NEXT"
	cmdGetEnv     = "GETENV"
	cmdConsoleLog = "CONSOLELOG"

	// machine
	cmdPeek        = "PEEK"
	cmdPoke        = "POKE"
	cmdLoad        = "LOAD"
	cmdPeripherals = "PERIPHERALS"
	cmdMemMap      = "MEMMAP"

	// meta
	cmdScript = "SCRIPT"
	cmdLog    = "LOG"
	cmdPrefs  = "PREFS"
	cmdMemViz = "MEMVIZ"
)

var commandTemplate = []string{
	cmdQuit,

	cmdDump + " %<start>N %<count>N (%<width>N)",
	cmdDumpFile + " %<start>N %<count>N %<file>F",
	cmdUART + " %<device>S",
	cmdExternal + " (LIST|PORTS|OPEN %<port>S (%<baud>N)|CLOSE %<name>S|CONNECT %<name>S)",
	cmdSleep + " %<seconds>P",
	cmdEcho + " {%<text>S}",
	cmdNext + " (%<offset>N|RESET)",
	cmdGetEnv + " %<variable>S",
	cmdConsoleLog + " {%<text>S}",

	cmdPeek + " %<address>N {%<address>N}",
	cmdPoke + " %<address>N %<value>N {%<value>N}",
	cmdLoad + " %<file>F %<address>N",
	cmdPeripherals,
	cmdMemMap,

	cmdScript + " [RECORD (%<new file>F)|END|%<file>F]",
	cmdLog + " (LAST|RECENT|CLEAR)",
	cmdPrefs + " (LIST|SAVE|LOAD|SET %<key>S %<value>S)",
	cmdMemViz + " (%<file>F)",
}

var consoleCommands *commandline.Commands

func init() {
	var err error

	consoleCommands, err = commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		panic(fmt.Errorf("error compiling command template: %w", err))
	}

	err = consoleCommands.AddHelp(cmdHelp, helps)
	if err != nil {
		panic(fmt.Errorf("error compiling command template: %w", err))
	}
}
