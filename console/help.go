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

var helps = map[string]string{
	cmdHelp: "Lists commands and provides help for individual commands.",
	cmdQuit: "Exits the console.",

	cmdDump: `Prints a hex and ASCII dump of memory. Each row begins with the address of
the first byte in the row. The width is the number of bytes per row, the
default is taken from the console.dumpwidth preference.`,
	cmdDumpFile: `Writes memory to a file, byte for byte. The file is created or truncated.
The file is not touched if the memory cannot be read.`,
	cmdUART: `Connects the terminal to a UART. Characters received from the UART are
printed and keys are sent to the UART. Press <ESC> to disconnect.`,
	cmdExternal: `Manages external devices. PORTS lists the serial ports on the host. OPEN
adds a serial port as an external device. CONNECT bridges the terminal to an
external device in the same way as the UART command.`,
	cmdSleep:      "Pauses the console for the number of seconds. Fractions are allowed.",
	cmdEcho:       "Prints text. If the first argument is -n then no newline is printed.",
	cmdNext:       "Prints the session counter plus the offset and then increments the counter.",
	cmdGetEnv:     "Prints the value of an environment variable. Nothing is printed if the variable is not set.",
	cmdConsoleLog: "Adds text to the log of the host process.",

	cmdPeek:        "Prints the byte at one or more memory addresses.",
	cmdPoke:        "Writes one or more bytes to memory, starting at the address.",
	cmdLoad:        "Loads a binary file into memory at the address.",
	cmdPeripherals: "Lists the peripherals of the machine and any external devices.",
	cmdMemMap:      "Prints the address map of the system bus.",

	cmdScript: `Runs commands from a script file. RECORD writes subsequent commands to a new
script file until SCRIPT END. Commands that fail are not recorded.`,
	cmdLog:    "Prints the log. LAST prints the most recent entry and RECENT the entries not yet seen.",
	cmdPrefs:  "Lists, sets, saves or loads the console preferences.",
	cmdMemViz: "Writes a graphviz rendering of the machine's memory map.",
}
