// This file is part of tmdsgen.
//
// tmdsgen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tmdsgen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tmdsgen.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag wraps the flag package in the Go standard library. It
// handles program modes (and sub-modes) and allows different flags for each
// mode.
//
// Arguments are supplied with NewArgs() and then parsed with Parse(), which
// takes no arguments. This allows the same argument list to be parsed in
// layers, one layer per mode.
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("ALL", "LUT", "VERIFY")
//	p, err := md.Parse()
//
// The first sub-mode is the default. Sub-mode comparisons are case
// insensitive and Mode() returns the sub-mode in upper case.
//
// Once a mode has been selected, NewMode() starts a new layer with its own
// flags:
//
//	md.NewMode()
//	spec := md.AddChoice("timing", "720x480", timing.IDs(), "video timing")
//	vic := md.AddUint8("vic", 2, "video identification code")
//	p, err = md.Parse()
//
// Arguments that are neither flags nor sub-modes are available with
// RemainingArgs() and GetArg().
//
// Help is printed to the Output writer when the -help flag is present, in
// which case Parse() returns ParseHelp. A choice flag with a value that is not
// in its list, or a flag that does not parse, causes Parse() to return
// ParseError with a curated.InvalidInput error.
package modalflag
