// This file is part of vgavideo.
//
// vgavideo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vgavideo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vgavideo.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag wraps the flag package from the standard library and adds
// program modes. Each mode has its own set of flags.
//
// Arguments are given once with NewArgs() and then consumed by successive
// calls to Parse(). Flags for the next call are added beforehand:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "info")
//	windowed := md.AddBool("windowed", false, "open in a window")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After the call, Mode() is the sub-mode that was selected. The first sub-mode
// is the default and is selected when the argument following the flags does
// not name a sub-mode. Sub-mode comparisons are case insensitive and modes are
// reported in upper case.
//
// A second call to NewMode() and Parse() processes the arguments that follow
// the sub-mode:
//
//	switch md.Mode() {
//	case "INFO":
//		md.NewMode()
//		verbose := md.AddBool("v", false, "verbose")
//		...
//	}
package modalflag
