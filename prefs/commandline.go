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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// the command line stack is a list of groups of key/value pairs. only the top
// of the stack is ever consulted.
var commandLineStack []map[string]Value

// separators used in a prefs string. for example:
//
//	vid_windowed::true; vid_mode::800x600
const (
	pairSeparator     = ";"
	keyValueSeparator = "::"
)

// parse prefs string into key/value pairs. pairs without a key/value
// separator are ignored.
func parse(prefs string) map[string]Value {
	cl := make(map[string]Value)
	for _, p := range strings.Split(prefs, pairSeparator) {
		kv := strings.Split(p, keyValueSeparator)
		if len(kv) == 2 {
			k := strings.TrimSpace(kv[0])
			if k != "" {
				cl[k] = strings.TrimSpace(kv[1])
			}
		}
	}
	return cl
}

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PushCommandLineStack parses a prefs string and adds it as a new group. The
// number of valid key/value pairs is returned.
func PushCommandLineStack(prefs string) int {
	cl := parse(prefs)
	commandLineStack = append(commandLineStack, cl)
	return len(cl)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the "unused" preferences of the stack entry as a prefs string with
// the keys sorted.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(popped))
	for key := range popped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, key := range keys {
		s = append(s, fmt.Sprintf("%s%s%v", key, keyValueSeparator, popped[key]))
	}

	return strings.Join(s, pairSeparator+" ")
}

// GetCommandLinePref value from current group. The value is deleted when it
// is returned.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	cl := commandLineStack[len(commandLineStack)-1]
	if v, ok := cl[key]; ok {
		delete(cl, key)
		return true, v
	}

	return false, nil
}
