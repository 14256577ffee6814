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

// Group is a collection of named preferences. Values for the group are taken
// from the command line stack with the Load() function.
//
// There is no persistence for a Group. Values live for the lifetime of the
// program.
type Group struct {
	entries map[string]Pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]Pref),
	}
}

// Add preference value to group using the specified key. The key must be
// unique within the group.
func (grp *Group) Add(key string, p Pref) error {
	if _, ok := grp.entries[key]; ok {
		return fmt.Errorf("prefs: key %s already exists", key)
	}
	grp.entries[key] = p
	return nil
}

// Get returns the preference for the key.
func (grp *Group) Get(key string) (Pref, bool) {
	p, ok := grp.entries[key]
	return p, ok
}

// Load values from the current command line group. Only keys in the Group are
// consumed from the command line group. An error is returned for the first
// value that cannot be converted to the preference's type.
func (grp *Group) Load() error {
	for _, k := range grp.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := grp.entries[k].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}
	return nil
}

// Reset all preferences in the group to their zero values.
func (grp *Group) Reset() error {
	for _, k := range grp.keys() {
		if err := grp.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

func (grp *Group) keys() []string {
	keys := make([]string, 0, len(grp.entries))
	for k := range grp.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns the group in the same format accepted by
// PushCommandLineStack(). Only values that have been set are included.
func (grp *Group) String() string {
	s := strings.Builder{}
	for _, k := range grp.keys() {
		p := grp.entries[k]
		if p.IsSet() {
			s.WriteString(fmt.Sprintf("%s::%s; ", k, p.String()))
		}
	}
	return strings.TrimSuffix(s.String(), "; ")
}
