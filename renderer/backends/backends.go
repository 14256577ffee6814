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

// Package backends creates any of the renderer backends by kind. It is kept
// apart from the renderer package so that code that only needs the contract
// does not depend on SDL or OpenGL.
package backends

import (
	"github.com/retrovga/vgavideo/curated"
	"github.com/retrovga/vgavideo/renderer"
	"github.com/retrovga/vgavideo/renderer/accelerated"
	"github.com/retrovga/vgavideo/renderer/headless"
	"github.com/retrovga/vgavideo/renderer/software"
)

// New creates a backend of the requested kind. The Auto kind is resolved
// before creation.
func New(kind renderer.Kind) (renderer.Backend, error) {
	switch kind.Resolve() {
	case renderer.Software:
		return software.NewBackend(), nil
	case renderer.Accelerated:
		return accelerated.NewBackend(), nil
	case renderer.Headless:
		return headless.NewBackend(), nil
	}
	return nil, curated.Errorf(renderer.KindError, kind)
}
