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

package accelerated

import (
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/retrovga/vgavideo/curated"
	"github.com/retrovga/vgavideo/logger"
)

// Sentinal error patterns.
const (
	CompileError = "ogl: %s shader: %s"
	LinkError    = "ogl: program: %s"
)

func shaderName(kind uint32) string {
	if kind == gl.VERTEX_SHADER {
		return "vertex"
	}
	return "fragment"
}

// compileShader returns the handle of the compiled shader. A non-empty
// compiler log for a successful compilation is logged as a warning.
func compileShader(kind uint32, source []byte) (uint32, error) {
	handle := gl.CreateShader(kind)
	if handle == 0 {
		return 0, curated.Errorf(CompileError, shaderName(kind), "cannot create shader")
	}

	csource, free := gl.Strs(string(source) + "\x00")
	gl.ShaderSource(handle, 1, csource, nil)
	free()

	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)

	var length int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &length)
	log := infoLog(length, func(l int32, b *uint8) {
		gl.GetShaderInfoLog(handle, l, nil, b)
	})

	if status == gl.FALSE {
		gl.DeleteShader(handle)
		if log == "" {
			log = "generic compile error"
		}
		logger.Errorf(logger.Allow, tag, "%s shader: %s", shaderName(kind), log)
		return 0, curated.Errorf(CompileError, shaderName(kind), log)
	}

	if log != "" {
		logger.Warnf(logger.Allow, tag, "%s shader: %s", shaderName(kind), log)
	}

	return handle, nil
}

// linkProgram returns the handle of a program containing the vertex and
// fragment shaders. A non-empty linker log for a successful link is logged as
// a warning.
func linkProgram(vert uint32, frag uint32) (uint32, error) {
	handle := gl.CreateProgram()
	if handle == 0 {
		return 0, curated.Errorf(LinkError, "cannot create program")
	}

	gl.AttachShader(handle, vert)
	gl.AttachShader(handle, frag)
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)

	var length int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &length)
	log := infoLog(length, func(l int32, b *uint8) {
		gl.GetProgramInfoLog(handle, l, nil, b)
	})

	if status == gl.FALSE {
		gl.DeleteProgram(handle)
		if log == "" {
			log = "generic link error"
		}
		logger.Errorf(logger.Allow, tag, "program: %s", log)
		return 0, curated.Errorf(LinkError, log)
	}

	if log != "" {
		logger.Warnf(logger.Allow, tag, "program: %s", log)
	}

	return handle, nil
}

// infoLog returns the log retrieved by the get function. The length includes
// the terminating null.
func infoLog(length int32, get func(int32, *uint8)) string {
	if length <= 1 {
		return ""
	}
	b := make([]uint8, length)
	get(length, &b[0])
	return strings.TrimSpace(strings.TrimRight(string(b), "\x00"))
}
