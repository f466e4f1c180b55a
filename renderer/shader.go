package renderer

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/pthm-cable/heatfield/shaders"
)

// Program wraps the linked heatmap shader program together with the
// attribute and uniform locations the draw path binds every frame.
type Program struct {
	ID        uint32
	PosAttrib uint32
	TexAttrib uint32

	samplerLoc int32
	linked     bool
}

// LoadProgram reads both shader sources, compiles them, and links the
// program. Every failure along the way is logged and left behind: an
// unreadable file compiles as empty source, and a program that failed to
// compile or link still draws, producing undefined output. Only the log
// tells the difference.
func LoadProgram(vertexPath, fragmentPath string) *Program {
	vertexSrc, err := shaders.ReadSource(vertexPath)
	if err != nil {
		slog.Error("failed to read shader file", "path", vertexPath, "error", err)
	}
	fragmentSrc, err := shaders.ReadSource(fragmentPath)
	if err != nil {
		slog.Error("failed to read shader file", "path", fragmentPath, "error", err)
	}

	vertex, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		slog.Error("shader compile failed", "path", vertexPath, "error", err)
	}
	fragment, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		slog.Error("shader compile failed", "path", fragmentPath, "error", err)
	}

	id, err := linkProgram(vertex, fragment)
	linked := err == nil
	if err != nil {
		slog.Error("shader program link failed", "error", err)
	}

	// The linked program holds its own references
	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	p := &Program{ID: id, linked: linked}
	p.PosAttrib = uint32(gl.GetAttribLocation(id, gl.Str(shaders.AttribPos+"\x00")))
	p.TexAttrib = uint32(gl.GetAttribLocation(id, gl.Str(shaders.AttribTexCoord+"\x00")))
	p.samplerLoc = gl.GetUniformLocation(id, gl.Str(shaders.UniformSampler+"\x00"))
	return p
}

// Use activates the program and points its sampler at texture unit 0.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
	gl.Uniform1i(p.samplerLoc, 0)
}

// Linked reports whether the program linked successfully.
func (p *Program) Linked() bool {
	return p.linked
}

// Unload releases the program object.
func (p *Program) Unload() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// compileShader compiles a single shader stage. On failure it returns the
// shader handle anyway, alongside an error carrying the compiler's info log.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))

		return shader, fmt.Errorf("compile failed: %v", strings.TrimRight(infoLog, "\x00"))
	}

	return shader, nil
}

// linkProgram links the two stages into one program. On failure it returns
// the program handle anyway, alongside an error carrying the linker's info
// log.
func linkProgram(vertex, fragment uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))

		return program, fmt.Errorf("link failed: %v", strings.TrimRight(infoLog, "\x00"))
	}

	return program, nil
}
