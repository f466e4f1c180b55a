// Package shaders names the GLSL interface shared between the render
// pipeline and the shader source files, and reads and validates those files.
package shaders

import (
	"fmt"
	"os"
	"strings"
)

// GLSL version required by the GL 2.1 context.
const Version = "120"

// Identifiers the pipeline binds by name.
const (
	AttribPos      = "aPos"
	AttribTexCoord = "aTexCoord"
	VaryingName    = "TexCoord"
	UniformSampler = "heatmapTexture"
)

// Default source file locations relative to the working directory.
const (
	DefaultVertexPath   = "shaders/vertex_shader.glsl"
	DefaultFragmentPath = "shaders/fragment_shader.glsl"
)

// Stage identifies which pipeline stage a source file feeds.
type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

// String returns the stage name as it appears in diagnostics.
func (s Stage) String() string {
	if s == VertexStage {
		return "vertex"
	}
	return "fragment"
}

// ReadSource returns the full contents of a shader source file.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading shader file: %w", err)
	}
	return string(data), nil
}

// Validate checks a shader source against the interface the pipeline binds.
// It returns one message per problem found, or nil if the source declares
// everything the pipeline expects. The checks are textual; the GL compiler
// has the final say at program build time.
func Validate(stage Stage, source string) []string {
	var problems []string

	if !strings.Contains(source, "#version "+Version) {
		problems = append(problems, "missing #version "+Version+" directive")
	}

	var required []string
	switch stage {
	case VertexStage:
		required = []string{AttribPos, AttribTexCoord, VaryingName}
	case FragmentStage:
		required = []string{UniformSampler, VaryingName}
	}

	for _, name := range required {
		if !strings.Contains(source, name) {
			problems = append(problems, fmt.Sprintf("missing declaration of %q", name))
		}
	}

	return problems
}
