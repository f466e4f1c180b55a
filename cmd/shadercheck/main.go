// Shader check tool - validates the GLSL sources against the pipeline interface
// without creating a GL context.
//
// Usage: go run ./cmd/shadercheck -vertex shaders/vertex_shader.glsl
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pthm-cable/heatfield/shaders"
)

func main() {
	vertexPath := flag.String("vertex", shaders.DefaultVertexPath, "Path to vertex shader")
	fragmentPath := flag.String("fragment", shaders.DefaultFragmentPath, "Path to fragment shader")
	flag.Parse()

	failed := false
	check := func(stage shaders.Stage, path string) {
		src, err := shaders.ReadSource(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", stage, err)
			failed = true
			return
		}
		for _, problem := range shaders.Validate(stage, src) {
			fmt.Fprintf(os.Stderr, "%s (%s): %s\n", stage, path, problem)
			failed = true
		}
	}

	check(shaders.VertexStage, *vertexPath)
	check(shaders.FragmentStage, *fragmentPath)

	if failed {
		os.Exit(1)
	}
	fmt.Println("Shader sources OK")
}
