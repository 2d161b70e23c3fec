// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// DirectionalVertexShader transforms positions to clip space and normals to
// world space.
//
//go:embed directional.vert
var DirectionalVertexShader string

// DirectionalFragmentShader applies a single directional light.
//
//go:embed directional.frag
var DirectionalFragmentShader string
