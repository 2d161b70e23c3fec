// Package renderer provides OpenGL rendering of the lit letter mesh.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/dirlight/internal/engine/model"
	"github.com/Faultbox/dirlight/internal/engine/renderer/shaders"
	"github.com/Faultbox/dirlight/internal/engine/shader"
	"github.com/Faultbox/dirlight/internal/logger"
	"github.com/Faultbox/dirlight/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
}

// Uniforms is everything the directional lighting program needs per draw.
type Uniforms struct {
	WorldViewProjection   math.Mat4
	WorldInverseTranspose math.Mat4
	Color                 [4]float32
	ReverseLightDirection math.Vec3
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	program uint32

	// Attribute locations
	locPosition uint32
	locNormal   uint32

	// Uniform locations
	locWorldViewProjection   int32
	locWorldInverseTranspose int32
	locColor                 int32
	locReverseLight          int32

	// Static mesh buffers, uploaded once
	vao         uint32
	positionVBO uint32
	normalVBO   uint32
	vertexCount int32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	// A failed init means there is no usable graphics context.
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.DepthFunc(gl.LESS)

	var err error
	r.program, err = shader.CompileProgram(shaders.DirectionalVertexShader, shaders.DirectionalFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	if err := r.lookupLocations(); err != nil {
		gl.DeleteProgram(r.program)
		return nil, err
	}

	logger.Debug("directional light program created", zap.Uint32("program", r.program))
	return r, nil
}

// lookupLocations resolves attribute and uniform locations once.
func (r *Renderer) lookupLocations() error {
	var err error
	if r.locPosition, err = shader.GetAttrib(r.program, "a_position"); err != nil {
		return err
	}
	if r.locNormal, err = shader.GetAttrib(r.program, "a_normal"); err != nil {
		return err
	}

	locs, err := shader.Uniforms(r.program,
		"u_worldViewProjection",
		"u_worldInverseTranspose",
		"u_color",
		"u_reverseLightDirection",
	)
	if err != nil {
		return err
	}
	r.locWorldViewProjection = locs["u_worldViewProjection"]
	r.locWorldInverseTranspose = locs["u_worldInverseTranspose"]
	r.locColor = locs["u_color"]
	r.locReverseLight = locs["u_reverseLightDirection"]
	return nil
}

// Upload puts the mesh into two static buffers: positions and normals,
// three tightly packed floats per vertex each. Call once.
func (r *Renderer) Upload(mesh *model.Mesh) error {
	if mesh == nil || mesh.VertexCount() == 0 {
		return fmt.Errorf("empty mesh")
	}
	if len(mesh.Normals) != len(mesh.Positions) {
		return fmt.Errorf("mesh has %d position floats but %d normal floats",
			len(mesh.Positions), len(mesh.Normals))
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	r.positionVBO = uploadAttribute(r.locPosition, mesh.Positions)
	r.normalVBO = uploadAttribute(r.locNormal, mesh.Normals)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.vertexCount = int32(mesh.VertexCount())

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", r.vao),
		zap.Int32("vertices", r.vertexCount),
	)
	return nil
}

// uploadAttribute creates a static buffer for data and points the attribute
// at it. The caller's VAO must be bound.
func uploadAttribute(loc uint32, data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(loc)
	gl.VertexAttribPointerWithOffset(loc, 3, gl.FLOAT, false, 0, 0)
	return vbo
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.positionVBO != 0 {
		gl.DeleteBuffers(1, &r.positionVBO)
	}
	if r.normalVBO != 0 {
		gl.DeleteBuffers(1, &r.normalVBO)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame: clears colour and depth and turns on back-face
// culling and depth testing.
func (r *Renderer) Begin() {
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
}

// DrawMesh draws the uploaded mesh with the given transforms and light.
func (r *Renderer) DrawMesh(u Uniforms) {
	if r.vertexCount == 0 {
		return
	}

	gl.UseProgram(r.program)

	gl.UniformMatrix4fv(r.locWorldViewProjection, 1, false, u.WorldViewProjection.Ptr())
	gl.UniformMatrix4fv(r.locWorldInverseTranspose, 1, false, u.WorldInverseTranspose.Ptr())
	gl.Uniform4fv(r.locColor, 1, &u.Color[0])

	light := u.ReverseLightDirection.Array()
	gl.Uniform3fv(r.locReverseLight, 1, &light[0])

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// ReadPixels reads back the current framebuffer as tightly packed RGBA,
// bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}
