// Package glbackend draws the ui command stream with OpenGL. Commands are
// batched into quads by renderer2d; this package owns the GL objects and
// executes the batches.
package glbackend

import (
	"fmt"
	"log/slog"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/nui/engine/colors"
	"github.com/hubastard/nui/engine/core"
	"github.com/hubastard/nui/engine/gfx/renderer2d"
	"github.com/hubastard/nui/engine/text"
	"github.com/hubastard/nui/engine/ui"
)

const maxQuads = 10000

type RendererGL struct {
	win   core.Window
	r2d   *renderer2d.Renderer2D
	atlas *text.Atlas

	program uint32
	uVP     int32
	vao     uint32
	vbo     uint32
	ebo     uint32
	tex     uint32

	width, height int
}

// NewRendererGL needs the window's GL context to be current. The atlas is
// uploaded once and also measures text for the ui.
func NewRendererGL(win core.Window, atlas *text.Atlas) (*RendererGL, error) {
	w, h := win.FramebufferSize()
	r := &RendererGL{win: win, atlas: atlas, width: w, height: h}
	r.r2d = renderer2d.New(r, atlas, maxQuads)
	if err := r.Init(); err != nil {
		r.Shutdown()
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	var err error
	r.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	r.uVP = gl.GetUniformLocation(r.program, gl.Str("uVP\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// Buffers are sized for the largest batch and refilled per draw.
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, maxQuads*4*renderer2d.VertexStride*4, nil, gl.DYNAMIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, maxQuads*6*4, nil, gl.DYNAMIC_DRAW)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec4 aColor;
	// layout(location = 2) in vec2 aUV;
	const stride = renderer2d.VertexStride * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(6*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	img := r.atlas.Image
	gl.GenTextures(1, &r.tex)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.UseProgram(r.program)
	gl.Uniform1i(gl.GetUniformLocation(r.program, gl.Str("uTex\x00")), 0)
	gl.UseProgram(0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	slog.Debug("gl renderer ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"atlas", img.Rect.Dx(), "glyphs", len(r.atlas.Glyphs))
	return nil
}

func (r *RendererGL) Shutdown() {
	if r.tex != 0 {
		gl.DeleteTextures(1, &r.tex)
		r.tex = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

// Measure implements ui.Measurer with the atlas text is drawn from.
func (r *RendererGL) Measure(s string) (w, h int) { return r.atlas.Measure(s) }

func (r *RendererGL) Resize(w, h int) {
	r.width, r.height = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(c colors.Color) {
	f := c.Floats()
	gl.ClearColor(f[0], f[1], f[2], f[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Render batches src into quads and draws them, applying every scissor
// command with gl.Scissor.
func (r *RendererGL) Render(src ui.CommandSource) {
	gl.UseProgram(r.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.BindVertexArray(r.vao)
	gl.Enable(gl.SCISSOR_TEST)

	r.r2d.BeginScene(r.width, r.height)
	r.r2d.Render(src)
	r.r2d.EndScene()

	gl.Disable(gl.SCISSOR_TEST)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
}

// Stats reports what the last Render drew.
func (r *RendererGL) Stats() renderer2d.Statistics { return r.r2d.Stats() }

// DrawBatch implements renderer2d.Backend.
func (r *RendererGL) DrawBatch(vp [16]float32, verts []float32, inds []uint32) {
	gl.UniformMatrix4fv(r.uVP, 1, false, &vp[0])
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	// The element buffer binding is part of the bound VAO.
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(inds)*4, gl.Ptr(inds))
	gl.DrawElements(gl.TRIANGLES, int32(len(inds)), gl.UNSIGNED_INT, nil)
}

// SetScissor implements renderer2d.Backend. GL scissor boxes have a
// bottom-left origin.
func (r *RendererGL) SetScissor(x, y, w, h int) {
	gl.Scissor(int32(x), int32(r.height-(y+h)), int32(max(w, 0)), int32(max(h, 0)))
}

// --- Shader utilities ---

const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec4 aColor;
layout(location=2) in vec2 aUV;
uniform mat4 uVP;
out vec4 vColor;
out vec2 vUV;
void main() {
    vColor = aColor;
    vUV = aUV;
    gl_Position = uVP * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const fragmentSource = `
#version 330 core
in vec4 vColor;
in vec2 vUV;
uniform sampler2D uTex;
out vec4 FragColor;
void main() {
    FragColor = vColor * texture(uTex, vUV);
}
` + "\x00"

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
