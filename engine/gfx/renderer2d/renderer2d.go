// Package renderer2d batches the ui command stream into textured quads. It
// owns no GPU state: finished batches and scissor changes go to a Backend.
package renderer2d

import (
	"github.com/hubastard/nui/engine/colors"
	"github.com/hubastard/nui/engine/text"
	"github.com/hubastard/nui/engine/ui"
)

// Vertex: pos2 + color4 + uv2 => 8 floats
const VertexStride = 8
const vertsPerQuad = 4
const indsPerQuad = 6

const defaultMaxQuads = 10000

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls int
	QuadCount int
	Scissors  int // scissor changes sent to the backend
	Culled    int // quads and text commands entirely outside the clip
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

// Backend draws finished batches. Positions are pixels with the origin at
// the top-left; vp maps them to clip space. Every batch samples the atlas
// texture.
type Backend interface {
	DrawBatch(vp [16]float32, verts []float32, inds []uint32)
	// SetScissor clips later batches to a box in top-left pixel space.
	SetScissor(x, y, w, h int)
}

type Renderer2D struct {
	backend Backend
	atlas   *text.Atlas

	verts     []float32
	inds      []uint32
	quadCount int
	maxQuads  int

	vp    [16]float32
	view  ui.Box
	clip  ui.Box
	stats Statistics
}

// New creates a batcher drawing glyphs and solid quads from atlas. maxQuads
// bounds one batch; zero or less selects a default.
func New(backend Backend, atlas *text.Atlas, maxQuads int) *Renderer2D {
	if maxQuads <= 0 {
		maxQuads = defaultMaxQuads
	}
	return &Renderer2D{
		backend:  backend,
		atlas:    atlas,
		maxQuads: maxQuads,
		verts:    make([]float32, 0, maxQuads*vertsPerQuad*VertexStride),
		inds:     make([]uint32, 0, maxQuads*indsPerQuad),
	}
}

// MaxQuads is the largest batch DrawBatch will receive.
func (rd *Renderer2D) MaxQuads() int { return rd.maxQuads }

// Atlas returns the atlas quads sample from.
func (rd *Renderer2D) Atlas() *text.Atlas { return rd.atlas }

// BeginScene starts a frame over a w x h viewport and resets the clip to it.
func (rd *Renderer2D) BeginScene(w, h int) {
	rd.vp = Ortho(w, h)
	rd.view = ui.Box{W: w, H: h}
	rd.clip = rd.view
	rd.stats = Statistics{}
	rd.resetBatch()
	rd.backend.SetScissor(0, 0, w, h)
}

func (rd *Renderer2D) EndScene() { rd.flush() }

// Stats returns the current frame statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// Clip is the scissor box currently in effect.
func (rd *Renderer2D) Clip() ui.Box { return rd.clip }

// SetScissor clips later quads to b, flushing the pending batch first when
// the clip changes.
func (rd *Renderer2D) SetScissor(b ui.Box) {
	c := b.Intersect(rd.view)
	if c == rd.clip {
		return
	}
	rd.flush()
	rd.clip = c
	rd.stats.Scissors++
	rd.backend.SetScissor(c.X, c.Y, c.W, c.H)
}

// DrawQuad draws a solid axis-aligned quad with its top-left at (x, y).
func (rd *Renderer2D) DrawQuad(x, y, w, h float32, color colors.Color) {
	u, v := rd.atlas.WhiteU, rd.atlas.WhiteV
	rd.DrawTexturedQuadUV(x, y, w, h, color, u, v, u, v)
}

// DrawTexturedQuadUV draws an atlas sub-rect (u0,v0 -> u1,v1) tinted by
// color. Quads entirely outside the clip are dropped.
func (rd *Renderer2D) DrawTexturedQuadUV(x, y, w, h float32, color colors.Color, u0, v0, u1, v1 float32) {
	if rd.outside(x, y, w, h) {
		rd.stats.Culled++
		return
	}
	rd.ensureQuadCapacity()
	c := color.Floats()

	// corners (TL, TR, BL, BR) with UVs. Positive Y goes down.
	corners := [4][4]float32{
		{x, y, u0, v0},
		{x + w, y, u1, v0},
		{x, y + h, u0, v1},
		{x + w, y + h, u1, v1},
	}
	startVertex := uint32(len(rd.verts) / VertexStride)
	for _, p := range corners {
		rd.verts = append(rd.verts,
			p[0], p[1],
			c[0], c[1], c[2], c[3],
			p[2], p[3],
		)
	}
	rd.inds = append(rd.inds,
		startVertex+0, startVertex+2, startVertex+1,
		startVertex+1, startVertex+2, startVertex+3,
	)
	rd.quadCount++
	rd.stats.QuadCount++
}

// Render drains src, turning rects into quads and text into glyph quads.
// Scissor commands apply in stream order.
func (rd *Renderer2D) Render(src ui.CommandSource) {
	for {
		cmd, ok := src.NextCommand()
		if !ok {
			return
		}
		switch cmd := cmd.(type) {
		case ui.RectCommand:
			a := cmd.Area
			rd.DrawQuad(float32(a.X), float32(a.Y), float32(a.W), float32(a.H), cmd.Color)
		case ui.TextCommand:
			w, h := rd.atlas.Measure(cmd.Text)
			if rd.outside(float32(cmd.X), float32(cmd.Y), float32(w), float32(h)) {
				rd.stats.Culled++
				continue
			}
			rd.DrawText(float32(cmd.X), float32(cmd.Y), cmd.Text, cmd.Color)
		case ui.ScissorCommand:
			rd.SetScissor(cmd.Area)
		}
	}
}

// --- internals ---

func (rd *Renderer2D) outside(x, y, w, h float32) bool {
	c := rd.clip
	if c.Empty() || w <= 0 || h <= 0 {
		return true
	}
	return x >= float32(c.X+c.W) || y >= float32(c.Y+c.H) ||
		x+w <= float32(c.X) || y+h <= float32(c.Y)
}

func (rd *Renderer2D) flush() {
	if rd.quadCount == 0 {
		return
	}
	rd.backend.DrawBatch(rd.vp, rd.verts, rd.inds)
	rd.stats.DrawCalls++
	rd.resetBatch()
}

func (rd *Renderer2D) resetBatch() {
	rd.verts = rd.verts[:0]
	rd.inds = rd.inds[:0]
	rd.quadCount = 0
}

func (rd *Renderer2D) ensureQuadCapacity() {
	if rd.quadCount >= rd.maxQuads {
		rd.flush()
	}
}

// Ortho maps pixel coordinates with a top-left origin onto clip space. The
// matrix is column-major.
func Ortho(w, h int) [16]float32 {
	sx, sy := 2/float32(max(w, 1)), 2/float32(max(h, 1))
	return [16]float32{
		sx, 0, 0, 0,
		0, -sy, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}
