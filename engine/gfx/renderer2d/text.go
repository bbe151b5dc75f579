package renderer2d

import "github.com/hubastard/nui/engine/colors"

// DrawText draws s with its top-left corner at (x, y). Positive Y goes
// downward (matching the 2D projection); '\n' starts a new line.
func (rd *Renderer2D) DrawText(x, y float32, s string, color colors.Color) {
	a := rd.atlas
	penX := x
	baseY := y + float32(a.Ascent) // move origin to top left
	var prev rune = -1

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += float32(a.LineHeight)
			prev = -1
			continue
		}

		if prev >= 0 {
			penX += a.Kern(prev, r)
		}

		g, _ := a.Glyph(r)
		// top = baseline - BearingY
		if g.W > 0 && g.H > 0 {
			rd.DrawTexturedQuadUV(
				penX+g.BearingX, baseY-g.BearingY,
				float32(g.W), float32(g.H),
				color,
				g.U0, g.V0, g.U1, g.V1,
			)
		}

		penX += g.Advance
		prev = r
	}
}
