package ui2d

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/dirlight/internal/engine/texture"
)

// Printable ASCII range baked into the atlas.
const (
	firstGlyph = 32
	lastGlyph  = 126
	atlasCols  = 16
)

// Font is a fixed-width bitmap font baked into a single texture.
// Unknown runes render as '?'.
type Font struct {
	textureID uint32

	glyphW, glyphH int
	atlasW, atlasH int
	atlas          *image.RGBA
}

// NewFont rasterises the built-in 7x13 face and uploads it as a texture.
// Requires a current OpenGL context.
func NewFont() (*Font, error) {
	f := newFontAtlas(basicfont.Face7x13)

	var err error
	f.textureID, err = texture.Upload(f.atlas, texture.Options{Nearest: true})
	if err != nil {
		return nil, fmt.Errorf("font atlas: %w", err)
	}
	return f, nil
}

// newFontAtlas draws every printable ASCII glyph into an RGBA image whose
// alpha channel holds coverage. No GL calls.
func newFontAtlas(face *basicfont.Face) *Font {
	f := &Font{
		glyphW: face.Advance,
		glyphH: face.Height,
	}

	rows := (lastGlyph - firstGlyph + atlasCols) / atlasCols
	f.atlasW = atlasCols * f.glyphW
	f.atlasH = rows * f.glyphH
	f.atlas = image.NewRGBA(image.Rect(0, 0, f.atlasW, f.atlasH))
	draw.Draw(f.atlas, f.atlas.Bounds(), image.Transparent, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  f.atlas,
		Src:  image.White,
		Face: face,
	}
	for r := firstGlyph; r <= lastGlyph; r++ {
		col, row := f.cell(rune(r))
		d.Dot = fixed.P(col*f.glyphW, row*f.glyphH+face.Ascent)
		d.DrawString(string(rune(r)))
	}
	return f
}

// cell returns the atlas column and row of a rune.
func (f *Font) cell(r rune) (int, int) {
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	idx := int(r - firstGlyph)
	return idx % atlasCols, idx / atlasCols
}

// TextureID returns the atlas texture.
func (f *Font) TextureID() uint32 {
	return f.textureID
}

// GlyphSize returns the size of one glyph cell in pixels.
func (f *Font) GlyphSize() (int, int) {
	return f.glyphW, f.glyphH
}

// GetGlyphUV returns the texture coordinates of a rune's cell.
func (f *Font) GetGlyphUV(r rune) (u0, v0, u1, v1 float32) {
	col, row := f.cell(r)
	u0 = float32(col*f.glyphW) / float32(f.atlasW)
	v0 = float32(row*f.glyphH) / float32(f.atlasH)
	u1 = float32((col+1)*f.glyphW) / float32(f.atlasW)
	v1 = float32((row+1)*f.glyphH) / float32(f.atlasH)
	return
}

// MeasureText returns the width and height of text at the given scale.
// Lines are split on '\n'.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	lines, longest, cur := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		if cur > longest {
			longest = cur
		}
	}
	return float32(longest*f.glyphW) * scale, float32(lines*f.glyphH) * scale
}

// Close deletes the texture.
func (f *Font) Close() {
	texture.Delete(&f.textureID)
}
