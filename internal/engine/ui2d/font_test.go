package ui2d

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestFontAtlasGlyphs(t *testing.T) {
	f := newFontAtlas(basicfont.Face7x13)

	gw, gh := f.GlyphSize()
	if gw != 7 || gh != 13 {
		t.Fatalf("GlyphSize() = %dx%d, want 7x13", gw, gh)
	}

	if cov := f.coverage('A'); cov == 0 {
		t.Error("glyph 'A' has no coverage")
	}
	if cov := f.coverage(' '); cov != 0 {
		t.Errorf("space has coverage %d, want 0", cov)
	}
}

func TestFontUnknownRuneFallsBack(t *testing.T) {
	f := newFontAtlas(basicfont.Face7x13)

	u0, v0, u1, v1 := f.GetGlyphUV('é')
	q0, r0, q1, r1 := f.GetGlyphUV('?')
	if u0 != q0 || v0 != r0 || u1 != q1 || v1 != r1 {
		t.Error("non-ASCII rune should map to '?'")
	}
}

func TestFontGlyphUVInRange(t *testing.T) {
	f := newFontAtlas(basicfont.Face7x13)
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		u0, v0, u1, v1 := f.GetGlyphUV(r)
		if u0 < 0 || v0 < 0 || u1 > 1 || v1 > 1 || u0 >= u1 || v0 >= v1 {
			t.Fatalf("rune %q has UV (%v,%v)-(%v,%v)", r, u0, v0, u1, v1)
		}
	}
}

func TestFontMeasureText(t *testing.T) {
	f := newFontAtlas(basicfont.Face7x13)

	tests := []struct {
		text  string
		scale float32
		w, h  float32
	}{
		{"", 1, 0, 13},
		{"rotation", 1, 56, 13},
		{"ab\nlonger", 1, 42, 26},
		{"x", 2, 14, 26},
	}
	for _, tt := range tests {
		w, h := f.MeasureText(tt.text, tt.scale)
		if w != tt.w || h != tt.h {
			t.Errorf("MeasureText(%q, %v) = %vx%v, want %vx%v", tt.text, tt.scale, w, h, tt.w, tt.h)
		}
	}
}

// coverage sums the alpha of a glyph's atlas cell.
func (f *Font) coverage(r rune) int {
	col, row := f.cell(r)
	sum := 0
	for y := row * f.glyphH; y < (row+1)*f.glyphH; y++ {
		for x := col * f.glyphW; x < (col+1)*f.glyphW; x++ {
			sum += int(f.atlas.RGBAAt(x, y).A)
		}
	}
	return sum
}
