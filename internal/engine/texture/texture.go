// Package texture uploads CPU images into OpenGL textures.
package texture

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Options control sampling of an uploaded texture.
type Options struct {
	// Nearest selects NEAREST filtering; otherwise LINEAR.
	Nearest bool
	// Repeat selects REPEAT wrapping; otherwise CLAMP_TO_EDGE.
	Repeat bool
}

// Upload creates a 2D RGBA texture from img and returns its ID.
// Requires a current OpenGL context.
func Upload(img *image.RGBA, opts Options) (uint32, error) {
	if err := checkImage(img); err != nil {
		return 0, err
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)

	filter := int32(gl.LINEAR)
	if opts.Nearest {
		filter = gl.NEAREST
	}
	wrap := int32(gl.CLAMP_TO_EDGE)
	if opts.Repeat {
		wrap = gl.REPEAT
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return texID, nil
}

// Delete frees a texture created by Upload. Zero IDs are ignored.
func Delete(texID *uint32) {
	if *texID != 0 {
		gl.DeleteTextures(1, texID)
		*texID = 0
	}
}

// checkImage rejects images GL cannot take as one tightly packed block.
func checkImage(img *image.RGBA) error {
	if img == nil {
		return fmt.Errorf("nil image")
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("empty image %dx%d", w, h)
	}
	if img.Stride != w*4 {
		return fmt.Errorf("image stride %d is not tightly packed for width %d", img.Stride, w)
	}
	return nil
}
