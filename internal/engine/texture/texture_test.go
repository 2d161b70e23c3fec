package texture

import (
	"image"
	"testing"
)

func TestCheckImage(t *testing.T) {
	full := image.NewRGBA(image.Rect(0, 0, 8, 4))

	tests := []struct {
		name    string
		img     *image.RGBA
		wantErr bool
	}{
		{"valid", full, false},
		{"nil", nil, true},
		{"empty", image.NewRGBA(image.Rect(0, 0, 0, 4)), true},
		{"sub image", full.SubImage(image.Rect(0, 0, 4, 4)).(*image.RGBA), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkImage(tt.img)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkImage() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
