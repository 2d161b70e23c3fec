package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
}

func TestCaptureFromPixelsFlipsRows(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "shot")
	sc.now = fixedClock

	// 1x2 image: bottom row red, top row blue (OpenGL order).
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	path, err := sc.CaptureFromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels() error: %v", err)
	}
	if want := filepath.Join(dir, "shot_2024-03-09_14-05-07.png"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	r, _, b, _ := img.At(0, 0).RGBA()
	if b == 0 || r != 0 {
		t.Error("top row should be blue after flip")
	}
	r, _, b, _ = img.At(0, 1).RGBA()
	if r == 0 || b != 0 {
		t.Error("bottom row should be red after flip")
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "shot")
	if _, err := sc.CaptureFromPixels(make([]byte, 10), 2, 2); err == nil {
		t.Error("expected error for short pixel buffer")
	}
	if _, err := sc.CaptureFromPixels(nil, 0, 0); err == nil {
		t.Error("expected error for empty size")
	}
}

func TestGenerateFilenameAvoidsOverwrite(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "shot")
	sc.now = fixedClock

	first := sc.GenerateFilename()
	if err := os.WriteFile(first, nil, 0644); err != nil {
		t.Fatal(err)
	}

	second := sc.GenerateFilename()
	if second == first {
		t.Fatalf("second filename %s overwrites the first", second)
	}
	if want := filepath.Join(dir, "shot_2024-03-09_14-05-07_2.png"); second != want {
		t.Errorf("second = %s, want %s", second, want)
	}
}
