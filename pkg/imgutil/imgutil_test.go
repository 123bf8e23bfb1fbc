package imgutil

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestEnsureRGBA_PassThrough(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if got := EnsureRGBA(src); got != src {
		t.Error("zero-anchored RGBA should be returned as-is")
	}
}

func TestEnsureRGBA_Converts(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.Set(1, 1, color.NRGBA{10, 20, 30, 0xFF})

	got := EnsureRGBA(src)
	if got.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds %v", got.Bounds())
	}
	r, g, b, _ := got.At(1, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("pixel (1,1) = %d,%d,%d, want 10,20,30", r>>8, g>>8, b>>8)
	}
}

func TestEnsureRGBA_ReanchorsSubImage(t *testing.T) {
	big := image.NewRGBA(image.Rect(0, 0, 10, 10))
	big.Set(5, 5, color.RGBA{9, 8, 7, 0xFF})
	sub := big.SubImage(image.Rect(4, 4, 8, 8)).(*image.RGBA)

	got := EnsureRGBA(sub)
	if got.Bounds().Min != (image.Point{}) {
		t.Fatalf("bounds %v not anchored at origin", got.Bounds())
	}
	r, _, _, _ := got.At(1, 1).RGBA()
	if r>>8 != 9 {
		t.Errorf("re-anchored pixel lost: got r=%d", r>>8)
	}
}

func TestCopySubImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, color.RGBA{uint8(x * 10), uint8(y * 10), 0, 0xFF})
		}
	}

	got := CopySubImage(src, image.Rect(2, 3, 6, 7))
	if got.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("bounds %v", got.Bounds())
	}
	r, g, _, _ := got.At(0, 0).RGBA()
	if r>>8 != 20 || g>>8 != 30 {
		t.Errorf("pixel (0,0) = %d,%d, want 20,30", r>>8, g>>8)
	}

	// Must be a copy, not a view.
	src.Set(2, 3, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
	r, _, _, _ = got.At(0, 0).RGBA()
	if r>>8 != 20 {
		t.Error("CopySubImage aliases the source pixels")
	}
}

func TestColorDistance(t *testing.T) {
	if d := ColorDistance([3]uint8{0, 0, 0}, [3]uint8{0, 0, 0}); d != 0 {
		t.Errorf("identical colors distance %f", d)
	}
	if d := ColorDistance([3]uint8{0, 0, 0}, [3]uint8{3, 4, 0}); math.Abs(d-5) > 1e-9 {
		t.Errorf("3-4-5 triangle distance %f, want 5", d)
	}
}

func TestNearestTeam(t *testing.T) {
	teams := map[string][3]uint8{
		"Fuel":  {57, 154, 211},
		"Shock": {229, 25, 32},
	}
	if got := NearestTeam([3]uint8{60, 150, 200}, teams); got != "Fuel" {
		t.Errorf("got %q, want Fuel", got)
	}
	if got := NearestTeam([3]uint8{220, 30, 40}, teams); got != "Shock" {
		t.Errorf("got %q, want Shock", got)
	}
	if got := NearestTeam([3]uint8{0, 0, 0}, nil); got != "" {
		t.Errorf("empty team map: got %q, want empty", got)
	}
}

func TestNearestTeam_TieIsDeterministic(t *testing.T) {
	teams := map[string][3]uint8{
		"B-Team": {100, 0, 0},
		"A-Team": {0, 100, 0},
	}
	// Equidistant sample; sorted name order must win, every time.
	for i := 0; i < 10; i++ {
		if got := NearestTeam([3]uint8{50, 50, 0}, teams); got != "A-Team" {
			t.Fatalf("tie resolved to %q, want A-Team", got)
		}
	}
}
