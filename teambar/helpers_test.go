package teambar

import (
	"image"
	"image/color"
)

// testIcon builds an ICON_W x ICON_H icon with a seed-dependent gradient so
// every channel has variance and different seeds stay distinguishable.
func testIcon(seed int) *image.RGBA {
	icon := image.NewRGBA(image.Rect(0, 0, ICON_W, ICON_H))
	for y := 0; y < ICON_H; y++ {
		for x := 0; x < ICON_W; x++ {
			off := y*icon.Stride + x*4
			icon.Pix[off+0] = uint8((x*7 + seed) % 250)
			icon.Pix[off+1] = uint8((y*9 + seed*3) % 250)
			icon.Pix[off+2] = uint8((x*3 + y*5 + seed*7) % 250)
			icon.Pix[off+3] = 0xFF
		}
	}
	return icon
}

// testMask builds an opaque mask with a transparent one-pixel border and a
// half-transparent second ring, exercising all three blend regimes.
func testMask() *image.Gray {
	mask := image.NewGray(image.Rect(0, 0, ICON_W, ICON_H))
	for y := 0; y < ICON_H; y++ {
		for x := 0; x < ICON_W; x++ {
			a := uint8(255)
			if x == 0 || y == 0 || x == ICON_W-1 || y == ICON_H-1 {
				a = 0
			} else if x == 1 || y == 1 || x == ICON_W-2 || y == ICON_H-2 {
				a = 128
			}
			mask.SetGray(x, y, color.Gray{Y: a})
		}
	}
	return mask
}

// testFrame builds a CAPTURE_W-wide frame filled with bgA on the left half
// and bgB on the right half, so both background swatches read correctly.
func testFrame(bgA, bgB RGB) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, CAPTURE_W, 144))
	for y := 0; y < 144; y++ {
		for x := 0; x < CAPTURE_W; x++ {
			bg := bgA
			if x >= CAPTURE_W/2 {
				bg = bgB
			}
			off := y*frame.Stride + x*4
			frame.Pix[off+0] = bg[0]
			frame.Pix[off+1] = bg[1]
			frame.Pix[off+2] = bg[2]
			frame.Pix[off+3] = 0xFF
		}
	}
	return frame
}

// placeIcon composites icon over the frame at the given top-left point using
// the same blend the detector fuses templates with.
func placeIcon(dst *image.RGBA, icon *image.RGBA, mask *image.Gray, at image.Point) {
	w, h := icon.Rect.Dx(), icon.Rect.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := int(mask.GrayAt(x, y).Y)
			off := dst.PixOffset(at.X+x, at.Y+y)
			srcOff := y*icon.Stride + x*4
			for c := 0; c < 3; c++ {
				v := (int(icon.Pix[srcOff+c])*a + int(dst.Pix[off+c])*(255-a) + 127) / 255
				dst.Pix[off+c] = uint8(v)
			}
		}
	}
}
