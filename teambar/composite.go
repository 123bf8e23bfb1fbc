package teambar

import (
	"fmt"
	"image"
)

// FuseIcon alpha-blends a reference icon over a solid panel color, producing
// the template the icon is compared as: what the character actually looks
// like on that team's panel. For every pixel and channel:
//
//	fused = icon*alpha/255 + bg*(255-alpha)/255
//
// rounded to the nearest 8-bit value. The background is broadcast uniformly;
// the panel behind the icons is a solid fill, not a texture.
//
// The result depends on the panel color, so a fused template is only valid
// for the frame and side it was built for.
func FuseIcon(icon *image.RGBA, mask *image.Gray, bg RGB) (*image.RGBA, error) {
	w, h := icon.Rect.Dx(), icon.Rect.Dy()
	if mask.Rect.Dx() != w || mask.Rect.Dy() != h {
		return nil, fmt.Errorf("%w: icon %dx%d, mask %dx%d",
			ErrDimensionMismatch, w, h, mask.Rect.Dx(), mask.Rect.Dy())
	}

	fused := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srcOff := icon.PixOffset(icon.Rect.Min.X, icon.Rect.Min.Y+y)
		maskOff := mask.PixOffset(mask.Rect.Min.X, mask.Rect.Min.Y+y)
		dstOff := y * fused.Stride
		for x := 0; x < w; x++ {
			a := int(mask.Pix[maskOff+x])
			for c := 0; c < 3; c++ {
				v := (int(icon.Pix[srcOff+x*4+c])*a + int(bg[c])*(255-a) + 127) / 255
				fused.Pix[dstOff+x*4+c] = uint8(v)
			}
			fused.Pix[dstOff+x*4+3] = 0xFF
		}
	}
	return fused, nil
}
