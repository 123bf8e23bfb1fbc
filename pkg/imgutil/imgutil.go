package imgutil

import (
	"image"
	"math"
	"sort"
)

// EnsureRGBA 将任意图像转换为 *image.RGBA。
// EnsureRGBA converts an arbitrary image into *image.RGBA, anchored at (0,0).
func EnsureRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			dst.Set(x, y, img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return dst
}

// CopySubImage 从源图像的指定矩形区域创建一个新的 RGBA 图像。
// CopySubImage copies rectangle r of src into a fresh RGBA image anchored at
// (0,0). The caller must have checked that r is inside src's bounds.
func CopySubImage(src *image.RGBA, r image.Rectangle) *image.RGBA {
	w, h := r.Dx(), r.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	srcBase := src.PixOffset(r.Min.X, r.Min.Y)
	for y := 0; y < h; y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+w*4],
			src.Pix[srcBase+y*src.Stride:srcBase+y*src.Stride+w*4])
	}
	return dst
}

// ColorDistance is the Euclidean distance between two RGB triples.
func ColorDistance(a, b [3]uint8) float64 {
	var sum float64
	for i := 0; i < 3; i++ {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// NearestTeam returns the name whose color is closest to the sampled panel
// color. Names are compared in sorted order so exact distance ties resolve
// the same way on every call. Empty map yields "".
func NearestTeam(sample [3]uint8, teams map[string][3]uint8) string {
	names := make([]string, 0, len(teams))
	for name := range teams {
		names = append(names, name)
	}
	sort.Strings(names)

	best := ""
	bestDist := math.MaxFloat64
	for _, name := range names {
		if d := ColorDistance(sample, teams[name]); d < bestDist {
			bestDist = d
			best = name
		}
	}
	return best
}
