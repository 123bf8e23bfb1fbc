package teambar

import (
	"image"
	"math"
)

// DegenerateScore is the score assigned to a channel whose normalized
// cross-correlation is undefined (constant template or constant search
// window, i.e. zero variance). Using the worst possible value keeps NaN out
// of the comparisons while still letting a slot pick some winner.
const DegenerateScore = -1.0

// nccEps guards the variance terms against float underflow.
const nccEps = 1e-12

// MatchScore scores a fused template against a slot crop. The template is
// slid over every position it fits inside the crop; per color channel the
// peak of the zero-mean normalized cross-correlation surface is taken, and
// the three channel peaks are averaged into one score in [-1, 1].
//
// Higher is better. No absolute threshold is applied here; selection is
// always relative to the other candidates of the same slot.
func MatchScore(tmpl, crop *image.RGBA) float64 {
	var sum float64
	for c := 0; c < 3; c++ {
		sum += channelPeak(tmpl, crop, c)
	}
	return sum / 3
}

// channelPeak computes the peak normalized cross-correlation of one color
// channel. Equivalent to OpenCV's TM_CCOEFF_NORMED followed by minMaxLoc:
// both template and window are mean-centered before correlating.
func channelPeak(tmpl, crop *image.RGBA, c int) float64 {
	tw, th := tmpl.Rect.Dx(), tmpl.Rect.Dy()
	cw, ch := crop.Rect.Dx(), crop.Rect.Dy()
	if tw == 0 || th == 0 || tw > cw || th > ch {
		// No valid alignment exists.
		return DegenerateScore
	}

	// Mean-centered template values and their squared sum, computed once.
	n := tw * th
	tvals := make([]float64, n)
	var tsum float64
	for y := 0; y < th; y++ {
		off := tmpl.PixOffset(tmpl.Rect.Min.X, tmpl.Rect.Min.Y+y) + c
		for x := 0; x < tw; x++ {
			v := float64(tmpl.Pix[off+x*4])
			tvals[y*tw+x] = v
			tsum += v
		}
	}
	tmean := tsum / float64(n)
	var tvar float64
	for i := range tvals {
		tvals[i] -= tmean
		tvar += tvals[i] * tvals[i]
	}
	if tvar < nccEps {
		// Flat template channel correlates with nothing.
		return DegenerateScore
	}

	peak := DegenerateScore
	for dy := 0; dy <= ch-th; dy++ {
		for dx := 0; dx <= cw-tw; dx++ {
			var ssum float64
			for y := 0; y < th; y++ {
				off := crop.PixOffset(crop.Rect.Min.X+dx, crop.Rect.Min.Y+dy+y) + c
				for x := 0; x < tw; x++ {
					ssum += float64(crop.Pix[off+x*4])
				}
			}
			smean := ssum / float64(n)

			var dot, svar float64
			for y := 0; y < th; y++ {
				off := crop.PixOffset(crop.Rect.Min.X+dx, crop.Rect.Min.Y+dy+y) + c
				row := y * tw
				for x := 0; x < tw; x++ {
					sv := float64(crop.Pix[off+x*4]) - smean
					dot += tvals[row+x] * sv
					svar += sv * sv
				}
			}
			if svar < nccEps {
				// Flat window, correlation undefined at this position.
				continue
			}
			if score := dot / math.Sqrt(tvar*svar); score > peak {
				peak = score
			}
		}
	}
	return peak
}
