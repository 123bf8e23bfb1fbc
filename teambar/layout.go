package teambar

import (
	"fmt"
	"image"

	"github.com/owvision/ow-agent/go-service/pkg/imgutil"
)

// Layout holds the team bar geometry as data: the background swatch pixel of
// each panel and the crop rectangle of each of the 12 slots. Keeping the
// geometry in a table lets other capture resolutions swap in their own
// coordinates without touching the matching code.
type Layout struct {
	// BGSample is indexed by Side.
	BGSample [2]image.Point
	// Slots is indexed by global slot index minus one (0..11).
	Slots [SLOT_COUNT]image.Rectangle
}

// DefaultLayout returns the geometry of the observed 1280-wide capture:
// six 38x30 slots per team on one row, 71 px apart, team A starting at
// x=62 and team B at x=857.
func DefaultLayout() Layout {
	var l Layout
	l.BGSample[SideA] = image.Pt(BG_SAMPLE_A_X, BG_SAMPLE_A_Y)
	l.BGSample[SideB] = image.Pt(BG_SAMPLE_B_X, BG_SAMPLE_B_Y)
	for i := 0; i < SLOTS_PER_TEAM; i++ {
		ax := TEAM_A_SLOT_START_X + i*SLOT_STRIDE_X
		bx := TEAM_B_SLOT_START_X + i*SLOT_STRIDE_X
		l.Slots[i] = image.Rect(ax, SLOT_Y, ax+SLOT_W, SLOT_Y+SLOT_H)
		l.Slots[i+SLOTS_PER_TEAM] = image.Rect(bx, SLOT_Y, bx+SLOT_W, SLOT_Y+SLOT_H)
	}
	return l
}

// SampleBackground reads the panel background color of one side from its
// swatch pixel. Pure read; fails with ErrOutOfBounds when the frame is
// smaller than the layout expects.
func (l Layout) SampleBackground(frame *image.RGBA, side Side) (RGB, error) {
	p := l.BGSample[side]
	if !p.In(frame.Bounds()) {
		return RGB{}, fmt.Errorf("%w: background sample %v for side %s, frame %v",
			ErrOutOfBounds, p, side, frame.Bounds())
	}
	off := frame.PixOffset(p.X, p.Y)
	return RGB{frame.Pix[off], frame.Pix[off+1], frame.Pix[off+2]}, nil
}

// CropSlot copies the fixed rectangle of a 1-based global slot index out of
// the frame. The returned image is anchored at (0,0) and owns its pixels.
func (l Layout) CropSlot(frame *image.RGBA, slot int) (*image.RGBA, error) {
	if slot < 1 || slot > SLOT_COUNT {
		return nil, fmt.Errorf("teambar: slot index %d out of range 1..%d", slot, SLOT_COUNT)
	}
	r := l.Slots[slot-1]
	if !r.In(frame.Bounds()) {
		return nil, fmt.Errorf("%w: slot %d rect %v, frame %v",
			ErrOutOfBounds, slot, r, frame.Bounds())
	}
	return imgutil.CopySubImage(frame, r), nil
}
