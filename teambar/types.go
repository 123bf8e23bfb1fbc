package teambar

import (
	"errors"
	"image"
)

// Side 表示队伍所在的半边（A 为左侧队伍，B 为右侧队伍）。
// Side identifies a team panel: A is the left team, B the right team.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "Unknown"
	}
}

// RGB is one sampled panel color, channel order R, G, B.
type RGB [3]uint8

// Candidate is one roster entry offered to the matcher. Icon and Mask must
// have identical dimensions; the roster loader guarantees this for entries
// it produces.
type Candidate struct {
	Name string
	Icon *image.RGBA
	Mask *image.Gray
}

// DetectionResult maps the 1-based global slot index (1..12) to the winning
// character name. Slots 1-6 belong to team A, 7-12 to team B.
type DetectionResult map[int]string

var (
	// ErrOutOfBounds means the frame does not contain a region the layout
	// requires. The whole detection call fails; no partial result.
	ErrOutOfBounds = errors.New("teambar: region outside frame bounds")
	// ErrDimensionMismatch means a candidate's icon and alpha mask differ in
	// size. Malformed roster entry; should have been rejected at load time.
	ErrDimensionMismatch = errors.New("teambar: icon and mask dimensions differ")
	// ErrEmptyRoster means no candidates were supplied, so best-match is
	// undefined.
	ErrEmptyRoster = errors.New("teambar: empty roster")
)

// SlotSide reports which team panel a 1-based global slot index belongs to.
func SlotSide(slot int) Side {
	if slot > SLOTS_PER_TEAM {
		return SideB
	}
	return SideA
}
