package teambar

import (
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/owvision/ow-agent/go-service/pkg/imgutil"
)

// Detect assigns a roster character to every slot of the team bar in one
// captured frame.
//
// Per side, the panel background color is sampled once and every roster icon
// is fused over it once; the fused templates are then scored against each of
// the side's six slot crops and the best-scoring candidate wins the slot.
// Ties go to the candidate that appears first in roster order.
//
// Frame and roster are only read; repeated calls with the same inputs return
// the same result. Any out-of-bounds region or malformed roster entry fails
// the whole call with no partial result.
func Detect(frame image.Image, roster []Candidate, layout Layout) (DetectionResult, error) {
	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}

	rgba := imgutil.EnsureRGBA(frame)

	// Fused templates depend on (candidate, side) only, never on the slot,
	// so build them once per side up front.
	var fused [2][]*image.RGBA
	for _, side := range []Side{SideA, SideB} {
		bg, err := layout.SampleBackground(rgba, side)
		if err != nil {
			return nil, err
		}
		templates := make([]*image.RGBA, len(roster))
		for j, cand := range roster {
			t, err := FuseIcon(cand.Icon, cand.Mask, bg)
			if err != nil {
				return nil, fmt.Errorf("candidate %q: %w", cand.Name, err)
			}
			templates[j] = t
		}
		fused[side] = templates
	}

	// Crop all slots before spawning workers so geometry errors surface as
	// a plain error return instead of inside the pool.
	var crops [SLOT_COUNT]*image.RGBA
	for slot := 1; slot <= SLOT_COUNT; slot++ {
		crop, err := layout.CropSlot(rgba, slot)
		if err != nil {
			return nil, err
		}
		crops[slot-1] = crop
	}

	// Each (slot, candidate) score is independent; slots are scored
	// concurrently, each worker writing only its own result cell.
	var winners [SLOT_COUNT]int
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > SLOT_COUNT {
		numWorkers = SLOT_COUNT
	}
	slotCh := make(chan int, SLOT_COUNT)
	for slot := 1; slot <= SLOT_COUNT; slot++ {
		slotCh <- slot
	}
	close(slotCh)

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for slot := range slotCh {
				templates := fused[SlotSide(slot)]
				scores := scoreSlot(crops[slot-1], templates)
				winners[slot-1] = pickWinner(scores)
			}
		}()
	}
	wg.Wait()

	result := make(DetectionResult, SLOT_COUNT)
	for slot := 1; slot <= SLOT_COUNT; slot++ {
		result[slot] = roster[winners[slot-1]].Name
	}
	tbLog.Debug().
		Int("candidates", len(roster)).
		Interface("result", result).
		Msg("team bar detection finished")
	return result, nil
}

// scoreSlot returns a fresh score list for one slot, index-aligned with the
// candidate templates. Nothing is shared across slots.
func scoreSlot(crop *image.RGBA, templates []*image.RGBA) []float64 {
	scores := make([]float64, len(templates))
	for j, t := range templates {
		scores[j] = MatchScore(t, crop)
	}
	return scores
}

// pickWinner returns the index of the maximum score. Strict comparison keeps
// the first candidate on exact ties, making selection stable in roster order.
func pickWinner(scores []float64) int {
	best := 0
	for j := 1; j < len(scores); j++ {
		if scores[j] > scores[best] {
			best = j
		}
	}
	return best
}
