package teambar

// Capture layout parameters. All pixel coordinates below are tied to the
// observed 1280-wide HUD capture; other layouts go through Layout, not here.
const (
	CAPTURE_W = 1280

	// Reference icon size (width x height)
	ICON_W = 32
	ICON_H = 25

	// Slot crop size (width x height). Slightly larger than the icon so the
	// correlation search can absorb small placement jitter.
	SLOT_W = 38
	SLOT_H = 30

	SLOTS_PER_TEAM = 6
	SLOT_COUNT     = 12
)

// Team bar geometry on the default capture
const (
	TEAM_A_SLOT_START_X = 62
	TEAM_B_SLOT_START_X = 857
	SLOT_STRIDE_X       = 71
	SLOT_Y              = 48

	// Background swatch pixels, one per team panel
	BG_SAMPLE_A_X = 0
	BG_SAMPLE_A_Y = 0
	BG_SAMPLE_B_X = CAPTURE_W - 1
	BG_SAMPLE_B_Y = 0
)
