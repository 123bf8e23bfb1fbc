package teambar

import (
	"image"
	"strings"

	"github.com/MaaXYZ/maa-framework-go/v4"
	"github.com/bytedance/sonic"

	"github.com/owvision/ow-agent/go-service/pkg/imgutil"
	"github.com/owvision/ow-agent/go-service/pkg/maafocus"
	"github.com/owvision/ow-agent/go-service/roster"
)

// DetectRecognition 是自定义识别器：对截图中的队伍栏运行角色检测。
// DetectRecognition is a custom recognition that runs team bar character
// detection on the captured frame.
//
// Pipeline 可通过 CustomRecognitionParam 传入参数，例如：
//
//	{
//	  "resource_dir": "resource/teambar/icons",
//	  "team_colors": {"Fuel": [57, 154, 211], "Shock": [229, 25, 32]}
//	}
//
// Both fields are optional. resource_dir overrides the default roster
// location; team_colors attributes each side's panel to the nearest of the
// given colors and reports it in the detail.
type DetectRecognition struct{}

type detectParam struct {
	ResourceDir string              `json:"resource_dir"`
	TeamColors  map[string][3]uint8 `json:"team_colors"`
}

type detectDetail struct {
	Slots DetectionResult   `json:"slots"`
	Teams map[string]string `json:"teams,omitempty"`
}

// Run implements CustomRecognitionRunner.
func (r *DetectRecognition) Run(ctx *maa.Context, arg *maa.CustomRecognitionArg) (*maa.CustomRecognitionResult, bool) {
	tbLog.Info().
		Str("recognition", arg.CustomRecognitionName).
		Msg("starting team bar detection")

	var param detectParam
	if arg.CustomRecognitionParam != "" {
		if err := sonic.UnmarshalString(arg.CustomRecognitionParam, &param); err != nil {
			tbLog.Error().Err(err).Str("param", arg.CustomRecognitionParam).Msg("failed to parse recognition param")
			return &maa.CustomRecognitionResult{Box: arg.Roi, Detail: `{}`}, false
		}
	}

	img := arg.Img
	if img == nil {
		tbLog.Error().Msg("captured image is nil")
		return &maa.CustomRecognitionResult{Box: arg.Roi, Detail: `{}`}, false
	}

	candidates, err := loadCandidates(param.ResourceDir)
	if err != nil {
		tbLog.Error().Err(err).Msg("roster unavailable")
		return &maa.CustomRecognitionResult{Box: arg.Roi, Detail: `{}`}, false
	}

	layout := DefaultLayout()
	result, err := Detect(img, candidates, layout)
	if err != nil {
		tbLog.Error().Err(err).Msg("team bar detection failed")
		return &maa.CustomRecognitionResult{Box: arg.Roi, Detail: `{}`}, false
	}

	detail := detectDetail{Slots: result}
	if len(param.TeamColors) > 0 {
		detail.Teams = attributeTeams(img, layout, param.TeamColors)
	}

	data, err := sonic.MarshalString(detail)
	if err != nil {
		tbLog.Error().Err(err).Msg("failed to marshal detection detail")
		return &maa.CustomRecognitionResult{Box: arg.Roi, Detail: `{}`}, false
	}

	if err := maafocus.NodeActionStarting(ctx, summarize(result, detail.Teams)); err != nil {
		tbLog.Warn().Err(err).Msg("failed to surface detection summary")
	}

	tbLog.Info().Str("detail", data).Msg("team bar detection done")
	return &maa.CustomRecognitionResult{Box: arg.Roi, Detail: data}, true
}

// summarize renders the detection as one line per team for the UI.
func summarize(result DetectionResult, teams map[string]string) string {
	var b strings.Builder
	for _, side := range []Side{SideA, SideB} {
		label := side.String()
		if name, ok := teams[label]; ok && name != "" {
			label = name
		}
		b.WriteString(label)
		b.WriteString(":")
		for i := 1; i <= SLOTS_PER_TEAM; i++ {
			slot := i
			if side == SideB {
				slot += SLOTS_PER_TEAM
			}
			b.WriteString(" ")
			b.WriteString(result[slot])
		}
		if side == SideA {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// loadCandidates returns the roster as matcher candidates. An explicit dir
// bypasses the cached default roster; the default is loaded once and reused.
func loadCandidates(dir string) ([]Candidate, error) {
	var entries []roster.Entry
	var err error
	if dir != "" {
		entries, err = roster.Load(dir)
	} else {
		entries, err = roster.Get()
	}
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, len(entries))
	for i, e := range entries {
		candidates[i] = Candidate{Name: e.Name, Icon: e.Icon, Mask: e.Mask}
	}
	return candidates, nil
}

// attributeTeams names each side's panel after the configured team color
// nearest to its background swatch.
func attributeTeams(img image.Image, layout Layout, colors map[string][3]uint8) map[string]string {
	rgba := imgutil.EnsureRGBA(img)
	teams := make(map[string]string, 2)
	for _, side := range []Side{SideA, SideB} {
		bg, err := layout.SampleBackground(rgba, side)
		if err != nil {
			tbLog.Warn().Err(err).Stringer("side", side).Msg("cannot sample panel color for team attribution")
			continue
		}
		teams[side.String()] = imgutil.NearestTeam([3]uint8(bg), colors)
	}
	return teams
}
