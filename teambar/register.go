package teambar

import (
	"github.com/MaaXYZ/maa-framework-go/v4"

	"github.com/owvision/ow-agent/go-service/roster"
)

// Ensure interface compliance at compile time.
// 编译期保证接口实现。
var (
	_ maa.CustomRecognitionRunner = &DetectRecognition{}
)

// Register is called from main.go to register custom components.
// Register 在 main.go 中调用，用于注册组件。
func Register() {
	if err := roster.Init(); err != nil {
		// 只记录日志，不阻止注册；避免因为资源缺失直接崩溃。
		// Log only, do not block registration; avoid crash on missing icons.
		tbLog.Warn().Err(err).Msg("roster not ready during Register (will retry lazily)")
	}

	maa.AgentServerRegisterCustomRecognition("TeamBarDetect", &DetectRecognition{})
	tbLog.Info().Msg("registered custom recognition")
}
