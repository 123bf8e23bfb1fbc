package teambar

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// tbLog 是 teambar 模块的子日志器，自动携带 module=teambar 字段。
//
// tbLog is the sub-logger for the teambar module, with module=teambar field.
// All logs in the teambar package use this logger instead of manually
// prefixing "teambar:".
var tbLog zerolog.Logger = log.With().Str("module", "teambar").Logger()
