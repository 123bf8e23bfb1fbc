package roster

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// rosterLog is the sub-logger for the roster module, with module=roster field.
var rosterLog zerolog.Logger = log.With().Str("module", "roster").Logger()

var (
	entries  []Entry
	loadOnce sync.Once
	loadErr  error
)

// 默认图标目录相对路径（基于 install 根目录）
const defaultIconDir = "resource/teambar/icons"

// envResourceRoot overrides the install-root resolution when set.
const envResourceRoot = "OW_AGENT_RESOURCE_ROOT"

// Init loads the reference roster on first call. The roster is read-only
// afterwards; later calls return the first outcome.
func Init() error {
	loadOnce.Do(func() {
		dir, err := resolveIconDir()
		if err != nil {
			rosterLog.Error().Err(err).Msg("failed to resolve icon directory")
			loadErr = err
			return
		}
		rosterLog.Info().Str("iconDir", dir).Msg("resolved icon directory")

		e, err := Load(dir)
		if err != nil {
			rosterLog.Error().Err(err).Msg("failed to load roster")
			loadErr = err
			return
		}
		entries = e
	})
	return loadErr
}

// Get returns the loaded roster, loading it first if needed.
func Get() ([]Entry, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return entries, nil
}

// resolveIconDir prefers the env override, then walks up from the
// executable, and falls back to the current working directory.
// resolveIconDir 优先环境变量，其次从可执行文件向上查找，最后回退到工作目录。
func resolveIconDir() (string, error) {
	if base := os.Getenv(envResourceRoot); base != "" {
		installPath := filepath.Join(base, defaultIconDir)
		if dirExists(installPath) {
			return installPath, nil
		}
	}

	if exe, err := os.Executable(); err == nil && exe != "" {
		exeDir := filepath.Dir(exe)
		for i := 0; i < 4; i++ {
			candidate := filepath.Join(exeDir, defaultIconDir)
			if dirExists(candidate) {
				return candidate, nil
			}
			parent := filepath.Dir(exeDir)
			if parent == exeDir {
				break
			}
			exeDir = parent
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, defaultIconDir), nil
}

// dirExists checks if a directory exists at path.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
