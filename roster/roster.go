package roster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/owvision/ow-agent/go-service/pkg/imgutil"
)

// Canonical reference icon size (width x height). Source images of any other
// size are rescaled to this on load.
const (
	IconW = 32
	IconH = 25
)

// 图标文件命名约定：<角色名>.png 为图标，<角色名>_mask.png 为透明度蒙版。
// File naming convention: <name>.png is the icon, <name>_mask.png its alpha
// mask. Both must decode to the same pixel size.
const maskSuffix = "_mask.png"

// Entry is one reference character: its icon at full opacity and the
// per-pixel opacity mask the icon is composited with.
type Entry struct {
	Name string
	Icon *image.RGBA
	Mask *image.Gray
}

// ErrDimensionMismatch means an icon and its mask decode to different sizes.
var ErrDimensionMismatch = errors.New("roster: icon and mask dimensions differ")

// Load reads every icon/mask pair from dir and returns an ordered roster.
// Entries are sorted by character name so the roster order (and with it the
// matcher's tie-break) does not depend on directory iteration order.
//
// A mismatched icon/mask size is rejected here, at construction time, so the
// detection core never sees a malformed entry.
func Load(dir string) ([]Entry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("roster: reading icon dir: %w", err)
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		base := f.Name()
		if f.IsDir() || !strings.HasSuffix(base, ".png") || strings.HasSuffix(base, maskSuffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(base, ".png"))
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("roster: no icon files in %s", dir)
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		icon, err := decodePNG(filepath.Join(dir, name+".png"))
		if err != nil {
			return nil, err
		}
		mask, err := decodePNG(filepath.Join(dir, name+maskSuffix))
		if err != nil {
			return nil, err
		}
		if icon.Bounds().Dx() != mask.Bounds().Dx() || icon.Bounds().Dy() != mask.Bounds().Dy() {
			return nil, fmt.Errorf("%w: entry %q: icon %v, mask %v",
				ErrDimensionMismatch, name, icon.Bounds().Size(), mask.Bounds().Size())
		}

		entries = append(entries, Entry{
			Name: name,
			Icon: scaleRGBA(imgutil.EnsureRGBA(icon), IconW, IconH),
			Mask: scaleGray(toGray(mask), IconW, IconH),
		})
	}

	rosterLog.Info().
		Str("dir", dir).
		Int("characters", len(entries)).
		Msg("roster loaded")
	return entries, nil
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roster: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("roster: decoding %s: %w", path, err)
	}
	return img, nil
}

func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	bounds := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, bounds.Min, xdraw.Src)
	return dst
}

func scaleRGBA(src *image.RGBA, w, h int) *image.RGBA {
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

func scaleGray(src *image.Gray, w, h int) *image.Gray {
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		return src
	}
	dst := image.NewGray(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
