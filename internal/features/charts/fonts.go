package charts

import (
	"os"
	"path/filepath"

	logging "csv-charts/internal/infra/log"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// fontPaths are tried in order when no font is configured.
var fontPaths = []string{
	"etc/fonts/DejaVuSans.ttf",
	"./etc/fonts/DejaVuSans.ttf",
	"~/Library/Fonts/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

// Fonts hands out TrueType faces by size. Without a usable font file every
// size maps to basicfont.Face7x13.
type Fonts struct {
	path  string
	faces map[float64]font.Face
}

// NewFonts resolves configured, or the first readable entry of fontPaths.
func NewFonts(configured string) *Fonts {
	f := &Fonts{faces: make(map[float64]font.Face)}

	candidates := fontPaths
	if configured != "" {
		candidates = append([]string{configured}, fontPaths...)
	}
	for _, p := range candidates {
		p = expandPath(p)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if _, err := gg.LoadFontFace(p, 12); err != nil {
			logging.LogWarn("Font file exists but failed to load", zap.String("path", p), zap.Error(err))
			continue
		}
		f.path = p
		logging.LogInfo("Loaded chart font", zap.String("path", p))
		return f
	}

	logging.LogWarn("No TrueType font found, using basic bitmap font",
		zap.Int("paths_checked", len(candidates)))
	return f
}

// Path is the TrueType file in use, or "" for the bitmap fallback.
func (f *Fonts) Path() string {
	return f.path
}

// Use sets the face of dc to the given point size.
func (f *Fonts) Use(dc *gg.Context, size float64) {
	dc.SetFontFace(f.face(size))
}

func (f *Fonts) face(size float64) font.Face {
	if f == nil || f.path == "" {
		return basicfont.Face7x13
	}
	if face, ok := f.faces[size]; ok {
		return face
	}
	face, err := gg.LoadFontFace(f.path, size)
	if err != nil {
		logging.LogWarn("Failed to load font size, using basic bitmap font",
			zap.String("path", f.path), zap.Float64("size", size), zap.Error(err))
		return basicfont.Face7x13
	}
	f.faces[size] = face
	return face
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
