package display

import (
	"os"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

const (
	// DefaultFontPath is the DejaVu sans face shipped on Raspberry Pi OS.
	DefaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
	fontSize        = 15
)

// LoadFace loads the configured TrueType face. Unavailability is a
// soft-fail: the built-in bitmap font is returned instead of an error so a
// missing font never stops the panel.
func LoadFace(path string, logger *zap.Logger) font.Face {
	if path == "" {
		path = DefaultFontPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("truetype font unavailable, using builtin bitmap font",
			zap.String("path", path), zap.Error(err))
		return basicfont.Face7x13
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		logger.Warn("truetype font unreadable, using builtin bitmap font",
			zap.String("path", path), zap.Error(err))
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		logger.Warn("truetype face creation failed, using builtin bitmap font",
			zap.String("path", path), zap.Error(err))
		return basicfont.Face7x13
	}
	return face
}
