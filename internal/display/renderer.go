// Package display renders scoreboards as text frames for a small panel.
package display

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"scorepanel/pkg/models"
)

// Layout selects how one game maps onto text lines.
type Layout int

const (
	// LayoutSingleLine draws "Away 3 @ Home 2 (Final)" per game.
	LayoutSingleLine Layout = iota
	// LayoutTwoLine draws away and home on separate lines with team
	// names truncated to fit the narrow canvas.
	LayoutTwoLine
)

const (
	canvasWidth  = 240
	canvasHeight = 240
	originX      = 10
	originY      = 10
	lineSpacing  = 20
	maxTeamChars = 10

	emptyBoardMessage = "No games found."
)

// Device is the sink for rendered frames.
type Device interface {
	Draw(img image.Image) error
}

// Renderer converts a ScoreBoard into a bitmap and pushes it to the device.
// Layout carries no state between calls; every frame starts from a fresh
// white canvas.
type Renderer struct {
	device Device
	face   font.Face
	layout Layout
	dwell  time.Duration
	logger *zap.Logger
}

// NewRenderer creates a renderer. dwell is how long a pushed frame is held
// before Render returns, so a human can read it before the next cycle.
func NewRenderer(device Device, face font.Face, layout Layout, dwell time.Duration, logger *zap.Logger) *Renderer {
	return &Renderer{
		device: device,
		face:   face,
		layout: layout,
		dwell:  dwell,
		logger: logger,
	}
}

// Render draws the board onto a fresh canvas and pushes it to the device.
// Games past the bottom of the canvas are silently dropped; an empty board
// renders the literal "No games found." line.
func (r *Renderer) Render(board models.ScoreBoard) error {
	img := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: r.face,
	}
	ascent := r.face.Metrics().Ascent.Ceil()

	lines := layoutLines(board, r.layout)
	y := originY
	for _, line := range lines {
		drawer.Dot = fixed.P(originX, y+ascent)
		drawer.DrawString(line)
		y += lineSpacing
	}
	r.logger.Debug("frame composed", zap.Int("games", len(board)), zap.Int("lines", len(lines)))

	if err := r.device.Draw(img); err != nil {
		return fmt.Errorf("pushing frame to display: %w", err)
	}

	if r.dwell > 0 {
		time.Sleep(r.dwell)
	}
	return nil
}

// layoutLines produces the text lines for one frame, bounded by the canvas:
// drawing stops once the next line would start below height - lineSpacing.
func layoutLines(board models.ScoreBoard, layout Layout) []string {
	if len(board) == 0 {
		return []string{emptyBoardMessage}
	}

	var lines []string
	y := originY
	for _, game := range board {
		for _, line := range formatGame(game, layout) {
			if y > canvasHeight-lineSpacing {
				return lines
			}
			lines = append(lines, line)
			y += lineSpacing
		}
	}
	return lines
}

func formatGame(game models.GameSummary, layout Layout) []string {
	if layout == LayoutTwoLine {
		return []string{
			fmt.Sprintf("%s %d", truncate(game.AwayTeam, maxTeamChars), game.AwayScore),
			fmt.Sprintf("%s %d", truncate(game.HomeTeam, maxTeamChars), game.HomeScore),
		}
	}
	return []string{
		fmt.Sprintf("%s %d @ %s %d (%s)",
			game.AwayTeam, game.AwayScore, game.HomeTeam, game.HomeScore, game.Status),
	}
}

// truncate cuts s to max characters. Team names carry accented runes, so
// the cut counts runes, never bytes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max])
	}
	return s
}
