package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(86, 95, 137)   // Muted slate
	RgbSnakeHead  = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbSnakeBody  = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbSnakeDead  = tcell.NewRGBColor(130, 130, 130) // Gray after game over
	RgbFood       = tcell.NewRGBColor(204, 0, 0)     // Red
	RgbText       = tcell.NewRGBColor(255, 255, 255) // White
	RgbHighlight  = tcell.NewRGBColor(255, 255, 0)   // Yellow prompt
	RgbGameOverBg = tcell.NewRGBColor(230, 0, 0)     // Red banner
	RgbStatusText = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// tierColor returns the selection screen color of a difficulty tier
func tierColor(tier string) tcell.Color {
	switch tier {
	case "Easy":
		return tcell.NewRGBColor(144, 238, 144) // Light grass green
	case "Medium":
		return tcell.NewRGBColor(135, 206, 250) // Light sky blue
	case "Hard":
		return tcell.NewRGBColor(255, 165, 0) // Orange
	default:
		return tcell.NewRGBColor(255, 80, 80) // Normal Red
	}
}
