package theme

import (
	"image/color"
)

// Theme defines the colors used by the canvas and the window chrome.
type Theme struct {
	Name string

	// Canvas
	CheckerLight   color.RGBA
	CheckerDark    color.RGBA
	Stroke         color.RGBA // Committed shape outline
	SelectedStroke color.RGBA // Dashed outline of the shape being edited
	DashAlternate  color.RGBA // Gap color between dashes
	SelectedFill   color.RGBA // Translucent fill of the shape being edited
	StrokeWidth    int

	// Chrome
	Background            color.RGBA
	Foreground            color.RGBA
	ToolbarBackground     color.RGBA
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA
	StatusBackground      color.RGBA
	StatusText            color.RGBA
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		CheckerLight:          color.RGBA{240, 240, 240, 255},
		CheckerDark:           color.RGBA{224, 224, 224, 255},
		Stroke:                color.RGBA{0, 0, 0, 255},
		SelectedStroke:        color.RGBA{30, 100, 220, 255},
		DashAlternate:         color.RGBA{255, 255, 255, 255},
		SelectedFill:          color.RGBA{30, 100, 220, 64},
		StrokeWidth:           1,
		Background:            color.RGBA{220, 220, 220, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{220, 220, 220, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		StatusBackground:      color.RGBA{220, 220, 220, 255},
		StatusText:            color.RGBA{0, 0, 0, 255},
	}
}
