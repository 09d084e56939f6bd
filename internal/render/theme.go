package render

import "image/color"

// Theme is a named palette for the canvas and HUD. The engine never sees
// colors as pixels; themes are a render-side concern.
type Theme struct {
	Name       string
	Background color.RGBA
	GridLine   color.RGBA
	Cell       color.RGBA
	Colony1    color.RGBA
	Colony2    color.RGBA
	Flash      color.RGBA
	Ghost      color.RGBA
	Text       color.RGBA
}

var themes = []Theme{
	{
		Name:       "dark",
		Background: color.RGBA{R: 16, G: 16, B: 20, A: 255},
		GridLine:   color.RGBA{R: 36, G: 38, B: 44, A: 255},
		Cell:       color.RGBA{R: 230, G: 230, B: 240, A: 255},
		Colony1:    color.RGBA{R: 66, G: 135, B: 245, A: 255},
		Colony2:    color.RGBA{R: 235, G: 87, B: 87, A: 255},
		Flash:      color.RGBA{R: 255, G: 214, B: 10, A: 255},
		Ghost:      color.RGBA{R: 140, G: 140, B: 150, A: 120},
		Text:       color.RGBA{R: 200, G: 200, B: 210, A: 255},
	},
	{
		Name:       "light",
		Background: color.RGBA{R: 244, G: 244, B: 246, A: 255},
		GridLine:   color.RGBA{R: 220, G: 220, B: 224, A: 255},
		Cell:       color.RGBA{R: 32, G: 32, B: 36, A: 255},
		Colony1:    color.RGBA{R: 21, G: 101, B: 192, A: 255},
		Colony2:    color.RGBA{R: 198, G: 40, B: 40, A: 255},
		Flash:      color.RGBA{R: 249, G: 168, B: 37, A: 255},
		Ghost:      color.RGBA{R: 96, G: 96, B: 104, A: 120},
		Text:       color.RGBA{R: 55, G: 58, B: 64, A: 255},
	},
	{
		Name:       "matrix",
		Background: color.RGBA{R: 4, G: 10, B: 6, A: 255},
		GridLine:   color.RGBA{R: 12, G: 34, B: 18, A: 255},
		Cell:       color.RGBA{R: 58, G: 222, B: 99, A: 255},
		Colony1:    color.RGBA{R: 58, G: 222, B: 99, A: 255},
		Colony2:    color.RGBA{R: 222, G: 222, B: 58, A: 255},
		Flash:      color.RGBA{R: 240, G: 255, B: 240, A: 255},
		Ghost:      color.RGBA{R: 58, G: 140, B: 80, A: 120},
		Text:       color.RGBA{R: 120, G: 220, B: 150, A: 255},
	},
}

// Themes returns the built-in palettes. The slice is shared; callers must
// treat it as read-only.
func Themes() []Theme { return themes }

// ThemeByName returns the named theme, falling back to the first one.
func ThemeByName(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}
