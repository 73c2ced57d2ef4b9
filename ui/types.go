// Package ui provides the arena's heads-up display, menu screens and
// keyboard mapping for the raylib host.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// PanelAnchor specifies where a panel is anchored on screen.
type PanelAnchor int

const (
	AnchorTopLeft PanelAnchor = iota
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
	AnchorCenter
)

// Place returns the top-left corner of a panel of the given size anchored
// inside a screen, inset by margin.
func (a PanelAnchor) Place(panelW, panelH, screenW, screenH, margin int32) (x, y int32) {
	switch a {
	case AnchorTopRight:
		return screenW - panelW - margin, margin
	case AnchorBottomLeft:
		return margin, screenH - panelH - margin
	case AnchorBottomRight:
		return screenW - panelW - margin, screenH - panelH - margin
	case AnchorCenter:
		return (screenW - panelW) / 2, (screenH - panelH) / 2
	default:
		return margin, margin
	}
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	Highlight      rl.Color
	BarBg          rl.Color
	BarFill        rl.Color
	BarFillHigh    rl.Color
	Dim            rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
	TitleFontSize  int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 255, G: 255, B: 255, A: 230},
		PanelBorder:    rl.Color{R: 206, G: 212, B: 218, A: 255},
		SectionHeader:  rl.Color{R: 73, G: 80, B: 87, A: 255},
		LabelColor:     rl.Color{R: 108, G: 117, B: 125, A: 255},
		ValueColor:     rl.Color{R: 33, G: 37, B: 41, A: 255},
		Highlight:      rl.Color{R: 255, G: 68, B: 68, A: 255},
		BarBg:          rl.Color{R: 233, G: 236, B: 239, A: 255},
		BarFill:        rl.Color{R: 52, G: 152, B: 219, A: 255},
		BarFillHigh:    rl.Color{R: 231, G: 76, B: 60, A: 255},
		Dim:            rl.Color{R: 0, G: 0, B: 0, A: 120},
		Padding:        10,
		LineHeight:     18,
		LabelWidth:     90,
		BarHeight:      12,
		FontSize:       14,
		HeaderFontSize: 16,
		TitleFontSize:  48,
	}
}
