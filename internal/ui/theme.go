package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/Amirzzd/Tic-Tac-Toe/internal/config"
)

// gameTheme maps the configured palette onto Fyne's named colors. X
// marks render through the primary color and O marks through the error
// color, so the two importance levels on cell buttons carry the mark
// colors.
type gameTheme struct {
	background color.Color
	button     color.Color
	text       color.Color
	xColor     color.Color
	oColor     color.Color
}

var _ fyne.Theme = (*gameTheme)(nil)

func newGameTheme(conf config.Theme) *gameTheme {
	return &gameTheme{
		background: parseHexColor(conf.Background, color.Black),
		button:     parseHexColor(conf.Button, color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}),
		text:       parseHexColor(conf.Text, color.White),
		xColor:     parseHexColor(conf.XColor, color.NRGBA{B: 0xFF, A: 0xFF}),
		oColor:     parseHexColor(conf.OColor, color.NRGBA{R: 0xFF, A: 0xFF}),
	}
}

func (that *gameTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return that.background
	case theme.ColorNameButton:
		return that.button
	case theme.ColorNameForeground:
		return that.text
	case theme.ColorNamePrimary:
		return that.xColor
	case theme.ColorNameError:
		return that.oColor
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (that *gameTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (that *gameTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (that *gameTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

// parseHexColor reads a #RRGGBB string; malformed values fall back.
func parseHexColor(value string, fallback color.Color) color.Color {
	var r, g, b uint8

	if _, err := fmt.Sscanf(value, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}

	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}
