// Package ui provides the RoomSketch application UI components.
//
// This file defines a custom compact Fyne theme for a dense editor layout.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// RoomSketchTheme wraps the default Fyne theme with compact sizing
// overrides so panels leave room for the plan canvas.
type RoomSketchTheme struct {
	base         fyne.Theme
	variant      fyne.ThemeVariant
	followSystem bool
}

// NewRoomSketchTheme creates a theme that follows the system variant.
func NewRoomSketchTheme() *RoomSketchTheme {
	return &RoomSketchTheme{
		base:         theme.DefaultTheme(),
		followSystem: true,
	}
}

// SetVariant pins the theme to the given light/dark variant.
func (t *RoomSketchTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
	t.followSystem = false
}

// Color delegates to the base theme, substituting the pinned variant when
// one has been set.
func (t *RoomSketchTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if !t.followSystem {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

// Font delegates to the base theme.
func (t *RoomSketchTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *RoomSketchTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *RoomSketchTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
