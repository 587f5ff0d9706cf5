package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bulletsinair/engine"
)

// Palette
var (
	RgbBackground   = tcell.NewRGBColor(20, 20, 28)
	RgbPlayer1      = tcell.ColorBlue
	RgbPlayer2      = tcell.ColorRed
	RgbTrail1       = tcell.NewRGBColor(40, 40, 140)
	RgbTrail2       = tcell.NewRGBColor(140, 40, 40)
	RgbHealth       = tcell.ColorGreen
	RgbHealthEmpty  = tcell.NewRGBColor(50, 50, 50)
	RgbText         = tcell.ColorWhite
	RgbDimText      = tcell.NewRGBColor(150, 150, 150)
	RgbOverlay      = tcell.NewRGBColor(0, 0, 0)
	RgbButton       = tcell.NewRGBColor(70, 70, 90)
	RgbButtonActive = tcell.NewRGBColor(200, 200, 220)
)

// ActorColor returns the body color of a side
func ActorColor(side engine.Side) tcell.Color {
	if side == engine.SideLeft {
		return RgbPlayer1
	}
	return RgbPlayer2
}

// TrailColor returns the projectile trail color of a side
func TrailColor(side engine.Side) tcell.Color {
	if side == engine.SideLeft {
		return RgbTrail1
	}
	return RgbTrail2
}
