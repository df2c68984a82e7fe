package app

import "image/color"

// Colors — dark theme
var (
	ColorBackground = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ColorRowEven    = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	ColorRowOdd     = color.RGBA{R: 0x16, G: 0x16, B: 0x1C, A: 0xFF}
	ColorRowStripe  = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorTileA      = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	ColorTileB      = color.RGBA{R: 0x20, G: 0x20, B: 0x2A, A: 0xFF}
	ColorTileAccent = color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0xFF}
	ColorOverlay    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
)

// Layout constants
const (
	ScreenPadding = 20
	HeaderHeight  = 28
)
