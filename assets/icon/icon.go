package icon

import (
	"image"
	"image/color"
)

// Theme colors from the app
var (
	accentBlue   = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	purpleAccent = color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0xFF}
	darkBG       = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	rowLight     = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	rowDark      = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	railCol      = color.RGBA{R: 0x30, G: 0x30, B: 0x3C, A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws a stylized list panel with a scrollbar: alternating row
// stripes fading off the bottom edge and a purple handle partway down the
// rail on the right.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, darkBG)

	// Panel
	panelX := s * 0.08
	panelY := s * 0.10
	panelW := s * 0.84
	panelH := s * 0.80
	fillRoundedRect(img, panelX, panelY, panelW, panelH, s*0.08, rowDark)

	// Row stripes, clipped to the panel
	rowH := s * 0.12
	rowGap := s * 0.05
	rowX := panelX + s*0.06
	rowW := panelW - s*0.24
	y := panelY + s*0.07
	for i := 0; y+rowH < panelY+panelH; i++ {
		c := rowLight
		if i == 1 {
			c = accentBlue
		}
		fillRoundedRect(img, rowX, y, rowW, rowH, s*0.03, c)
		y += rowH + rowGap
	}

	// Scrollbar rail and handle
	railX := panelX + panelW - s*0.11
	railY := panelY + s*0.06
	railW := s * 0.06
	railH := panelH - s*0.12
	fillRoundedRect(img, railX, railY, railW, railH, railW/2, railCol)

	handleH := railH * 0.38
	handleY := railY + railH*0.25
	fillRoundedRect(img, railX, handleY, railW, handleH, railW/2, purpleAccent)

	return img
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	x0 := int(xf)
	y0 := int(yf)
	x1 := int(xf + wf)
	y1 := int(yf + hf)
	r := rf
	bounds := img.Bounds()

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			// Check if inside rounded rect
			fx := float64(x)
			fy := float64(y)
			inside := true

			// Check corners
			if fx < xf+r && fy < yf+r {
				// Top-left corner
				dx := xf + r - fx
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy < yf+r {
				// Top-right corner
				dx := fx - (xf + wf - r)
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx < xf+r && fy > yf+hf-r {
				// Bottom-left corner
				dx := xf + r - fx
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy > yf+hf-r {
				// Bottom-right corner
				dx := fx - (xf + wf - r)
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			}

			if inside {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// Existing pixel
	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	// Alpha blend
	alpha := a0
	invAlpha := 0xFFFF - alpha
	nr := (r0*alpha + er*invAlpha) / 0xFFFF
	ng := (g0*alpha + eg*invAlpha) / 0xFFFF
	nb := (b0*alpha + eb*invAlpha) / 0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
