// Package badge draws placeholder rarity badges until real artwork ships.
package badge

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	Size   = 96
	border = 4
)

var tierColors = []color.RGBA{
	{0x95, 0xa5, 0xa6, 0xff}, // gray
	{0x2e, 0xcc, 0x71, 0xff}, // green
	{0x34, 0x98, 0xdb, 0xff}, // blue
	{0x9b, 0x59, 0xb6, 0xff}, // purple
	{0xf1, 0xc4, 0x0f, 0xff}, // gold
	{0xe7, 0x4c, 0x3c, 0xff}, // red
}

// Color returns the badge background for a 1-indexed tier. Tiers beyond the
// palette reuse the top colour.
func Color(tier int) color.RGBA {
	idx := tier - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(tierColors) {
		idx = len(tierColors) - 1
	}
	return tierColors[idx]
}

// Image renders the badge: a bordered square with "R<tier>" and one star per tier.
func Image(tier int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(border, border, Size-border, Size-border), image.NewUniform(Color(tier)), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawCentered(img, face, fmt.Sprintf("R%d", tier), Size/2-4)
	drawCentered(img, face, strings.Repeat("*", max(tier, 0)), Size/2+14)
	return img
}

// Render writes the badge for tier as PNG.
func Render(w io.Writer, tier int) error {
	if err := png.Encode(w, Image(tier)); err != nil {
		return fmt.Errorf("encode badge png: %w", err)
	}
	return nil
}

func drawCentered(img *image.RGBA, face font.Face, text string, baseline int) {
	if text == "" {
		return
	}
	d := &font.Drawer{Dst: img, Src: image.White, Face: face}
	width := d.MeasureString(text).Ceil()
	d.Dot = fixed.P((Size-width)/2, baseline)
	d.DrawString(text)
}
