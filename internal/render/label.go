package render

import (
	"image"
	"image/color"
	"image/draw"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	padX = 4
	padY = 2
)

// Face is the font labels are drawn with.
var Face font.Face = basicfont.Face7x13

// Size returns the pixel size of the label image for text.
func Size(text string) (w, h int) {
	m := Face.Metrics()
	w = font.MeasureString(Face, text).Ceil() + 2*padX
	h = (m.Ascent + m.Descent).Ceil() + 2*padY
	return w, h
}

// Label draws text on a filled rectangle using the scheme's colors.
func Label(text string, s Scheme) *image.RGBA {
	w, h := Size(text)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(toRGBA(s.Background)), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(toRGBA(s.Foreground)),
		Face: Face,
		Dot:  fixed.Point26_6{X: fixed.I(padX), Y: fixed.I(padY) + Face.Metrics().Ascent},
	}
	d.DrawString(text)
	return img
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
