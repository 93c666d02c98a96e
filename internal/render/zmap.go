// Package render draws stacking snapshots as images.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mj1618/winzorder/internal/model"
)

// MaxDimension bounds either side of a rendered map.
const MaxDimension = 16384

// ErrNothingToDraw is returned when no window has a drawable area.
var ErrNothingToDraw = errors.New("no windows to draw")

var (
	backgroundColor = color.RGBA{R: 32, G: 32, B: 32, A: 255}
	textColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	textOutline     = color.RGBA{R: 0, G: 0, B: 0, A: 200}
	offScreenColor  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// palette colors on-screen windows by stacking index.
var palette = []color.RGBA{
	{R: 230, G: 57, B: 70, A: 255},
	{R: 42, G: 157, B: 143, A: 255},
	{R: 233, G: 196, B: 106, A: 255},
	{R: 69, G: 123, B: 157, A: 255},
	{R: 244, G: 162, B: 97, A: 255},
	{R: 131, G: 56, B: 236, A: 255},
}

// Options controls rendering.
type Options struct {
	// Scale converts screen pixels to image pixels. Zero means 1.
	Scale float64
}

// ZMap draws windows, given topmost first, onto a canvas covering the union
// of their rectangles. Lower windows are painted first so higher ones cover
// them, and each is labelled "#<index>" with index 0 being the topmost.
func ZMap(windows []model.Window, opts Options) (*image.RGBA, error) {
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	if scale < 0 {
		return nil, fmt.Errorf("invalid scale %v", scale)
	}

	var union model.Rect
	for _, w := range windows {
		union = union.Union(w.Rect)
	}
	if union.Empty() {
		return nil, ErrNothingToDraw
	}

	width := int(float64(union.Width()) * scale)
	height := int(float64(union.Height()) * scale)
	if width <= 0 || height <= 0 {
		return nil, ErrNothingToDraw
	}
	if width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("map size %dx%d exceeds %d; use a smaller scale", width, height, MaxDimension)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	toImage := func(r model.Rect) image.Rectangle {
		return image.Rect(
			int(float64(r.Left-union.Left)*scale),
			int(float64(r.Top-union.Top)*scale),
			int(float64(r.Right-union.Left)*scale),
			int(float64(r.Bottom-union.Top)*scale),
		)
	}

	for i := len(windows) - 1; i >= 0; i-- {
		w := windows[i]
		if w.Rect.Empty() {
			continue
		}
		c := offScreenColor
		if w.OnScreen() {
			c = palette[i%len(palette)]
		}
		r := toImage(w.Rect).Intersect(img.Bounds())
		if r.Empty() {
			continue
		}

		fill := c
		fill.A = 60
		draw.Draw(img, r, image.NewUniform(premultiply(fill)), image.Point{}, draw.Over)
		drawRectangle(img, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, c)
		drawLabel(img, fmt.Sprintf("#%d", i), r.Min.X+4, r.Min.Y+3)
	}
	return img, nil
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}

// premultiply converts a straight-alpha color to the premultiplied form
// color.RGBA requires.
func premultiply(c color.RGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}

// drawRectangle draws a rectangle outline on the image
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()
	r := image.Rect(x1, y1, x2, y2).Intersect(bounds)
	if r.Empty() {
		return
	}

	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

// drawLabel draws text with its top-left corner at (x, y), outlined for
// visibility over any fill.
func drawLabel(img *image.RGBA, text string, x, y int) {
	baseline := y + basicfont.Face7x13.Ascent

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(textOutline),
				Face: basicfont.Face7x13,
				Dot:  fixed.P(x+dx, baseline+dy),
			}
			d.DrawString(text)
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}
