package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dblasing/drycounties/internal/dataset"
	"github.com/dblasing/drycounties/internal/status"
)

const (
	cardWidth  = 600
	cardHeight = 315
)

var swatchColors = map[status.Status]color.RGBA{
	status.Wet:   {R: 199, G: 233, B: 192, A: 255},
	status.Moist: {R: 253, G: 174, B: 107, A: 255},
	status.Dry:   {R: 227, G: 26, B: 28, A: 255},
}

var statusBlurbs = map[status.Status]string{
	status.Dry:   "no alcohol sales",
	status.Moist: "restricted sales",
	status.Wet:   "unrestricted sales",
}

// WriteCard draws a PNG summary card with the per-status county counts and
// writes it to path.
func WriteCard(counts dataset.Counts, path string) error {
	img := image.NewRGBA(image.Rect(0, 0, cardWidth, cardHeight))
	fill(img, img.Bounds(), color.RGBA{R: 250, G: 250, B: 250, A: 255})

	ink := color.RGBA{R: 30, G: 30, B: 30, A: 255}
	drawString(img, 40, 50, ink, "US Dry Counties Map (2026)")
	drawString(img, 40, 70, color.RGBA{R: 110, G: 110, B: 110, A: 255},
		"County alcohol-sale status, compiled Feb 2026")

	y := 120
	for _, st := range []status.Status{status.Dry, status.Moist, status.Wet} {
		n := counts.Dry
		switch st {
		case status.Moist:
			n = counts.Moist
		case status.Wet:
			n = counts.Wet
		}
		fill(img, image.Rect(40, y-12, 56, y+4), swatchColors[st])
		drawString(img, 68, y, ink,
			fmt.Sprintf("%-5s %4d counties (%s)", st+":", n, statusBlurbs[st]))
		y += 40
	}

	drawString(img, 40, y+10, ink, fmt.Sprintf("Total: %d counties", counts.Total))

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return out.Close()
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func drawString(img *image.RGBA, x, y int, c color.RGBA, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
