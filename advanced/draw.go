package advanced

import (
	"image"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type RenderOptions struct {
	Width, Height int
	LineWidth     float64
	// Pixels between the [-1, 1] square and the edge of the image.
	Padding float64
	// Drawn in the top left corner when not empty.
	Caption string
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Width: 800, Height: 800, LineWidth: 2, Padding: 20}
}

// Render draws one frame of the line strip. The positions are passed through
// like the vertex shader did: x and y map onto the image with y up, z is
// dropped. Each segment gets its own stroke, colored by the class of its
// slope, which is derived again from the buffer on every call.
func Render(buf *Buffer, opts RenderOptions) image.Image {
	if opts.Width <= 0 || opts.Height <= 0 {
		defaults := DefaultRenderOptions()
		opts.Width, opts.Height = defaults.Width, defaults.Height
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 1
	}

	c := gg.NewContext(opts.Width, opts.Height)
	c.SetRGB(0, 0, 0)
	c.Clear()
	c.SetLineWidth(opts.LineWidth)
	c.SetLineCap(gg.LineCapRound)

	toCanvas := func(v Vertex) (float64, float64) {
		w := float64(opts.Width) - 2*opts.Padding
		h := float64(opts.Height) - 2*opts.Padding
		// Flip so the origin is at the bottom left
		return opts.Padding + (v.X+1)/2*w, opts.Padding + (1-v.Y)/2*h
	}

	drawn := 0
	for i := 0; i < buf.SegmentCount(); i++ {
		p1, p2 := buf.Vertex(i), buf.Vertex(i+1)
		if !finite(p1) || !finite(p2) {
			continue
		}
		segment := Classify(p1, p2)
		x1, y1 := toCanvas(p1)
		x2, y2 := toCanvas(p2)
		c.SetColor(segment.Class.Color())
		c.DrawLine(x1, y1, x2, y2)
		c.Stroke()
		drawn++
	}

	if opts.Caption != "" {
		if face, err := captionFace(); err == nil {
			c.SetFontFace(face)
			c.SetRGB(1, 1, 1)
			c.DrawStringAnchored(opts.Caption, opts.Padding, opts.Padding, 0, 1)
		} else {
			Logger().Warn("caption font unavailable", "err", err)
		}
	}

	Logger().Debug("rendered frame", "segments", drawn, "width", opts.Width, "height", opts.Height)
	return c.Image()
}

func SavePNG(path string, buf *Buffer, opts RenderOptions) error {
	img := Render(buf, opts)
	return errors.Wrapf(gg.SavePNG(path, img), "save %s", path)
}

func finite(v Vertex) bool {
	for _, f := range []float64{v.X, v.Y} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

var (
	captionOnce    sync.Once
	captionFont    *truetype.Font
	captionFontErr error
)

func captionFace() (font.Face, error) {
	captionOnce.Do(func() {
		captionFont, captionFontErr = truetype.Parse(goregular.TTF)
	})
	if captionFontErr != nil {
		return nil, errors.Wrap(captionFontErr, "parse Go Regular")
	}
	return truetype.NewFace(captionFont, &truetype.Options{Size: 14}), nil
}
