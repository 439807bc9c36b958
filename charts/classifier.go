// Package charts classifies bitmaps as charts using pixel statistics.
//
// The classification is a deliberately coarse rule-based heuristic, not a
// learned model: charts tend to use a small color palette and a roughly
// balanced mix of horizontal and vertical edges. The thresholds are named
// and tunable so behavior can be tested and adjusted without touching
// control flow. False positives and negatives on atypical imagery are an
// accepted limitation.
package charts

import (
	"image"

	"github.com/ChicagoSwoles/PDF-Intelligence/model"
)

// Classifier holds the tunable thresholds of the chart heuristic.
type Classifier struct {
	// MaxPalette is the distinct-color count an image must stay under to
	// qualify as a chart.
	MaxPalette int

	// EdgeRatioMin and EdgeRatioMax bound the vertical/horizontal edge
	// ratio of a chart.
	EdgeRatioMin float64
	EdgeRatioMax float64

	// BarRatio and LineRatio split qualifying images into subtypes: above
	// BarRatio is a bar chart, below LineRatio a line chart, anything
	// between is "other".
	BarRatio  float64
	LineRatio float64

	// Epsilon guards the ratio against division by zero.
	Epsilon float64
}

// Default returns the stock thresholds.
func Default() Classifier {
	return Classifier{
		MaxPalette:   50,
		EdgeRatioMin: 0.5,
		EdgeRatioMax: 2.0,
		BarRatio:     1.2,
		LineRatio:    0.8,
		Epsilon:      1e-10,
	}
}

// Classify reports whether the bitmap looks like a chart and, if so, its
// coarse subtype. Single-channel bitmaps (grayscale, masks) are never
// charts. Bitmaps with an alpha channel are judged on their color channels
// only. Any internal failure yields (false, "") rather than an error.
func (c Classifier) Classify(img image.Image) (isChart bool, kind model.ChartKind) {
	defer func() {
		if recover() != nil {
			isChart, kind = false, ""
		}
	}()

	if img == nil {
		return false, ""
	}
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return false, ""
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return false, ""
	}

	// One pass: count distinct color tuples and accumulate the absolute
	// differences between vertically adjacent (row-to-row) and
	// horizontally adjacent (column-to-column) pixels.
	distinct := make(map[[3]uint8]struct{})
	prevRow := make([][3]uint8, w)
	var rowEdges, colEdges int64
	for y := 0; y < h; y++ {
		var left [3]uint8
		for x := 0; x < w; x++ {
			px := rgbAt(img, b.Min.X+x, b.Min.Y+y)
			distinct[px] = struct{}{}
			if x > 0 {
				colEdges += absDiff(px, left)
			}
			if y > 0 {
				rowEdges += absDiff(px, prevRow[x])
			}
			left = px
			prevRow[x] = px
		}
	}

	ratio := float64(rowEdges) / (float64(colEdges) + c.Epsilon)
	if len(distinct) >= c.MaxPalette || ratio <= c.EdgeRatioMin || ratio >= c.EdgeRatioMax {
		return false, ""
	}
	switch {
	case ratio > c.BarRatio:
		return true, model.ChartBar
	case ratio < c.LineRatio:
		return true, model.ChartLine
	default:
		return true, model.ChartOther
	}
}

// rgbAt reads the first three channels of a pixel, ignoring alpha.
func rgbAt(img image.Image, x, y int) [3]uint8 {
	switch im := img.(type) {
	case *image.NRGBA:
		i := im.PixOffset(x, y)
		return [3]uint8{im.Pix[i], im.Pix[i+1], im.Pix[i+2]}
	case *image.RGBA:
		i := im.PixOffset(x, y)
		return [3]uint8{im.Pix[i], im.Pix[i+1], im.Pix[i+2]}
	default:
		r, g, b, _ := img.At(x, y).RGBA()
		return [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
	}
}

func absDiff(a, b [3]uint8) int64 {
	var sum int64
	for i := 0; i < 3; i++ {
		d := int64(a[i]) - int64(b[i])
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}
