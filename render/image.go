package render

import (
	"image"

	"github.com/mattyatea/horizon-sky/colors"
)

// At returns the gradient color at a vertical position in [0,100] percent,
// interpolating linearly between the two surrounding stops.
func (g GradientResult) At(percent float64) colors.RGB8 {
	stops := g.Stops
	if len(stops) == 0 {
		return colors.RGB8{}
	}
	if percent <= stops[0].Percent {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		if percent <= stops[i].Percent {
			lo, hi := stops[i-1], stops[i]
			t := 0.0
			if span := hi.Percent - lo.Percent; span > 0 {
				t = (percent - lo.Percent) / span
			}
			return lo.Color.Color().Mix(hi.Color.Color(), t).Quantize()
		}
	}
	return stops[len(stops)-1].Color
}

// Strip renders the gradient into an image: row 0 is the zenith (100%), the
// bottom row the field-of-view edge (0%).
func (g GradientResult) Strip(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		percent := 100.0
		if height > 1 {
			percent = 100.0 * (1.0 - float64(y)/float64(height-1))
		}
		px := g.At(percent).NRGBA()
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, px)
		}
	}
	return img
}
