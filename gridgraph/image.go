// SPDX-License-Identifier: MIT

package gridgraph

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// FromImage converts img into a GridGraph: pixels whose 8-bit luminance is
// below darkCutoff become 1 (ink), all others 0. Fully transparent pixels
// are treated as background. Options other than the threshold are taken
// from opts; LandThreshold is forced to 1.
//
// Returns ErrEmptyGrid for a zero-area image and ErrGridTooLarge when the
// image has more than opts.MaxCells pixels.
func FromImage(img image.Image, darkCutoff uint8, opts GridOptions) (*GridGraph, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	if err := checkCells(w, h, opts.MaxCells); err != nil {
		return nil, err
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		for x := 0; x < w; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			if color.GrayModel.Convert(c).(color.Gray).Y < darkCutoff {
				cells[y][x] = 1
			}
		}
	}
	opts.LandThreshold = 1

	return NewGridGraph(cells, opts)
}

// DecodePNG reads a PNG stream and hands it to FromImage. The header is
// read first, so an image above opts.MaxCells is rejected with
// ErrGridTooLarge before its pixels are inflated.
func DecodePNG(r io.Reader, darkCutoff uint8, opts GridOptions) (*GridGraph, error) {
	var head bytes.Buffer
	cfg, err := png.DecodeConfig(io.TeeReader(r, &head))
	if err != nil {
		return nil, fmt.Errorf("DecodePNG: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrEmptyGrid
	}
	if err = checkCells(cfg.Width, cfg.Height, opts.MaxCells); err != nil {
		return nil, fmt.Errorf("DecodePNG: %w", err)
	}

	img, err := png.Decode(io.MultiReader(&head, r))
	if err != nil {
		return nil, fmt.Errorf("DecodePNG: %w", err)
	}

	return FromImage(img, darkCutoff, opts)
}
