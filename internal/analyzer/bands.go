package analyzer

import (
	"image"
	"image/color"
	"math"
)

// BandDetector finds content sections by the amount of edge detail per row.
// Quiet rows (flat background) separate sections.
type BandDetector struct {
	MinGap        int     // quiet rows needed to split two bands
	MinHeight     int     // bands shorter than this are dropped
	EdgeThreshold float64 // gradient magnitude that counts as an edge pixel
	RowCoverage   float64 // share of edge pixels that makes a row content
}

func NewBandDetector() *BandDetector {
	return &BandDetector{
		MinGap:        24,
		MinHeight:     40,
		EdgeThreshold: 30.0,
		RowCoverage:   0.01,
	}
}

func (d *BandDetector) Detect(img image.Image) ([]Band, error) {
	gray := toGrayscale(img)
	energy := rowEnergy(gray, d.EdgeThreshold)

	var bands []Band
	start, quiet := -1, 0
	var sum float64

	flush := func(end int) {
		if start < 0 {
			return
		}
		if h := end - start; h >= d.MinHeight {
			bands = append(bands, Band{Top: start, Bottom: end, Energy: sum / float64(h)})
		}
		start, sum = -1, 0
	}

	for y, e := range energy {
		if e >= d.RowCoverage {
			if start < 0 {
				start = y
			}
			quiet = 0
			sum += e
			continue
		}
		if start < 0 {
			continue
		}
		quiet++
		if quiet >= d.MinGap {
			flush(y - quiet + 1)
			quiet = 0
		}
	}
	flush(len(energy) - quiet)

	return bands, nil
}

func toGrayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x-bounds.Min.X, y-bounds.Min.Y, color.GrayModel.Convert(img.At(x, y)))
		}
	}

	return gray
}

// rowEnergy returns, per row, the share of pixels whose Sobel gradient
// magnitude exceeds threshold. Border rows and columns stay zero.
func rowEnergy(gray *image.Gray, threshold float64) []float64 {
	w, h := gray.Bounds().Dx(), gray.Bounds().Dy()
	out := make([]float64, h)
	if w < 3 || h < 3 {
		return out
	}

	gx := [3][3]int{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	gy := [3][3]int{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	for y := 1; y < h-1; y++ {
		edges := 0
		for x := 1; x < w-1; x++ {
			var sumX, sumY float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					pixel := float64(gray.GrayAt(x+kx, y+ky).Y)
					sumX += pixel * float64(gx[ky+1][kx+1])
					sumY += pixel * float64(gy[ky+1][kx+1])
				}
			}
			if math.Sqrt(sumX*sumX+sumY*sumY) > threshold {
				edges++
			}
		}
		out[y] = float64(edges) / float64(w-2)
	}
	return out
}
