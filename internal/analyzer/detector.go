package analyzer

import "image"

// Band is a horizontal strip of page content, in page pixels.
type Band struct {
	Top    int
	Bottom int
	// Energy is the mean gradient energy of the band's rows, 0..1.
	Energy float64
}

func (b Band) Height() int { return b.Bottom - b.Top }

// Detector splits a page into content bands, top to bottom.
type Detector interface {
	Detect(img image.Image) ([]Band, error)
}
