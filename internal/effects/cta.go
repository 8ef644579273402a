package effects

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/skip2/go-qrcode"
)

// CTABadge shows a QR code for the call-to-action link in the bottom-right
// corner while the final section is on screen.
type CTABadge struct {
	URL    string
	Margin int

	code image.Image
}

func NewCTABadge(url string, size int) (*CTABadge, error) {
	q, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr code for %q: %w", url, err)
	}
	if size < 21 {
		size = 21
	}
	return &CTABadge{
		URL:    url,
		Margin: size / 6,
		code:   q.Image(size),
	}, nil
}

// Apply fades the badge in with the final section's progress.
func (c *CTABadge) Apply(dst *image.RGBA, f Frame) {
	if !f.Last {
		return
	}
	alpha := uint8(math.Round(math.Max(0, math.Min(1, f.Located.SectionProgress)) * 255))
	if alpha == 0 {
		return
	}

	b := dst.Bounds()
	cb := c.code.Bounds()
	at := image.Pt(b.Max.X-c.Margin-cb.Dx(), b.Max.Y-c.Margin-cb.Dy())
	r := image.Rectangle{Min: at, Max: at.Add(cb.Size())}
	draw.DrawMask(dst, r, c.code, cb.Min, image.NewUniform(color.Alpha{A: alpha}), image.Point{}, draw.Over)
}
