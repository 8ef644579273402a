package source

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Backdrop is the whole page, scaled to the viewport width.
type Backdrop struct {
	page *image.RGBA
}

// NewBackdrop renders every page of src, scales it to width and stacks the
// results vertically.
func NewBackdrop(src Source, width, dpi int) (*Backdrop, error) {
	n := src.PageCount()
	if n == 0 {
		return nil, fmt.Errorf("источник не содержит страниц")
	}

	pages := make([]*image.RGBA, 0, n)
	total := 0
	for i := 0; i < n; i++ {
		img, err := src.RenderPage(i, dpi)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		scaled := scaleToWidth(img, width)
		pages = append(pages, scaled)
		total += scaled.Bounds().Dy()
	}

	page := image.NewRGBA(image.Rect(0, 0, width, total))
	y := 0
	for _, p := range pages {
		r := image.Rect(0, y, width, y+p.Bounds().Dy())
		draw.Draw(page, r, p, image.Point{}, draw.Src)
		y += p.Bounds().Dy()
	}
	return &Backdrop{page: page}, nil
}

// NewSolidBackdrop is a flat page used when no input is given.
func NewSolidBackdrop(width, height int, c color.Color) *Backdrop {
	page := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(page, page.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return &Backdrop{page: page}
}

// FromImage wraps an already composed page.
func FromImage(img image.Image, width int) *Backdrop {
	return &Backdrop{page: scaleToWidth(img, width)}
}

func (b *Backdrop) Width() int  { return b.page.Bounds().Dx() }
func (b *Backdrop) Height() int { return b.page.Bounds().Dy() }

// Page exposes the composed page for analysis.
func (b *Backdrop) Page() *image.RGBA { return b.page }

// Viewport copies the visible slice at the given scroll offset into dst.
// parallax scales the offset: 1 scrolls with the page, 0.5 at half speed.
func (b *Backdrop) Viewport(dst *image.RGBA, offset, parallax float64) {
	top := int(offset * parallax)
	maxTop := b.Height() - dst.Bounds().Dy()
	if top > maxTop {
		top = maxTop
	}
	if top < 0 {
		top = 0
	}
	draw.Draw(dst, dst.Bounds(), b.page, image.Point{X: 0, Y: top}, draw.Src)
}

func scaleToWidth(img image.Image, width int) *image.RGBA {
	sb := img.Bounds()
	if sb.Dx() == 0 {
		return image.NewRGBA(image.Rect(0, 0, width, 0))
	}
	height := int(float64(sb.Dy()) * float64(width) / float64(sb.Dx()))
	if rgba, ok := img.(*image.RGBA); ok && sb.Dx() == width && sb.Min == (image.Point{}) {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, sb, xdraw.Src, nil)
	return dst
}
