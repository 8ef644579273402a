package source

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestImageSourceDirectory(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"), 20, 10, color.White)
	writePNG(t, filepath.Join(dir, "a.png"), 40, 40, color.Black)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	src, err := NewImageSource(dir)
	require.NoError(t, err)
	defer src.Close()

	require.Equal(t, 2, src.PageCount())
	w, h, err := src.GetPageDimensions(0)
	require.NoError(t, err)
	assert.Equal(t, 40.0, w)
	assert.Equal(t, 40.0, h)
}

func TestImageSourceEmptyDir(t *testing.T) {
	_, err := NewImageSource(t.TempDir())
	assert.Error(t, err)
}

func TestBackdropStacksPages(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "1.png"), 50, 50, color.RGBA{R: 255, A: 255})
	writePNG(t, filepath.Join(dir, "2.png"), 100, 200, color.RGBA{B: 255, A: 255})

	src, err := Open(dir)
	require.NoError(t, err)
	defer src.Close()

	b, err := NewBackdrop(src, 100, 72)
	require.NoError(t, err)
	assert.Equal(t, 100, b.Width())
	assert.Equal(t, 300, b.Height())

	dst := image.NewRGBA(image.Rect(0, 0, 100, 50))
	b.Viewport(dst, 0, 1)
	assert.Greater(t, dst.RGBAAt(50, 25).R, uint8(240))

	b.Viewport(dst, 10000, 1)
	assert.Equal(t, uint8(255), dst.RGBAAt(50, 25).B, "offset clamps to the bottom")
}

func TestViewportParallax(t *testing.T) {
	page := image.NewRGBA(image.Rect(0, 0, 10, 100))
	for y := 50; y < 100; y++ {
		for x := 0; x < 10; x++ {
			page.Set(x, y, color.White)
		}
	}
	b := FromImage(page, 10)
	dst := image.NewRGBA(image.Rect(0, 0, 10, 20))

	b.Viewport(dst, 60, 0.5)
	assert.Zero(t, dst.RGBAAt(0, 0).R, "half-speed parallax stays above the white half")

	b.Viewport(dst, 60, 1)
	assert.Equal(t, uint8(255), dst.RGBAAt(0, 0).R)
}

func TestSolidBackdrop(t *testing.T) {
	b := NewSolidBackdrop(8, 8, color.RGBA{G: 9, A: 255})
	dst := image.NewRGBA(image.Rect(0, 0, 8, 4))
	b.Viewport(dst, 2, 1)
	assert.Equal(t, uint8(9), dst.RGBAAt(3, 3).G)
}
