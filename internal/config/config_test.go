package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresetSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		ok   bool
	}{
		{"16:9", 1280, 720, true},
		{"9:16", 720, 1280, true},
		{"4:5", 1080, 1350, true},
		{"", 0, 0, false},
		{"1:1", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, ok := PresetSize(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.w, w)
			assert.Equal(t, tt.h, h)
		})
	}
}

func TestFrameCount(t *testing.T) {
	assert.Equal(t, 300, (&Config{TotalDuration: 10, FPS: 30}).FrameCount())
	assert.Equal(t, 1, (&Config{TotalDuration: 0, FPS: 30}).FrameCount())
	assert.Equal(t, 2, (&Config{TotalDuration: 0.05, FPS: 30}).FrameCount())
}

func TestDefaultQuality(t *testing.T) {
	assert.Equal(t, 75, DefaultQuality("h264_videotoolbox"))
	assert.Equal(t, 28, DefaultQuality("h264_nvenc"))
	assert.Equal(t, 23, DefaultQuality("libx264"))
}

func TestStreamParams(t *testing.T) {
	c := &Config{Width: 640, Height: 360, FPS: 24, TotalDuration: 3, OutputVideo: "out.mp4", VideoEncoder: "libx264", Quality: 20}
	p := c.Stream()
	assert.Equal(t, 640, p.Width)
	assert.Equal(t, "out.mp4", p.Output)
	assert.Equal(t, 3.0, p.Duration)
}
