package config

type Config struct {
	Mode          string
	InputPath     string
	OutputVideo   string
	JourneyPath   string
	JourneyPreset string
	JourneyOutput string
	TotalDuration float64
	DwellShare    float64
	Width         int
	Height        int
	FPS           int
	Workers       int
	DPI           int
	Parallax      float64
	Smoothing     string
	AudioPath     string
	Preset        string
	VideoEncoder  string
	Quality       int
	ShowStats     bool
	BuildVersion  string

	// Overlays
	ShowProgress bool
	Annotations  bool
	CTAURL       string
	LineWidth    float64

	// Journey generation
	Detector      string
	MinGap        int
	MinHeight     int
	EdgeThreshold float64
}

// StreamParams describes one encoded output stream.
type StreamParams struct {
	Width, Height int
	FPS           int
	Duration      float64
	Output        string
	AudioPath     string
	Encoder       string
	Quality       int
}

// Stream derives encoder parameters from the config.
func (c *Config) Stream() StreamParams {
	return StreamParams{
		Width:     c.Width,
		Height:    c.Height,
		FPS:       c.FPS,
		Duration:  c.TotalDuration,
		Output:    c.OutputVideo,
		AudioPath: c.AudioPath,
		Encoder:   c.VideoEncoder,
		Quality:   c.Quality,
	}
}

// FrameCount is the number of frames in the rendered video, at least one.
func (c *Config) FrameCount() int {
	n := int(c.TotalDuration*float64(c.FPS) + 0.5)
	if n < 1 {
		return 1
	}
	return n
}

// PresetSize returns the frame size for a format preset.
func PresetSize(name string) (width, height int, ok bool) {
	switch name {
	case "16:9":
		return 1280, 720, true
	case "9:16":
		return 720, 1280, true
	case "4:5":
		return 1080, 1350, true
	}
	return 0, 0, false
}

// DefaultQuality picks a quality value suited to the encoder.
func DefaultQuality(encoder string) int {
	switch encoder {
	case "h264_videotoolbox":
		return 75
	case "h264_nvenc":
		return 28
	default:
		return 23
	}
}
