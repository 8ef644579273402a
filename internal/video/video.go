package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os/exec"

	"github.com/ivlev/scrolljourney/internal/config"
)

// Encoder opens an output stream that accepts frames in display order.
type Encoder interface {
	Open(ctx context.Context, params config.StreamParams) (Stream, error)
}

type Stream interface {
	WriteFrame(img image.Image) error
	Close() error
}

type FFmpegEncoder struct {
	// Binary defaults to "ffmpeg".
	Binary string
}

func (e *FFmpegEncoder) Open(ctx context.Context, params config.StreamParams) (Stream, error) {
	bin := e.Binary
	if bin == "" {
		bin = "ffmpeg"
	}

	cmd := exec.CommandContext(ctx, bin, e.buildFFmpegArgs(params)...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe error: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("ffmpeg start error: %w", err)
	}

	return &ffmpegStream{
		cmd:    cmd,
		stdin:  stdin,
		out:    &out,
		width:  params.Width,
		height: params.Height,
	}, nil
}

func (e *FFmpegEncoder) buildFFmpegArgs(params config.StreamParams) []string {
	// Используем rawvideo через stdin для исключения I/O на диск
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", params.Width, params.Height),
		"-framerate", fmt.Sprintf("%d", params.FPS),
		"-i", "-",
	}

	if params.AudioPath != "" {
		args = append(args, "-i", params.AudioPath, "-map", "0:v", "-map", "1:a", "-c:a", "aac", "-shortest")
	}

	args = append(args, "-pix_fmt", "yuv420p", "-c:v", params.Encoder)
	args = append(args, qualityArgs(params.Encoder, params.Quality)...)
	args = append(args, params.Output)
	return args
}

func qualityArgs(encoder string, quality int) []string {
	switch encoder {
	case "h264_videotoolbox":
		// VideoToolbox часто не поддерживает -q:v напрямую. Используем битрейт.
		bitrate := quality * 100 // кбит/с. 75 -> 7.5Мбит/с
		return []string{"-b:v", fmt.Sprintf("%dk", bitrate)}
	case "h264_nvenc":
		return []string{"-cq", fmt.Sprintf("%d", quality)}
	default: // libx264
		return []string{"-crf", fmt.Sprintf("%d", quality), "-preset", "medium"}
	}
}

type ffmpegStream struct {
	cmd           *exec.Cmd
	stdin         io.WriteCloser
	out           *bytes.Buffer
	width, height int
	frames        int
}

func (s *ffmpegStream) WriteFrame(img image.Image) error {
	if b := img.Bounds(); b.Dx() != s.width || b.Dy() != s.height {
		return fmt.Errorf("frame %d is %dx%d, stream is %dx%d", s.frames, b.Dx(), b.Dy(), s.width, s.height)
	}
	if err := writeRawRGBA(s.stdin, img); err != nil {
		return fmt.Errorf("write raw error (frame %d): %w", s.frames, err)
	}
	s.frames++
	return nil
}

func (s *ffmpegStream) Close() error {
	s.stdin.Close()
	if err := s.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg wait error: %w\nLog: %s", err, s.out.String())
	}
	return nil
}

func writeRawRGBA(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	// Проверяем, является ли изображение уже RGBA и имеет ли стандартный шаг (stride)
	if !ok || rgba.Stride != bounds.Dx()*4 || rgba.Rect.Min.X != 0 || rgba.Rect.Min.Y != 0 {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	_, err := w.Write(rgba.Pix)
	return err
}
