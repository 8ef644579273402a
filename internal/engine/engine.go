package engine

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/scrolljourney/internal/config"
	"github.com/ivlev/scrolljourney/internal/director"
	"github.com/ivlev/scrolljourney/internal/effects"
	"github.com/ivlev/scrolljourney/internal/journey"
	"github.com/ivlev/scrolljourney/internal/motion"
	"github.com/ivlev/scrolljourney/internal/renderer"
	"github.com/ivlev/scrolljourney/internal/scroll"
	"github.com/ivlev/scrolljourney/internal/source"
	"github.com/ivlev/scrolljourney/internal/system"
	"github.com/ivlev/scrolljourney/internal/video"
)

// PageColor is the backdrop used when no input page is given.
var PageColor = color.RGBA{R: 10, G: 12, B: 20, A: 255}

type VideoProject struct {
	Config   *config.Config
	Source   source.Source // nil renders over a solid page
	Encoder  video.Encoder
	Overlays effects.Overlay
}

func NewVideoProject(cfg *config.Config, src source.Source, ve video.Encoder, ov effects.Overlay) *VideoProject {
	return &VideoProject{
		Config:   cfg,
		Source:   src,
		Encoder:  ve,
		Overlays: ov,
	}
}

func (p *VideoProject) Run(ctx context.Context) error {
	if p.Config.Mode == "generate" {
		return p.handleGenerate(ctx)
	}

	startTime := time.Now()
	cfg := p.Config
	if cfg.FPS <= 0 || cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("некорректные параметры видео: %dx%d @ %d FPS", cfg.Width, cfg.Height, cfg.FPS)
	}

	j := LoadJourney(cfg)

	backdrop, err := p.buildBackdrop(j)
	if err != nil {
		return err
	}

	smoother, err := motion.NewSmoother(cfg.Smoothing, cfg.FPS)
	if err != nil {
		return err
	}

	tracker := scroll.NewTracker(&scroll.Progress{}, float64(backdrop.Height()), float64(cfg.Height))
	planner := &Planner{
		Journey: j,
		Script:  scroll.Dwell(j, cfg.TotalDuration, cfg.DwellShare),
		Tracker: tracker,
		Rig:     motion.NewRig(smoother, j.Locate(0).Pose),
		Mouse:   &scroll.Mouse{},
		Cursor:  Lissajous,
		FPS:     cfg.FPS,
	}

	frameCount := cfg.FrameCount()

	fmt.Println("--- [PROJECT: SCROLL JOURNEY] ---")
	fmt.Printf("[*] Путь: %v | Секций: %d\n", j.Sections(), j.Len())
	fmt.Printf("[*] Разрешение: %dx%d @ %d FPS | Кадров: %d | Страница: %dpx\n",
		cfg.Width, cfg.Height, cfg.FPS, frameCount, backdrop.Height())
	fmt.Println("-----------------------------")

	planStart := time.Now()
	frames := planner.Plan(frameCount)
	planTime := time.Since(planStart)

	renderStart := time.Now()
	if err := p.renderFrames(ctx, frames, backdrop); err != nil {
		return err
	}
	renderTime := time.Since(renderStart)

	if cfg.ShowStats {
		p.report(frameCount, time.Since(startTime), planTime, renderTime)
	}
	return nil
}

// LoadJourney resolves the journey to play. A file that fails to load is
// reported once and replaced by the identity journey.
func LoadJourney(cfg *config.Config) *journey.Journey {
	path := cfg.JourneyPath
	if path == "latest" {
		latest, err := director.FindLatestJourney(director.JourneysDir)
		if err != nil {
			log.Printf("[!] %v, используется пресет %q", err, cfg.JourneyPreset)
			path = ""
		} else {
			path = latest
		}
	}

	if path != "" {
		j, err := journey.ReadFile(path)
		if err != nil {
			log.Printf("[!] Некорректный путь, используется нейтральная поза: %v", err)
			return journey.Identity()
		}
		fmt.Printf("[*] Используется путь: %s\n", path)
		return j
	}

	j, ok := journey.Preset(cfg.JourneyPreset)
	if !ok {
		log.Printf("[!] Неизвестный пресет %q, используется нейтральная поза", cfg.JourneyPreset)
		return journey.Identity()
	}
	return j
}

func (p *VideoProject) buildBackdrop(j *journey.Journey) (*source.Backdrop, error) {
	cfg := p.Config
	if p.Source == nil {
		// One screen per section plus the first one.
		return source.NewSolidBackdrop(cfg.Width, cfg.Height*(j.Len()+1), PageColor), nil
	}
	b, err := source.NewBackdrop(p.Source, cfg.Width, cfg.DPI)
	if err != nil {
		return nil, fmt.Errorf("ошибка подготовки страницы: %w", err)
	}
	return b, nil
}

// renderFrames rasterizes frames concurrently and streams them to the
// encoder in order. At most 2*Workers finished frames wait for the writer.
func (p *VideoProject) renderFrames(ctx context.Context, frames []FrameState, backdrop *source.Backdrop) error {
	cfg := p.Config
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := p.Encoder.Open(ctx, cfg.Stream())
	if err != nil {
		return fmt.Errorf("ошибка запуска кодировщика: %w", err)
	}

	mesh := renderer.Icosahedron()
	style := renderer.NeonStyle()
	if cfg.LineWidth > 0 {
		style.LineWidth = cfg.LineWidth
	}
	base := renderer.NewRaster(style)
	base.Scale = float64(cfg.Height) / 720
	vp := renderer.Viewport{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	rect := image.Rect(0, 0, cfg.Width, cfg.Height)

	done := make([]chan *image.RGBA, len(frames))
	for i := range done {
		done[i] = make(chan *image.RGBA, 1)
	}
	window := make(chan struct{}, workers*2)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers + 1)

	g.Go(func() error {
		for i := range frames {
			select {
			case window <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			f := frames[i]
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				img := system.GetImage(rect)
				backdrop.Viewport(img, f.Offset, cfg.Parallax)

				raster := *base
				raster.Scale *= renderer.Pulse(f.Time)
				raster.Draw(img, mesh, renderer.Project(mesh, f.Transform, vp))

				if p.Overlays != nil {
					p.Overlays.Apply(img, f.Overlay(vp))
				}
				done[f.Index] <- img
				return nil
			})
		}
		return nil
	})

	var writeErr error
	for i := range frames {
		var img *image.RGBA
		select {
		case img = <-done[i]:
		case <-gctx.Done():
		}
		if img == nil {
			break
		}
		writeErr = stream.WriteFrame(img)
		system.PutImage(img)
		<-window
		if writeErr != nil {
			writeErr = fmt.Errorf("кадр %d: %w", i, writeErr)
			cancel()
			break
		}
		if i == len(frames)-1 || (cfg.FPS > 0 && (i+1)%cfg.FPS == 0) {
			fmt.Printf("[>] Ready: %d/%d\n", i+1, len(frames))
		}
	}

	renderErr := g.Wait()
	closeErr := stream.Close()

	switch {
	case writeErr != nil:
		return writeErr
	case renderErr != nil:
		return fmt.Errorf("ошибка рендеринга: %w", renderErr)
	case closeErr != nil:
		return fmt.Errorf("ошибка кодирования: %w", closeErr)
	}
	return nil
}

func (p *VideoProject) report(frameCount int, total, plan, render time.Duration) {
	cfg := p.Config
	fps := float64(frameCount) / total.Seconds()
	snap := system.TakeSnapshot()

	fmt.Printf("--- [PERFORMANCE REPORT] ---\n"+
		"Build: %s\n"+
		"Total Time: %.2fs\n"+
		"Planning: %.2fs\n"+
		"Rendering + Encoding: %.2fs\n"+
		"Effective FPS: %.2f\n"+
		"%s\n"+
		"----------------------------\n",
		cfg.BuildVersion, total.Seconds(), plan.Seconds(), render.Seconds(), fps, snap)

	input := "solid"
	if cfg.InputPath != "" {
		input = filepath.Base(cfg.InputPath)
	}
	logEntry := fmt.Sprintf("[%s] Build: %s | Input: %s | Frames: %d | Total: %.2fs | Render: %.2fs | FPS: %.2f | RSS: %.1fMB\n",
		time.Now().Format("2006-01-02 15:04:05"),
		cfg.BuildVersion,
		input,
		frameCount,
		total.Seconds(),
		render.Seconds(),
		fps,
		snap.ProcessRSSMB,
	)

	f, err := os.OpenFile("benchmark.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Printf("[!] Не удалось записать benchmark.log: %v\n", err)
		return
	}
	defer f.Close()
	f.WriteString(logEntry)
}
