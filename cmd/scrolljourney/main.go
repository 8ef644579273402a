package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/ivlev/scrolljourney/internal/config"
	"github.com/ivlev/scrolljourney/internal/effects"
	"github.com/ivlev/scrolljourney/internal/engine"
	"github.com/ivlev/scrolljourney/internal/motion"
	"github.com/ivlev/scrolljourney/internal/preview"
	"github.com/ivlev/scrolljourney/internal/source"
	"github.com/ivlev/scrolljourney/internal/system"
	"github.com/ivlev/scrolljourney/internal/video"
	"github.com/ivlev/scrolljourney/internal/viewer"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Увеличиваем лимиты системы (для macOS/Linux)
	system.InitResourceLimits()

	// Создаем нужные директории, если их нет
	dirs := []string{"input/audio", "input/pdf", "output", "journeys"}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	modePtr := flag.String("mode", "render", "Режим: render (видео), preview (терминал), view (окно), generate (путь по странице)")
	inputPtr := flag.String("input", "", "Путь к PDF или папке с изображениями (по умолчанию: самый свежий файл в input/pdf/, none - сплошной фон)")
	outputPtr := flag.String("output", "", "Путь к видео (если пусто, генерируется автоматически в output/)")
	journeyPtr := flag.String("journey", "", "YAML-файл пути (latest - самый свежий в journeys/)")
	journeyPresetPtr := flag.String("journey-preset", "airy", "Встроенный путь: airy, orbit, identity")
	journeyOutPtr := flag.String("journey-output", "", "Куда сохранить сгенерированный путь (по умолчанию journeys/journey_<время>.yaml)")
	durationPtr := flag.Float64("duration", 12, "Длительность видео в секундах")
	dwellPtr := flag.Float64("dwell", 0.3, "Доля времени, которую прокрутка стоит на границах секций (0-0.9)")
	widthPtr := flag.Int("width", 1280, "Ширина")
	heightPtr := flag.Int("height", 720, "Высота")
	fpsPtr := flag.Int("fps", 30, "FPS")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Потоки")
	dpiPtr := flag.Int("dpi", 150, "DPI")
	parallaxPtr := flag.Float64("parallax", 1.0, "Скорость фона относительно прокрутки")
	smoothingPtr := flag.String("smoothing", "exponential", "Сглаживание: exponential, spring")
	audioPtr := flag.String("audio", "", "Путь к аудио (по умолчанию: самый свежий файл в input/audio/)")
	audioSyncPtr := flag.Bool("audio-sync", true, "Синхронизировать длительность видео с аудио")
	presetPtr := flag.String("preset", "", "Пресет формата: 16:9, 9:16 (Shorts/TikTok), 4:5 (Instagram)")
	qualityPtr := flag.Int("quality", 0, "Качество видео (0 - авто, x264: CRF 1-51, VideoToolbox: битрейт = Q*100кбит/с)")
	statsPtr := flag.Bool("stats", false, "Отчет о производительности и запись в benchmark.log")
	progressPtr := flag.Bool("progress-bar", true, "Полоса прогресса прокрутки")
	annotationsPtr := flag.Bool("annotations", true, "Выноски в секции specs")
	ctaPtr := flag.String("cta-url", "", "Ссылка для QR-кода в последней секции")
	lineWidthPtr := flag.Float64("line-width", 2, "Толщина линий каркаса")
	detectorPtr := flag.String("detector", "bands", "Детектор секций для -mode generate")
	minGapPtr := flag.Int("min-gap", 0, "Минимальный пустой промежуток между секциями, px (0 - по умолчанию)")
	minHeightPtr := flag.Int("min-height", 0, "Минимальная высота секции, px (0 - по умолчанию)")
	edgePtr := flag.Float64("edge-threshold", 0, "Порог градиента для детектора (0 - по умолчанию)")

	flag.Parse()

	width, height := *widthPtr, *heightPtr
	if w, h, ok := config.PresetSize(*presetPtr); ok {
		width, height = w, h
	}

	mode := *modePtr
	switch mode {
	case "render", "preview", "view", "generate":
	default:
		log.Fatalf("[-] Неизвестный режим: %s", mode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := &config.Config{
		Mode:          mode,
		JourneyPath:   *journeyPtr,
		JourneyPreset: *journeyPresetPtr,
		JourneyOutput: *journeyOutPtr,
		TotalDuration: *durationPtr,
		DwellShare:    *dwellPtr,
		Width:         width,
		Height:        height,
		FPS:           *fpsPtr,
		Workers:       *workersPtr,
		DPI:           *dpiPtr,
		Parallax:      *parallaxPtr,
		Smoothing:     *smoothingPtr,
		Preset:        *presetPtr,
		ShowStats:     *statsPtr,
		BuildVersion:  version,
		ShowProgress:  *progressPtr,
		Annotations:   *annotationsPtr,
		CTAURL:        *ctaPtr,
		LineWidth:     *lineWidthPtr,
		Detector:      *detectorPtr,
		MinGap:        *minGapPtr,
		MinHeight:     *minHeightPtr,
		EdgeThreshold: *edgePtr,
	}

	switch mode {
	case "preview":
		if err := runPreview(ctx, cfg); err != nil {
			log.Fatalf("[-] Ошибка предпросмотра: %v", err)
		}
		return
	case "view":
		if err := runViewer(cfg); err != nil {
			log.Fatalf("[-] Ошибка окна: %v", err)
		}
		return
	}

	src := openSource(*inputPtr, mode, cfg)
	if src != nil {
		defer src.Close()
	}

	if mode == "render" {
		prepareRender(ctx, cfg, *audioPtr, *audioSyncPtr, *outputPtr, *qualityPtr)
	}

	overlays, err := effects.NewDefault(cfg)
	if err != nil {
		log.Fatalf("[-] Ошибка инициализации эффектов: %v", err)
	}

	project := engine.NewVideoProject(cfg, src, &video.FFmpegEncoder{}, overlays)
	if err := project.Run(ctx); err != nil {
		log.Fatalf("[-] Ошибка проекта: %v", err)
	}

	if mode == "render" {
		fmt.Printf("[+++] Успех! Результат: %s\n", cfg.OutputVideo)
	}
}

// openSource returns nil when the video should be rendered over a solid page.
func openSource(input, mode string, cfg *config.Config) source.Source {
	if input == "none" {
		return nil
	}
	if input == "" {
		latest, err := system.FindLatestPDF("input/pdf")
		if err != nil {
			if mode == "generate" {
				log.Fatalf("[-] Ошибка: %v. Положите PDF в input/pdf/", err)
			}
			fmt.Println("[*] Страница не задана, используется сплошной фон")
			return nil
		}
		input = latest
		fmt.Printf("[*] Выбран файл: %s\n", input)
	}

	src, err := source.Open(input)
	if err != nil {
		log.Fatalf("[-] Ошибка инициализации источника: %v", err)
	}
	if src.PageCount() == 0 {
		log.Fatalf("[-] Ошибка: в источнике нет страниц или изображений")
	}
	cfg.InputPath = input
	return src
}

func prepareRender(ctx context.Context, cfg *config.Config, audioPath string, audioSync bool, output string, quality int) {
	if audioPath == "" {
		if latest, err := system.FindLatestAudio("input/audio"); err == nil {
			audioPath = latest
			fmt.Printf("[*] Выбрано аудио: %s\n", audioPath)
		}
	}
	if audioPath != "" && audioSync {
		audioDur, err := system.GetAudioDuration(ctx, audioPath)
		if err == nil {
			cfg.TotalDuration = audioDur
			fmt.Printf("[*] Длительность видео установлена по аудио: %.2fs\n", audioDur)
		} else {
			log.Printf("[!] Не удалось получить длительность аудио: %v", err)
		}
	}
	cfg.AudioPath = audioPath

	if output == "" {
		nameSource := "journey"
		switch {
		case cfg.InputPath != "":
			nameSource = cfg.InputPath
		case audioPath != "":
			nameSource = audioPath
		}
		baseName := filepath.Base(nameSource)
		nameOnly := strings.TrimSuffix(baseName, filepath.Ext(baseName))
		cleanName := strings.ReplaceAll(nameOnly, " ", "_")
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		output = filepath.Join("output", fmt.Sprintf("%s_%s.mp4", cleanName, timestamp))
	}
	cfg.OutputVideo = output

	cfg.VideoEncoder = system.GetBestH264Encoder()
	if cfg.VideoEncoder != "libx264" {
		fmt.Printf("[*] Обнаружено аппаратное ускорение: %s\n", cfg.VideoEncoder)
	}
	cfg.Quality = quality
	if cfg.Quality == 0 {
		cfg.Quality = config.DefaultQuality(cfg.VideoEncoder)
	}
}

func runPreview(ctx context.Context, cfg *config.Config) error {
	j := engine.LoadJourney(cfg)
	s, err := motion.NewSmoother(cfg.Smoothing, cfg.FPS)
	if err != nil {
		return err
	}
	return preview.Run(ctx, preview.NewModel(j, s, cfg.FPS))
}

func runViewer(cfg *config.Config) error {
	j := engine.LoadJourney(cfg)
	s, err := motion.NewSmoother(cfg.Smoothing, 60)
	if err != nil {
		return err
	}
	name := cfg.JourneyPath
	if name == "" {
		name = cfg.JourneyPreset
	}
	return viewer.Run(j, viewer.Options{
		Title:       fmt.Sprintf("scrolljourney %s · %s", version, name),
		Width:       cfg.Width,
		Height:      cfg.Height,
		JourneyName: name,
		Smoother:    s,
	})
}
