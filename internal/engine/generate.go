package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ivlev/scrolljourney/internal/analyzer"
	"github.com/ivlev/scrolljourney/internal/director"
	"github.com/ivlev/scrolljourney/internal/journey"
	"github.com/ivlev/scrolljourney/internal/source"
)

func (p *VideoProject) handleGenerate(ctx context.Context) error {
	fmt.Println("[*] Режим генерации пути...")
	cfg := p.Config

	if p.Source == nil {
		return fmt.Errorf("для генерации нужен источник страницы (-input)")
	}

	backdrop, err := source.NewBackdrop(p.Source, cfg.Width, cfg.DPI)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	det, err := analyzer.NewDetector(cfg.Detector)
	if err != nil {
		return err
	}
	if bd, ok := det.(*analyzer.BandDetector); ok {
		if cfg.MinGap > 0 {
			bd.MinGap = cfg.MinGap
		}
		if cfg.MinHeight > 0 {
			bd.MinHeight = cfg.MinHeight
		}
		if cfg.EdgeThreshold > 0 {
			bd.EdgeThreshold = cfg.EdgeThreshold
		}
	}

	fmt.Printf("[*] Анализ страницы %dx%d...\n", backdrop.Width(), backdrop.Height())
	bands, err := det.Detect(backdrop.Page())
	if err != nil {
		return fmt.Errorf("ошибка анализа страницы: %w", err)
	}
	fmt.Printf("[*] Найдено секций: %d\n", len(bands))

	dir := director.NewDirector(cfg.Width, cfg.Height)
	j, err := dir.GenerateJourney(bands, backdrop.Height())
	if err != nil {
		return err
	}

	outputPath := cfg.JourneyOutput
	if outputPath == "" {
		outputPath = director.GenerateJourneyPath()
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return err
	}
	if err := journey.WriteFile(j, outputPath); err != nil {
		return err
	}

	fmt.Printf("[+++] Успех! Путь %v сохранен: %s\n", j.Sections(), outputPath)
	return nil
}
