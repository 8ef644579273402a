// Package preview is a terminal front end: the page scrolls with the
// keyboard or mouse wheel and the product is drawn as an ASCII wireframe.
package preview

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ivlev/scrolljourney/internal/journey"
	"github.com/ivlev/scrolljourney/internal/motion"
	"github.com/ivlev/scrolljourney/internal/renderer"
	"github.com/ivlev/scrolljourney/internal/scroll"
)

var (
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00F5FF"))
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#66FA80"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

type frameMsg time.Time

// Model is the bubbletea model. It is driven by a fixed-rate tick; every
// tick reads the progress cell once and advances the rig one step.
type Model struct {
	journey *journey.Journey
	tracker *scroll.Tracker
	mouse   *scroll.Mouse
	rig     *motion.Rig
	mesh    renderer.Mesh
	fps     int

	width, height int
	elapsed       float64

	located   journey.Located
	transform motion.Transform
}

func NewModel(j *journey.Journey, s motion.Smoother, fps int) *Model {
	if fps <= 0 {
		fps = 30
	}
	start := j.Locate(0)
	m := &Model{
		journey: j,
		mouse:   &scroll.Mouse{},
		rig:     motion.NewRig(s, start.Pose),
		mesh:    renderer.Icosahedron(),
		fps:     fps,
		width:   80,
		height:  24,
		located: start,
	}
	m.tracker = scroll.NewTracker(nil, m.pageHeight(), float64(m.rows()))
	m.transform = m.rig.Current()
	return m
}

// Run starts the interactive preview and blocks until the user quits.
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// rows is the number of terminal rows used for the scene; one is the status line.
func (m *Model) rows() int {
	if m.height < 2 {
		return 1
	}
	return m.height - 1
}

// pageHeight gives every section one screen, plus one to scroll into.
func (m *Model) pageHeight() float64 {
	return float64(m.rows() * (m.journey.Len() + 1))
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		page := float64(m.rows())
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.tracker.ScrollBy(-1)
		case "down", "j":
			m.tracker.ScrollBy(1)
		case "pgup", "b":
			m.tracker.ScrollBy(-page)
		case "pgdown", " ", "f":
			m.tracker.ScrollBy(page)
		case "home", "g":
			m.tracker.ScrollTo(0)
		case "end", "G":
			m.tracker.ScrollTo(m.tracker.MaxOffset())
		}

	case tea.MouseMsg:
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			m.tracker.ScrollBy(-3)
		case msg.Button == tea.MouseButtonWheelDown:
			m.tracker.ScrollBy(3)
		case msg.Action == tea.MouseActionMotion:
			m.mouse.SetPixel(float64(msg.X), float64(msg.Y), float64(m.width), float64(m.rows()))
		}

	case tea.WindowSizeMsg:
		p := m.tracker.Progress()
		m.width, m.height = msg.Width, msg.Height
		m.tracker.Resize(m.pageHeight(), float64(m.rows()))
		m.tracker.ScrollToProgress(p)

	case frameMsg:
		m.Advance(1 / float64(m.fps))
		return m, m.tick()
	}
	return m, nil
}

// Advance runs one frame of the scroll-to-pose pipeline.
func (m *Model) Advance(dt float64) {
	m.elapsed += dt
	m.located = m.journey.Locate(m.tracker.Cell().Load())
	m.mouse.Step()
	mx, my := m.mouse.Value()
	m.transform = m.rig.Step(m.located, m.elapsed, mx, my)
}

func (m *Model) View() string {
	cols, rows := m.width, m.rows()
	grid := NewGrid(cols, rows)
	// Terminal cells are about twice as tall as wide.
	vp := renderer.Viewport{Width: float64(cols), Height: float64(rows) * 2}
	grid.DrawMesh(m.mesh, renderer.Project(m.mesh, m.transform, vp))

	var b strings.Builder
	b.WriteString(grid.String())
	b.WriteString(m.status())
	return b.String()
}

func (m *Model) status() string {
	progress := m.tracker.Progress()
	barWidth := 20
	filled := int(progress * float64(barWidth))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	return fmt.Sprintf("%s %s %s",
		sectionStyle.Render(fmt.Sprintf("%-10s", m.located.Section)),
		progressStyle.Render(fmt.Sprintf("%s %3.0f%%", bar, progress*100)),
		hintStyle.Render("↑↓ pgup pgdn home end · q"),
	)
}

func (m *Model) Located() journey.Located    { return m.located }
func (m *Model) Tracker() *scroll.Tracker    { return m.tracker }
func (m *Model) Transform() motion.Transform { return m.transform }
