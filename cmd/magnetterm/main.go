// Magnetterm runs magnetic buttons in a terminal. Mouse motion is reported per
// cell and mapped into a pixel page where one cell is cellW x cellH pixels, so
// the trigger radius is round on screen rather than stretched by the cell
// aspect ratio.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/phanxgames/magnetic"
)

const (
	cellW     = 8
	cellH     = 16
	frameRate = time.Second / 60

	boxW    = 16 // outer width in cells, border included
	boxH    = 3
	marginX = 4 // free cells around a box for it to lean into
	marginY = 2
	slotW   = boxW + 2*marginX
	topRows = 1 // title line
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	fillColor   = lipgloss.Color("63")
	borderIdle  = lipgloss.Color("245")
	borderHover = lipgloss.Color("229")
)

type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// termButton is one button and the slot it is drawn in.
type termButton struct {
	text string
	slot int
	ctrl *magnetic.Controller
}

type model struct {
	cfg     magnetic.Config
	doc     *magnetic.Document
	tracker *magnetic.PointerTracker
	sched   *magnetic.FrameScheduler
	anim    *magnetic.TweenAnimator
	buttons []*termButton
	last    time.Time
	width   int
	height  int
}

// buttonDef describes a button in slot order.
type buttonDef struct {
	text     string
	noLabel  bool
	noFiller bool
}

var defaultButtons = []buttonDef{
	{text: "Explore"},
	{text: "Contact"},
	{text: "Plain", noLabel: true},
	{text: "Tilt", noFiller: true},
}

func newModel(cfg magnetic.Config, defs []buttonDef) *model {
	m := &model{
		cfg:     cfg,
		doc:     magnetic.NewDocument(float64(len(defs)*slotW*cellW), float64((topRows+boxH+2*marginY)*cellH)),
		tracker: magnetic.NewPointerTracker(),
		sched:   magnetic.NewFrameScheduler(),
		anim:    magnetic.NewTweenAnimator(),
	}
	host := magnetic.Host{Document: m.doc, Pointer: m.tracker, Animator: m.anim, Scheduler: m.sched}
	for i, def := range defs {
		r := slotRect(i)
		root := magnetic.NewElement(def.text, r.X, r.Y, r.Width, r.Height)
		if !def.noLabel {
			label := magnetic.NewElement(def.text+".label", 0, 0, r.Width, r.Height, cfg.LabelClass)
			label.AddChild(magnetic.NewElement(def.text+".inner", 0, 0, r.Width, r.Height, cfg.LabelInnerClass))
			root.AddChild(label)
			if !def.noFiller {
				filler := magnetic.NewElement(def.text+".filler", 0, 0, r.Width, r.Height, cfg.FillerClass)
				filler.FillY = 1
				root.AddChild(filler)
			}
		}
		m.doc.Root.AddChild(root)
		ctrl := magnetic.NewController(root, host, cfg)
		ctrl.Start()
		m.buttons = append(m.buttons, &termButton{text: def.text, slot: i, ctrl: ctrl})
	}
	return m
}

// slotRect returns the page rectangle, in pixels, of the box at rest in slot i.
func slotRect(i int) magnetic.Rect {
	return magnetic.Rect{
		X:      float64((i*slotW + marginX) * cellW),
		Y:      float64((topRows + marginY) * cellH),
		Width:  boxW * cellW,
		Height: boxH * cellH,
	}
}

// cellToPage maps a terminal cell to the pixel at its center.
func cellToPage(col, row int) magnetic.Vec2 {
	return magnetic.Vec2{
		X: magnetic.Map(float64(col)+0.5, 0, 1, 0, cellW),
		Y: magnetic.Map(float64(row)+0.5, 0, 1, 0, cellH),
	}
}

// pixelsToCells rounds a pixel offset to whole cells, clamped to ±limit.
func pixelsToCells(v, cell float64, limit int) int {
	n := int(math.Round(v / cell))
	return max(-limit, min(limit, n))
}

func (m *model) Init() tea.Cmd {
	return frame()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		p := cellToPage(msg.X, msg.Y)
		m.tracker.Move(p.X, p.Y)
		return m, nil

	case frameMsg:
		now := time.Time(msg)
		dt := float32(frameRate.Seconds())
		if !m.last.IsZero() {
			dt = float32(now.Sub(m.last).Seconds())
		}
		m.last = now
		m.step(dt)
		return m, frame()
	}
	return m, nil
}

// step advances every controller and transition by one frame.
func (m *model) step(dt float32) {
	m.sched.Tick()
	m.anim.Update(dt)
}

func (m *model) View() string {
	title := titleStyle.Render("magnetic: move the mouse near a button, q to quit")

	slots := make([]string, len(m.buttons))
	for i, b := range m.buttons {
		slots[i] = m.renderSlot(b)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, slots...)

	p := m.tracker.Position()
	var hovered []string
	for _, b := range m.buttons {
		if b.ctrl.State() == magnetic.HoverActive {
			hovered = append(hovered, b.text)
		}
	}
	status := statusStyle.Render(fmt.Sprintf("pointer %.0f,%.0f px  hover: %s",
		p.X, p.Y, strings.Join(hovered, ", ")))

	return lipgloss.JoinVertical(lipgloss.Left, title, row, status)
}

// renderSlot draws b's box inside its slot, shifted by the controller's
// current translate.
func (m *model) renderSlot(b *termButton) string {
	root := b.ctrl.Root()
	dx := pixelsToCells(root.TranslateX, cellW, marginX)
	dy := pixelsToCells(root.TranslateY, cellH, marginY)

	border := borderIdle
	if root.HasClass(m.cfg.HoverClass) {
		border = borderHover
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(boxW - 2).
		Height(boxH - 2)

	// The filler counts as covering the face once it is past halfway up.
	if f := b.ctrl.Filler(); f != nil && f.FillY < 0.5 {
		box = box.Background(fillColor)
	}

	inner := boxW - 2
	text := b.text
	shift := 0
	faint := false
	if l := b.ctrl.Label(); l != nil {
		shift = pixelsToCells(l.TranslateX, cellW, 2)
	}
	if in := b.ctrl.LabelInner(); in != nil {
		faint = in.Alpha < 0.5 || math.Abs(in.FillY) > 0.2
	}
	pad := max(0, min(inner-len(text), (inner-len(text))/2+shift))
	content := strings.Repeat(" ", pad) + text
	if faint {
		content = lipgloss.NewStyle().Faint(true).Render(content)
	}

	placed := lipgloss.NewStyle().
		MarginLeft(marginX + dx).
		MarginTop(marginY + dy).
		Render(box.Render(content))
	// Pad to the full slot so a leaning box never shifts its neighbours.
	return lipgloss.NewStyle().
		Width(slotW).
		Height(boxH + 2*marginY).
		Render(placed)
}

func main() {
	configPath := flag.String("config", "", "path to a magnetic YAML config")
	logPath := flag.String("log", "", "write debug diagnostics to this file")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		log.Fatal(err)
	}
}

// run starts the terminal program and returns once it exits. Deferred
// cleanup such as closing the log file happens before main reports errors.
func run(configPath, logPath string) error {
	cfg := magnetic.DefaultConfig()
	if configPath != "" {
		loaded, err := magnetic.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		magnetic.SetLogOutput(f)
		magnetic.SetDebugMode(true)
		defer func() {
			magnetic.SetDebugMode(false)
			magnetic.SetLogOutput(os.Stderr)
		}()
	}

	p := tea.NewProgram(
		newModel(cfg, defaultButtons),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal program failed: %w", err)
	}
	return nil
}
