// Package viz renders the coupled strings live in the terminal using a
// braille canvas, with interactive pluck and parameter controls.
package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/cjlkaiser-cpu/physics-sound-lab/internal/sim"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
	frameRate    = 30
)

// semitone is the frequency ratio of one equal-tempered semitone, used by
// the tuning keys.
var semitone = math.Pow(2, 1.0/12.0)

type TickMsg time.Time

// Model owns the simulation and the terminal view. The bubbletea loop is
// the single caller, which satisfies the core's single-thread contract.
type Model struct {
	sim    *sim.Simulation
	canvas *Canvas

	running       bool
	stepsPerFrame int
	showHelp      bool
}

func NewModel(s *sim.Simulation) Model {
	return Model{
		sim:           s,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		running:       true,
		stepsPerFrame: int(sim.SampleRate*sim.Oversample) / frameRate,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.sim.Reset()
		case "1":
			m.sim.Pluck(0, 0.5, 1.0)
		case "2":
			m.sim.Pluck(1, 0.5, 1.0)
		case "[":
			m.sim.SetString1Frequency(m.sim.Frequency1() / semitone)
		case "]":
			m.sim.SetString1Frequency(m.sim.Frequency1() * semitone)
		case "{":
			m.sim.SetString2Frequency(m.sim.Frequency2() / semitone)
		case "}":
			m.sim.SetString2Frequency(m.sim.Frequency2() * semitone)
		case "d":
			m.sim.SetDamping(m.sim.Damping() / 2)
		case "D":
			m.sim.SetDamping(m.sim.Damping()*2 + 1e-6)
		case "s":
			m.sim.SetBridgeStiffness(m.sim.BridgeStiffness() - 0.1)
		case "S":
			m.sim.SetBridgeStiffness(m.sim.BridgeStiffness() + 0.1)
		case "-":
			m.stepsPerFrame /= 2
			if m.stepsPerFrame < sim.Oversample {
				m.stepsPerFrame = sim.Oversample
			}
		case "+", "=":
			m.stepsPerFrame *= 2
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.sim.Step(m.stepsPerFrame)
		}
		return m, tick()
	}
	return m, nil
}

// draw paints both strings as polylines, string 1 on the upper half and
// string 2 on the lower, joined at the bridge on the right edge.
func (m *Model) draw() {
	m.canvas.Clear()

	cw := canvasWidth * 2
	ch := canvasHeight * 4
	row1 := ch / 4
	row2 := 3 * ch / 4
	scaleY := float64(ch) / 5.0

	m.drawString(m.sim.Displacement1(), row1, cw, scaleY)
	m.drawString(m.sim.Displacement2(), row2, cw, scaleY)

	// bridge post connecting both endpoints
	bridgeX := cw - 2
	by1 := row1 - int(m.sim.BridgeY()*scaleY)
	by2 := row2 - int(m.sim.BridgeY()*scaleY)
	m.canvas.DrawLine(bridgeX, by1, bridgeX, by2)
}

func (m *Model) drawString(y []float64, baseRow, cw int, scaleY float64) {
	scaleX := float64(cw-4) / float64(len(y)-1)
	prevX, prevY := 2, baseRow-int(y[0]*scaleY)
	for i := 1; i < len(y); i++ {
		px := 2 + int(float64(i)*scaleX)
		py := baseRow - int(y[i]*scaleY)
		if py < 0 {
			py = 0
		}
		if py >= canvasHeight*4 {
			py = canvasHeight*4 - 1
		}
		m.canvas.DrawLine(prevX, prevY, px, py)
		prevX, prevY = px, py
	}
	// anchor marker on the fixed end
	for dy := -2; dy <= 2; dy++ {
		m.canvas.Set(2, baseRow+dy)
	}
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("SYMPATHETIC STRINGS") + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString("PAUSED\n\n")
	}

	if hist := m.sim.Energy1History(); len(hist) > 1 {
		chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy 1"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if hist := m.sim.Energy2History(); len(hist) > 1 {
		chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy 2"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.3fs", m.sim.Time())) + "\n")
	s.WriteString(labelStyle.Render("String 1") + valueStyle.Render(fmt.Sprintf("%.2f Hz  E=%.3f", m.sim.Frequency1(), m.sim.Energy1())) + "\n")
	s.WriteString(labelStyle.Render("String 2") + valueStyle.Render(fmt.Sprintf("%.2f Hz  E=%.3f", m.sim.Frequency2(), m.sim.Energy2())) + "\n")
	s.WriteString(labelStyle.Render("Bridge") + valueStyle.Render(fmt.Sprintf("y=%+.4f  k=%.1f", m.sim.BridgeY(), m.sim.BridgeStiffness())) + "\n")
	s.WriteString(labelStyle.Render("Damping") + valueStyle.Render(fmt.Sprintf("%.6f", m.sim.Damping())) + "\n")

	s.WriteString(helpStyle.Render("\n1/2:Pluck SP:Pause R:Reset Q:Quit\n[ ] { }:Tune d/D s/S:Damp/Stiff ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  1 / 2    - Pluck string 1 / 2       ║
║  Space    - Pause/Resume             ║
║  R        - Reset                    ║
║  [ / ]    - Tune string 1 down/up    ║
║  { / }    - Tune string 2 down/up    ║
║  d / D    - Damping down/up          ║
║  s / S    - Bridge stiffness -/+     ║
║  + / -    - Simulation speed         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Run launches the live view on a fresh program.
func Run(s *sim.Simulation) error {
	p := tea.NewProgram(NewModel(s))
	_, err := p.Run()
	return err
}
