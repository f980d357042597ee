package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/quakesim/internal/excite"
	"github.com/san-kum/quakesim/internal/metrics"
	"github.com/san-kum/quakesim/internal/response"
	"github.com/san-kum/quakesim/internal/sdof"
)

const (
	canvasWidth  = 64
	canvasHeight = 20
	trailLength  = 80
	chartWindow  = 300
	tickRate     = time.Second / 30
)

type TickMsg time.Time

// Model replays a computed response as a swaying portal frame. Every tick
// advances the playhead by a few excitation samples; the structure sways by
// the stored relative displacement while the bar at the bottom shows the
// input sample driving it.
type Model struct {
	sys  sdof.System
	rec  *excite.Record
	hist *response.History

	canvas   *Canvas
	trail    []struct{ x, y int }
	frame    int
	speed    int
	playing  bool
	showHelp bool

	dispScale  float64
	inputScale float64
	peakDisp   float64
	peakAccel  float64
}

// NewModel sizes the drawing scales from the peak response so the sway
// always fits the canvas, and picks a playback speed close to real time.
func NewModel(sys sdof.System, rec *excite.Record, hist *response.History) Model {
	cw := float64(canvasWidth * 2)

	peakDisp := metrics.Peak(hist.Disp)
	if peakDisp == 0 {
		peakDisp = 1
	}
	peakInput := metrics.Peak(rec.Samples)
	if peakInput == 0 {
		peakInput = 1
	}

	speed := int(tickRate.Seconds()/hist.Dt + 0.5)
	if speed < 1 {
		speed = 1
	}

	m := Model{
		sys:        sys,
		rec:        rec,
		hist:       hist,
		canvas:     NewCanvas(canvasWidth, canvasHeight),
		trail:      make([]struct{ x, y int }, 0, trailLength),
		speed:      speed,
		playing:    true,
		dispScale:  cw * 0.35 / peakDisp,
		inputScale: cw * 0.35 / peakInput,
		peakDisp:   peakDisp,
		peakAccel:  metrics.Peak(hist.Accel),
	}
	m.draw()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "r":
			m.frame = 0
			m.trail = m.trail[:0]
			m.playing = true
			m.draw()
		case "[":
			m.playing = false
			m.scrub(-1)
		case "]":
			m.playing = false
			m.scrub(1)
		case "+", "=":
			if m.speed < 1024 {
				m.speed *= 2
			}
		case "-", "_":
			if m.speed > 1 {
				m.speed /= 2
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.playing {
			m.frame += m.speed
			if m.frame >= m.hist.Len() {
				m.frame = m.hist.Len() - 1
				m.playing = false
			}
			m.draw()
		}
		return m, tea.Tick(tickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) scrub(dir int) {
	m.frame += dir
	if m.frame < 0 {
		m.frame = 0
	}
	if m.frame >= m.hist.Len() {
		m.frame = m.hist.Len() - 1
	}
	m.draw()
}

func (m *Model) atEnd() bool {
	return m.frame >= m.hist.Len()-1
}

// draw renders a portal frame fixed to the shaking ground: two columns,
// a beam carrying the mass, the sway trail and the input bar.
func (m *Model) draw() {
	m.canvas.Clear()
	cw, ch := canvasWidth*2, canvasHeight*4
	cx := cw / 2
	groundY := ch - 8
	beamY := 14
	halfSpan := 22

	// Ground line with hatching.
	m.canvas.DrawLine(0, groundY, cw-1, groundY)
	for x := 2; x < cw; x += 10 {
		m.canvas.DrawLine(x+4, groundY+4, x, groundY)
	}

	sway := int(m.hist.Disp[m.frame] * m.dispScale)

	// Trail of the beam midpoint.
	m.trail = append(m.trail, struct{ x, y int }{cx + sway, beamY})
	if len(m.trail) > trailLength {
		m.trail = m.trail[1:]
	}
	for _, pt := range m.trail {
		m.canvas.Set(pt.x, pt.y)
	}

	// Columns tilt with the relative displacement; the beam follows.
	m.canvas.DrawLine(cx-halfSpan, groundY, cx-halfSpan+sway, beamY)
	m.canvas.DrawLine(cx+halfSpan, groundY, cx+halfSpan+sway, beamY)
	m.canvas.DrawLine(cx-halfSpan+sway, beamY, cx+halfSpan+sway, beamY)
	m.canvas.Dot(cx+sway, beamY, 2)

	// Input bar under the ground line.
	if m.frame < len(m.rec.Samples) {
		bar := int(m.rec.Samples[m.frame] * m.inputScale)
		if bar != 0 {
			m.canvas.DrawLine(cx, groundY+6, cx+bar, groundY+6)
			m.canvas.DrawLine(cx, groundY+7, cx+bar, groundY+7)
		}
	}
}

func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.String())

	status := statusRunStyle.Render(fmt.Sprintf("PLAYING ×%d", m.speed))
	if !m.playing {
		if m.atEnd() {
			status = statusDoneStyle.Render("DONE · R to replay")
		} else {
			status = statusPauseStyle.Render("PAUSED")
		}
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.hist.Scheme)+" · "+m.rec.Name) + "\n")
	s.WriteString(status + "\n\n")

	t := m.hist.Time(m.frame)
	duration := m.hist.Time(m.hist.Len() - 1)
	frac := 0.0
	if duration > 0 {
		frac = t / duration
	}
	s.WriteString(fmt.Sprintf("%s %5.2fs / %.2fs\n\n", progressBar(frac, 22), t, duration))

	start := m.frame - chartWindow
	if start < 0 {
		start = 0
	}
	if window := m.hist.Disp[start : m.frame+1]; len(window) > 1 {
		chart := asciigraph.Plot(window, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("displacement"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Disp") + valueStyle.Render(fmt.Sprintf("%+.4e m", m.hist.Disp[m.frame])) + "\n")
	s.WriteString(labelStyle.Render("Vel") + valueStyle.Render(fmt.Sprintf("%+.4e m/s", m.hist.Vel[m.frame])) + "\n")
	s.WriteString(labelStyle.Render("Accel") + valueStyle.Render(fmt.Sprintf("%+.4e m/s²", m.hist.Accel[m.frame])) + "\n")
	s.WriteString(labelStyle.Render("Force") + valueStyle.Render(fmt.Sprintf("%+.4e N", m.hist.Force[m.frame])) + "\n\n")

	s.WriteString(labelStyle.Render("Peak u") + valueStyle.Render(fmt.Sprintf("%.4e m", m.peakDisp)) + "\n")
	s.WriteString(labelStyle.Render("Peak a") + valueStyle.Render(fmt.Sprintf("%.4e m/s²", m.peakAccel)) + "\n\n")

	s.WriteString(labelStyle.Render("Period") + valueStyle.Render(fmt.Sprintf("%.3fs", m.sys.Period())) + "\n")
	s.WriteString(labelStyle.Render("Damping") + valueStyle.Render(fmt.Sprintf("%.1f%%", m.sys.Ksi*100)) + "\n")
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%.4gs", m.hist.Dt)) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Replay Q:Quit\n[ ]:Scrub +/-:Speed ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume playback    ║
║  R        - Restart from the top     ║
║  Q        - Quit                     ║
║  [        - Step back one sample     ║
║  ]        - Step forward one sample  ║
║  + / -    - Faster / slower          ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
