package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	calibrationdto "cctune/internal/modules/calibration/dto"
	profiledto "cctune/internal/modules/profile/dto"
	"cctune/internal/ui/components"
	"cctune/internal/ui/theme"
	adjustview "cctune/internal/ui/views/adjust"
	calibrateview "cctune/internal/ui/views/calibrate"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type calibrationPort interface {
	Save(ctx context.Context, input calibrationdto.SaveInput) (calibrationdto.SetOutput, error)
	Exists(ctx context.Context) bool
	Reset(ctx context.Context) error
}

type profilePort interface {
	ListFiles(ctx context.Context) ([]string, error)
	SelectFile(ctx context.Context, path string) (profiledto.FileOutput, error)
	Save(ctx context.Context, input profiledto.SaveInput) (profiledto.ProfileOutput, error)
	Preview(ctx context.Context, input profiledto.PreviewInput) (profiledto.PreviewOutput, error)
	Reindex(ctx context.Context) error
}

// ─── stages ──────────────────────────────────────────────────────────────────

type stageID int

const (
	stageCalibrate stageID = iota
	stageAdjust
)

// ─── async messages ───────────────────────────────────────────────────────────

type calibrationResetMsg struct{ err error }

type reindexedMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Advance key.Binding
	Save    key.Binding
	Files   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Advance: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next level / pick profile")),
		Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save profile")),
		Files:   key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "cycle files")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Advance, k.Save, k.Files},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the stage routing (wizard
// before adjuster), the global help overlay, and the command palette. All
// business logic is delegated to port interfaces; all rendering is
// delegated to the stage views.
type Model struct {
	calibration calibrationPort
	profile     profilePort
	sliderMin   float64
	sliderMax   float64

	stage         stageID
	calibrateView calibrateview.Model
	adjustView    adjustview.Model

	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	width    int
	height   int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(calibration calibrationPort, profile profilePort, sliderMin, sliderMax float64) Model {
	stage := stageCalibrate
	if calibration.Exists(context.Background()) {
		stage = stageAdjust
	}
	return Model{
		calibration:   calibration,
		profile:       profile,
		sliderMin:     sliderMin,
		sliderMax:     sliderMax,
		stage:         stage,
		calibrateView: calibrateview.New(calibrationPortBridge{p: calibration}, sliderMin, sliderMax),
		adjustView:    adjustview.New(profilePortBridge{p: profile}, sliderMin, sliderMax),
		keys:          defaultKeys(),
		help:          help.New(),
		palette:       components.NewPalette(),
		status:        "ready",
	}
}

func (m Model) Init() tea.Cmd {
	if m.stage == stageAdjust {
		return m.adjustView.Init()
	}
	return m.calibrateView.Init()
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The palette intercepts all input while open.
	if m.palette.Visible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case calibrateview.SavedMsg:
		var cmd tea.Cmd
		m.calibrateView, cmd = m.calibrateView.Update(msg)
		if msg.Err != nil {
			m.status = "calibration save failed: " + msg.Err.Error()
			return m, cmd
		}
		// Calibration is on disk; hand over to the adjuster.
		m.status = "calibration saved"
		m.stage = stageAdjust
		return m, tea.Batch(cmd, m.adjustView.Init())

	case adjustview.SavedMsg:
		var cmd tea.Cmd
		m.adjustView, cmd = m.adjustView.Update(msg)
		if msg.Err != nil {
			m.status = "save failed: " + msg.Err.Error()
		} else {
			m.status = "saved profile " + msg.Profile.Name
		}
		return m, cmd

	case calibrationResetMsg:
		if msg.err != nil {
			m.status = "calibration reset failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "recalibrating"
		m.stage = stageCalibrate
		m.calibrateView = calibrateview.New(calibrationPortBridge{p: m.calibration}, m.sliderMin, m.sliderMax)
		m.propagateSize()
		return m, m.calibrateView.Init()

	case reindexedMsg:
		if msg.err != nil {
			m.status = "reindex failed: " + msg.err.Error()
		} else {
			m.status = "profile index rebuilt"
		}
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the adjuster while its search filter is typing.
		if m.stage == stageAdjust && m.adjustView.Filtering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			if m.stage == stageAdjust {
				// q must stay usable inside the temperature entry.
				if msg.String() == "q" && m.adjustTyping() {
					break
				}
			}
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			if m.adjustTyping() {
				break
			}
			return m, m.palette.Open()
		}
	}

	return m.updateStage(msg)
}

// adjustTyping reports whether the adjuster currently owns free-text input.
func (m Model) adjustTyping() bool {
	return m.stage == stageAdjust && m.adjustView.Typing()
}

func (m Model) updateStage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.stage {
	case stageCalibrate:
		m.calibrateView, cmd = m.calibrateView.Update(msg)
	case stageAdjust:
		m.adjustView, cmd = m.adjustView.Update(msg)
	}
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.stage == stageCalibrate:
		content = m.calibrateView.View()
	default:
		content = m.adjustView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.stage == stageCalibrate {
		left = theme.Hot.Render("● calibrating") + "  " + left
	}
	right := theme.Muted.Render("?:help  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────
// The command set here must stay in sync with paletteHints in
// components/palette.go.

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	input = strings.TrimSpace(input)
	if input == "" {
		return m, nil
	}
	verb, arg, _ := strings.Cut(input, ":")
	verb = strings.TrimSpace(verb)
	arg = strings.TrimSpace(arg)

	switch verb {
	case "color":
		cmd, err := m.adjustView.SetTestColor(arg)
		if err != nil {
			m.status = "unknown test color: " + arg
			return m, nil
		}
		m.status = "test color " + arg
		return m, cmd

	case "file":
		if cmd, ok := m.adjustView.SelectFileByName(arg); ok {
			m.status = "loading " + arg
			return m, cmd
		}
		m.status = "no such settings file: " + arg
		return m, nil

	case "profile":
		if cmd, ok := m.adjustView.SelectProfileByName(arg); ok {
			return m, cmd
		}
		m.status = "no such profile: " + arg
		return m, nil

	case "temp":
		m.status = "temperature " + arg
		return m, m.adjustView.SetTemperature(arg)

	case "save":
		return m, m.adjustView.SaveCmd()

	case "calibrate":
		if arg != "redo" {
			m.status = "usage: calibrate:redo"
			return m, nil
		}
		return m, m.resetCalibrationCmd()

	case "reindex":
		return m, m.reindexCmd()

	default:
		m.status = "unknown command: " + verb
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 2}
	m.calibrateView, _ = m.calibrateView.Update(sz)
	m.adjustView, _ = m.adjustView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) resetCalibrationCmd() tea.Cmd {
	return func() tea.Msg {
		return calibrationResetMsg{err: m.calibration.Reset(context.Background())}
	}
}

func (m Model) reindexCmd() tea.Cmd {
	return func() tea.Msg {
		return reindexedMsg{err: m.profile.Reindex(context.Background())}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed
// by a specific stage view, keeping view packages free of knowledge about the
// wider port surface.

type calibrationPortBridge struct{ p calibrationPort }

func (b calibrationPortBridge) Save(ctx context.Context, input calibrationdto.SaveInput) (calibrationdto.SetOutput, error) {
	return b.p.Save(ctx, input)
}

type profilePortBridge struct{ p profilePort }

func (b profilePortBridge) ListFiles(ctx context.Context) ([]string, error) {
	return b.p.ListFiles(ctx)
}
func (b profilePortBridge) SelectFile(ctx context.Context, path string) (profiledto.FileOutput, error) {
	return b.p.SelectFile(ctx, path)
}
func (b profilePortBridge) Save(ctx context.Context, input profiledto.SaveInput) (profiledto.ProfileOutput, error) {
	return b.p.Save(ctx, input)
}
func (b profilePortBridge) Preview(ctx context.Context, input profiledto.PreviewInput) (profiledto.PreviewOutput, error) {
	return b.p.Preview(ctx, input)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
