package calibrate

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cctune/internal/modules/calibration/domain"
	"cctune/internal/modules/calibration/dto"
	"cctune/internal/platform/colorspace"
	"cctune/internal/ui/components"
	"cctune/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type CalibrationPort interface {
	Save(ctx context.Context, input dto.SaveInput) (dto.SetOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// SavedMsg reports the outcome of writing the completed calibration. The
// app model switches to the adjuster on success.
type SavedMsg struct {
	Set dto.SetOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

const (
	focusWB = iota
	focusTint
	focusCount
)

// Model runs the five-level wizard: the whole screen is painted with the
// level's calibrated gray while two sliders nudge it, and enter advances.
type Model struct {
	port   CalibrationPort
	wizard *domain.Wizard

	wb     components.Slider
	tint   components.Slider
	focus  int
	saving bool

	width  int
	height int
}

func New(port CalibrationPort, sliderMin, sliderMax float64) Model {
	wb := components.NewSlider("White Balance", sliderMin, sliderMax)
	wb.Focus()
	return Model{
		port:   port,
		wizard: domain.NewWizard(),
		wb:     wb,
		tint:   components.NewSlider("Tint", sliderMin, sliderMax),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case SavedMsg:
		m.saving = false
		return m, nil

	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}
		switch msg.String() {
		case "tab", "up", "down", "k", "j":
			m.focus = (m.focus + 1) % focusCount
			m.syncFocus()
		case "enter", " ":
			return m.next()
		default:
			var changed bool
			if m.wb, changed = m.wb.Update(msg); changed {
				return m, nil
			}
			m.tint, _ = m.tint.Update(msg)
		}
	}
	return m, nil
}

// next snapshots the sliders for the current level. After the fifth level
// the whole set is written in one go; nothing touches disk before that.
func (m Model) next() (Model, tea.Cmd) {
	done := m.wizard.Next(m.wb.Value(), m.tint.Value())
	if !done {
		m.wb.Reset()
		m.tint.Reset()
		return m, nil
	}

	m.saving = true
	set := m.wizard.Set()
	return m, func() tea.Msg {
		input := dto.SaveInput{}
		for _, r := range set.Records {
			input.Records = append(input.Records, dto.RecordInput{
				Level:        string(r.Level),
				WhiteBalance: r.WhiteBalance,
				Tint:         r.Tint,
			})
		}
		out, err := m.port.Save(context.Background(), input)
		return SavedMsg{Set: out, Err: err}
	}
}

func (m *Model) syncFocus() {
	m.wb.Blur()
	m.tint.Blur()
	switch m.focus {
	case focusWB:
		m.wb.Focus()
	case focusTint:
		m.tint.Focus()
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	level := m.wizard.Current()
	color := colorspace.Compose(level.Base(), m.wb.Value(), m.tint.Value())

	step, total := m.wizard.Step()
	title := theme.Title.Render(fmt.Sprintf("Calibration — %s", level.Title()))
	progress := theme.Muted.Render(fmt.Sprintf("step %d of %d", step, total))

	body := lipgloss.JoinVertical(lipgloss.Left,
		title+"  "+progress,
		"",
		m.wb.View(),
		m.tint.View(),
		"",
		theme.Muted.Render("←/→ adjust  shift speeds up  tab switch  enter next"),
	)
	if m.saving {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", theme.Hot.Render("saving calibration…"))
	}
	panel := theme.Panel.Render(body)

	// The panel floats over a screen filled edge to edge with the color
	// under calibration, the terminal stand-in for the full-screen window.
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(color.Hex())),
		lipgloss.WithWhitespaceChars(" "),
	)
}
