package adjust

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	calibrationdomain "cctune/internal/modules/calibration/domain"
	"cctune/internal/modules/profile/dto"
	"cctune/internal/ui/components"
	"cctune/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ProfilePort interface {
	ListFiles(ctx context.Context) ([]string, error)
	SelectFile(ctx context.Context, path string) (dto.FileOutput, error)
	Save(ctx context.Context, input dto.SaveInput) (dto.ProfileOutput, error)
	Preview(ctx context.Context, input dto.PreviewInput) (dto.PreviewOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type FilesLoadedMsg struct {
	Files []string
	Err   error
}

type FileLoadedMsg struct {
	File dto.FileOutput
	Err  error
}

// SavedMsg bubbles to the app model for the status line.
type SavedMsg struct {
	Profile dto.ProfileOutput
	Err     error
}

type PreviewMsg struct {
	Color dto.PreviewOutput
	Err   error
}

// ─── list item ───────────────────────────────────────────────────────────────

type profileItem struct {
	profile dto.ProfileOutput
}

func (i profileItem) Title() string { return i.profile.Name }
func (i profileItem) Description() string {
	return fmt.Sprintf("%s K  wb %+.1f  tint %+.1f", i.profile.Temperature, i.profile.WhiteBalance, i.profile.Tint)
}
func (i profileItem) FilterValue() string { return i.profile.Name }

// ─── focus ───────────────────────────────────────────────────────────────────

const (
	focusProfiles = iota
	focusColor
	focusTemp
	focusWB
	focusTint
	focusCount
)

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the stage-two adjuster: pick a profile file and profile, nudge
// temperature/white-balance/tint, watch the swatch, save.
type Model struct {
	port ProfilePort

	files   []string
	fileIdx int

	profiles list.Model
	selected string

	testColors [5]calibrationdomain.Level
	colorIdx   int

	tempInput textinput.Model
	wb        components.Slider
	tint      components.Slider

	focus   int
	preview dto.PreviewOutput
	status  string

	width  int
	height int
}

func New(port ProfilePort, sliderMin, sliderMax float64) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Profiles"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	ti := textinput.New()
	ti.Placeholder = "NA"
	ti.CharLimit = 8
	ti.Width = 10

	m := Model{
		port:       port,
		profiles:   l,
		testColors: calibrationdomain.Levels(),
		colorIdx:   2, // gray, the legacy default test color
		tempInput:  ti,
		wb:         components.NewSlider("White Balance", sliderMin, sliderMax),
		tint:       components.NewSlider("Tint", sliderMin, sliderMax),
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadFilesCmd(), m.previewCmd())
}

// Filtering reports whether the profile list's search filter is active, so
// the app can stop stealing keys.
func (m Model) Filtering() bool {
	return m.profiles.FilterState() == list.Filtering
}

// Typing reports whether the temperature entry owns free-text input, so
// single-letter global bindings must yield.
func (m Model) Typing() bool {
	return m.focus == focusTemp && m.tempInput.Focused()
}

// SelectedFile returns the path of the file currently loaded.
func (m Model) SelectedFile() string {
	if len(m.files) == 0 {
		return ""
	}
	return m.files[m.fileIdx]
}

// SelectedProfile returns the name seeded into the sliders, if any.
func (m Model) SelectedProfile() (string, bool) {
	return m.selected, m.selected != ""
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case FilesLoadedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.files = msg.Files
		m.fileIdx = 0
		if len(m.files) == 0 {
			m.status = "no profile files found"
			return m, nil
		}
		return m, m.loadFileCmd(m.files[0])

	case FileLoadedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.File.Profiles))
		for i, p := range msg.File.Profiles {
			items[i] = profileItem{profile: p}
		}
		m.profiles.Title = filepath.Base(msg.File.Path)
		m.selected = ""
		cmds = append(cmds, m.profiles.SetItems(items))
		if len(msg.File.Profiles) > 0 {
			cmds = append(cmds, m.applyProfile(msg.File.Profiles[0]))
		}
		return m, tea.Batch(cmds...)

	case SavedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("saved %s", msg.Profile.Name)
		}
		return m, nil

	case PreviewMsg:
		if msg.Err == nil {
			m.preview = msg.Color
		}
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	if m.focus == focusProfiles {
		var cmd tea.Cmd
		m.profiles, cmd = m.profiles.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if m.Filtering() {
		return nil, false
	}

	switch msg.String() {
	case "tab":
		m.focus = (m.focus + 1) % focusCount
		m.syncFocus()
		return nil, true
	case "shift+tab":
		m.focus = (m.focus + focusCount - 1) % focusCount
		m.syncFocus()
		return nil, true
	case "[":
		return m.cycleFile(-1), true
	case "]":
		return m.cycleFile(1), true
	case "ctrl+s":
		return m.SaveCmd(), true
	case "s":
		if m.focus != focusTemp {
			return m.SaveCmd(), true
		}
	case "enter":
		if m.focus == focusProfiles {
			if item, ok := m.profiles.SelectedItem().(profileItem); ok {
				return m.applyProfile(item.profile), true
			}
			return nil, true
		}
	}

	switch m.focus {
	case focusColor:
		switch msg.String() {
		case "left", "h":
			m.colorIdx = (m.colorIdx + len(m.testColors) - 1) % len(m.testColors)
			return m.previewCmd(), true
		case "right", "l":
			m.colorIdx = (m.colorIdx + 1) % len(m.testColors)
			return m.previewCmd(), true
		}
	case focusTemp:
		var cmd tea.Cmd
		before := m.tempInput.Value()
		m.tempInput, cmd = m.tempInput.Update(msg)
		if m.tempInput.Value() != before {
			return tea.Batch(cmd, m.previewCmd()), true
		}
		return cmd, true
	case focusWB:
		var changed bool
		if m.wb, changed = m.wb.Update(msg); changed {
			return m.previewCmd(), true
		}
	case focusTint:
		var changed bool
		if m.tint, changed = m.tint.Update(msg); changed {
			return m.previewCmd(), true
		}
	}
	return nil, false
}

func (m *Model) syncFocus() {
	m.wb.Blur()
	m.tint.Blur()
	m.tempInput.Blur()
	switch m.focus {
	case focusTemp:
		m.tempInput.Focus()
	case focusWB:
		m.wb.Focus()
	case focusTint:
		m.tint.Focus()
	}
}

func (m *Model) cycleFile(dir int) tea.Cmd {
	if len(m.files) == 0 {
		return nil
	}
	m.fileIdx = (m.fileIdx + dir + len(m.files)) % len(m.files)
	return m.loadFileCmd(m.files[m.fileIdx])
}

// applyProfile seeds the controls from a stored profile and re-renders.
func (m *Model) applyProfile(p dto.ProfileOutput) tea.Cmd {
	m.selected = p.Name
	m.tempInput.SetValue(p.Temperature)
	m.wb.SetValue(p.WhiteBalance)
	m.tint.SetValue(p.Tint)
	m.status = "profile " + p.Name
	return m.previewCmd()
}

// ─── exported control for palette commands ───────────────────────────────────

// SetTestColor switches the preview base color by level name.
func (m *Model) SetTestColor(name string) (tea.Cmd, error) {
	level, err := calibrationdomain.ParseLevel(name)
	if err != nil {
		return nil, err
	}
	for i, l := range m.testColors {
		if l == level {
			m.colorIdx = i
		}
	}
	return m.previewCmd(), nil
}

// SelectFileByName loads the settings file whose base name matches.
func (m *Model) SelectFileByName(name string) (tea.Cmd, bool) {
	for i, f := range m.files {
		if filepath.Base(f) == name || f == name {
			m.fileIdx = i
			return m.loadFileCmd(f), true
		}
	}
	return nil, false
}

// SelectProfileByName applies a loaded profile by name.
func (m *Model) SelectProfileByName(name string) (tea.Cmd, bool) {
	for _, item := range m.profiles.Items() {
		if pi, ok := item.(profileItem); ok && pi.profile.Name == name {
			return m.applyProfile(pi.profile), true
		}
	}
	return nil, false
}

// SetTemperature overrides the Kelvin entry.
func (m *Model) SetTemperature(value string) tea.Cmd {
	m.tempInput.SetValue(strings.TrimSpace(value))
	return m.previewCmd()
}

// SaveCmd persists the current slider values into the selected profile.
func (m Model) SaveCmd() tea.Cmd {
	path := m.SelectedFile()
	name := m.selected
	if path == "" || name == "" {
		return func() tea.Msg {
			return SavedMsg{Err: fmt.Errorf("select a profile before saving")}
		}
	}
	input := dto.SaveInput{
		Path:         path,
		Name:         name,
		Temperature:  strings.TrimSpace(m.tempInput.Value()),
		WhiteBalance: m.wb.Value(),
		Tint:         m.tint.Value(),
	}
	return func() tea.Msg {
		out, err := m.port.Save(context.Background(), input)
		return SavedMsg{Profile: out, Err: err}
	}
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadFilesCmd() tea.Cmd {
	return func() tea.Msg {
		files, err := m.port.ListFiles(context.Background())
		return FilesLoadedMsg{Files: files, Err: err}
	}
}

func (m Model) loadFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		file, err := m.port.SelectFile(context.Background(), path)
		return FileLoadedMsg{File: file, Err: err}
	}
}

func (m Model) previewCmd() tea.Cmd {
	input := dto.PreviewInput{
		TestColor:    string(m.testColors[m.colorIdx]),
		Temperature:  strings.TrimSpace(m.tempInput.Value()),
		WhiteBalance: m.wb.Value(),
		Tint:         m.tint.Value(),
	}
	return func() tea.Msg {
		color, err := m.port.Preview(context.Background(), input)
		return PreviewMsg{Color: color, Err: err}
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	m.profiles.SetSize(listW, m.height-2)
}

func (m Model) View() string {
	listW := m.width * 4 / 10
	controlsW := m.width - listW - 4

	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.profiles.View())

	colorLabel := theme.ControlLabel.Render("Test Color")
	if m.focus == focusColor {
		colorLabel = theme.ControlLabelFocused.Render("Test Color")
	}
	colorRow := fmt.Sprintf("%s  ◂ %s ▸", colorLabel, m.testColors[m.colorIdx].Title())

	tempLabel := theme.ControlLabel.Render("Temperature (K)")
	if m.focus == focusTemp {
		tempLabel = theme.ControlLabelFocused.Render("Temperature (K)")
	}
	tempRow := fmt.Sprintf("%s  %s", tempLabel, m.tempInput.View())

	swatchW := controlsW
	if swatchW < 10 {
		swatchW = 10
	}
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(m.preview.Hex)).
		Width(swatchW).
		Height(5).
		Render("")
	swatchCaption := theme.Muted.Render(fmt.Sprintf("%s  rgb(%d, %d, %d)", m.preview.Hex, m.preview.R, m.preview.G, m.preview.B))

	rows := []string{
		colorRow,
		tempRow,
		m.wb.View(),
		m.tint.View(),
		"",
		swatch,
		swatchCaption,
		"",
		theme.Muted.Render("tab focus  [/] file  enter pick  s save"),
	}
	if m.status != "" {
		rows = append(rows, theme.Hot.Render(m.status))
	}

	controls := theme.Panel.Width(controlsW).Render(strings.Join(rows, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, controls)
}
