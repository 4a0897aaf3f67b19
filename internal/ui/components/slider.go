package components

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"cctune/internal/ui/theme"
)

const (
	sliderFineStep   = 0.1
	sliderCoarseStep = 1.0
	defaultTrackLen  = 41
)

// Slider is a keyboard-driven horizontal slider. Left/right nudge by the
// fine step, shift+left/right by the coarse step, home recenters to zero.
type Slider struct {
	label    string
	min, max float64
	value    float64
	focused  bool
	trackLen int
}

func NewSlider(label string, min, max float64) Slider {
	return Slider{label: label, min: min, max: max, trackLen: defaultTrackLen}
}

func (s Slider) Label() string  { return s.label }
func (s Slider) Value() float64 { return s.value }
func (s Slider) Focused() bool  { return s.focused }

func (s *Slider) Focus()              { s.focused = true }
func (s *Slider) Blur()               { s.focused = false }
func (s *Slider) SetTrackLen(n int)   { s.trackLen = n }
func (s *Slider) SetValue(v float64)  { s.value = s.clampToRange(v) }
func (s *Slider) Reset()              { s.value = 0 }

func (s Slider) clampToRange(v float64) float64 {
	if v < s.min {
		return s.min
	}
	if v > s.max {
		return s.max
	}
	// Keep one decimal of precision, the slider resolution.
	return math.Round(v*10) / 10
}

// Update consumes a key message when focused. changed is true when the
// value moved, which is the caller's cue to recompute the display color.
func (s Slider) Update(msg tea.KeyMsg) (Slider, bool) {
	if !s.focused {
		return s, false
	}
	before := s.value
	switch msg.String() {
	case "left", "h":
		s.value = s.clampToRange(s.value - sliderFineStep)
	case "right", "l":
		s.value = s.clampToRange(s.value + sliderFineStep)
	case "shift+left", "H":
		s.value = s.clampToRange(s.value - sliderCoarseStep)
	case "shift+right", "L":
		s.value = s.clampToRange(s.value + sliderCoarseStep)
	case "home":
		s.value = 0
	}
	return s, s.value != before
}

func (s Slider) View() string {
	span := s.max - s.min
	pos := 0
	if span > 0 {
		pos = int(math.Round((s.value - s.min) / span * float64(s.trackLen-1)))
	}
	if pos < 0 {
		pos = 0
	}
	if pos > s.trackLen-1 {
		pos = s.trackLen - 1
	}

	var track strings.Builder
	for i := 0; i < s.trackLen; i++ {
		if i == pos {
			track.WriteString(theme.SliderKnob.Render("●"))
		} else {
			track.WriteString(theme.SliderTrack.Render("─"))
		}
	}

	label := theme.ControlLabel.Render(s.label)
	if s.focused {
		label = theme.ControlLabelFocused.Render(s.label)
	}
	value := theme.SliderValue.Render(fmt.Sprintf("%+6.1f", s.value))
	return fmt.Sprintf("%s  %s %s", label, track.String(), value)
}
