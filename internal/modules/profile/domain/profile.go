package domain

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "cctune/internal/platform/errors"
)

// Profile is one named entry in a phone profile file: a color temperature
// plus stored white-balance and tint corrections.
type Profile struct {
	Name string
	// Temperature is kept as written: a Kelvin number, or "NA"/empty for
	// "no override" (legacy files use NA liberally).
	Temperature  string
	WhiteBalance float64
	Tint         float64
}

// TemperatureKelvin parses the temperature field. ok is false when the
// profile carries no usable Kelvin value.
func (p Profile) TemperatureKelvin() (float64, bool) {
	raw := strings.TrimSpace(p.Temperature)
	if raw == "" || strings.EqualFold(raw, "NA") {
		return 0, false
	}
	k, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return k, true
}

func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: profile name is required", apperrors.ErrInvalidInput)
	}
	if strings.Contains(p.Name, "|") {
		return fmt.Errorf("%w: profile name must not contain '|'", apperrors.ErrInvalidInput)
	}
	return nil
}

// Line is one physical line of a profile file. Non-profile lines (comments,
// blanks, anything with fewer than four fields) survive rewrites verbatim.
type Line struct {
	Raw       string
	IsProfile bool
	Profile   Profile
	// Rewritten marks a profile line whose Raw text is stale; the store
	// renders it from Profile on save. Untouched lines keep Raw exactly.
	Rewritten bool
}

// Document is a parsed profile file: the ordered lines plus the path they
// came from. Profile names are unique within a document.
type Document struct {
	Path  string
	Lines []Line
}

// Profiles returns the entries in file order.
func (d Document) Profiles() []Profile {
	out := make([]Profile, 0, len(d.Lines))
	for _, line := range d.Lines {
		if line.IsProfile {
			out = append(out, line.Profile)
		}
	}
	return out
}

// Names returns the profile names in file order.
func (d Document) Names() []string {
	profiles := d.Profiles()
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.Name
	}
	return out
}

// Find returns the named profile or apperrors.ErrNotFound.
func (d Document) Find(name string) (Profile, error) {
	for _, line := range d.Lines {
		if line.IsProfile && line.Profile.Name == name {
			return line.Profile, nil
		}
	}
	return Profile{}, fmt.Errorf("profile %q: %w", name, apperrors.ErrNotFound)
}

// Update replaces the entry matching updated.Name and marks its line for
// re-rendering. Every other line, profile or not, is left untouched so a
// save can never disturb siblings.
func (d *Document) Update(updated Profile) error {
	if err := updated.Validate(); err != nil {
		return err
	}
	for i := range d.Lines {
		if d.Lines[i].IsProfile && d.Lines[i].Profile.Name == updated.Name {
			d.Lines[i].Profile = updated
			d.Lines[i].Rewritten = true
			return nil
		}
	}
	return fmt.Errorf("profile %q: %w", updated.Name, apperrors.ErrNotFound)
}

func (d Document) Validate() error {
	seen := map[string]bool{}
	for _, line := range d.Lines {
		if !line.IsProfile {
			continue
		}
		if err := line.Profile.Validate(); err != nil {
			return err
		}
		if seen[line.Profile.Name] {
			return fmt.Errorf("%w: duplicate profile %q", apperrors.ErrInvalidInput, line.Profile.Name)
		}
		seen[line.Profile.Name] = true
	}
	return nil
}
