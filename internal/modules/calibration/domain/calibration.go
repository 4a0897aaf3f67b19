package domain

import (
	"fmt"
	"strings"
)

// Level is one of the five fixed brightness targets the wizard walks
// through. The string form doubles as the on-disk key, matching the legacy
// calibration files ("dark gray", not "dark_gray").
type Level string

const (
	LevelBlack     Level = "black"
	LevelDarkGray  Level = "dark gray"
	LevelGray      Level = "gray"
	LevelLightGray Level = "light gray"
	LevelWhite     Level = "white"
)

// Levels returns the wizard order. Calibration always runs black to white.
func Levels() [5]Level {
	return [5]Level{LevelBlack, LevelDarkGray, LevelGray, LevelLightGray, LevelWhite}
}

// Base returns the level's nominal gray value.
func (l Level) Base() float64 {
	switch l {
	case LevelBlack:
		return 0
	case LevelDarkGray:
		return 64
	case LevelGray:
		return 128
	case LevelLightGray:
		return 192
	case LevelWhite:
		return 255
	}
	return 128
}

// Title returns the level name with an uppercased first word, for display.
func (l Level) Title() string {
	words := strings.Fields(string(l))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func (l Level) Validate() error {
	switch l {
	case LevelBlack, LevelDarkGray, LevelGray, LevelLightGray, LevelWhite:
		return nil
	default:
		return fmt.Errorf("unknown brightness level %q", string(l))
	}
}

// ParseLevel maps a stored key to a Level, tolerating case and padding.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if err := l.Validate(); err != nil {
		return "", err
	}
	return l, nil
}

// Record is one level's calibration outcome: the slider pair the user
// settled on while looking at that gray.
type Record struct {
	Level        Level
	WhiteBalance float64
	Tint         float64
}

func (r Record) Validate() error {
	return r.Level.Validate()
}

// Set is a complete calibration: exactly one record per level, kept in
// wizard order.
type Set struct {
	Records []Record
}

func (s Set) Validate() error {
	if len(s.Records) != len(Levels()) {
		return fmt.Errorf("calibration needs %d records, got %d", len(Levels()), len(s.Records))
	}
	seen := map[Level]bool{}
	for _, r := range s.Records {
		if err := r.Validate(); err != nil {
			return err
		}
		if seen[r.Level] {
			return fmt.Errorf("duplicate level %q", r.Level)
		}
		seen[r.Level] = true
	}
	return nil
}

// ByLevel returns the record for a level. The zero record (no bias) is
// returned when the level is absent, which is the stage-two fallback for
// missing calibration.
func (s Set) ByLevel(level Level) Record {
	for _, r := range s.Records {
		if r.Level == level {
			return r
		}
	}
	return Record{Level: level}
}

// Sorted returns the records rearranged into wizard order. Order on disk is
// irrelevant to correctness; presentation is always black to white.
func (s Set) Sorted() []Record {
	out := make([]Record, 0, len(Levels()))
	for _, level := range Levels() {
		for _, r := range s.Records {
			if r.Level == level {
				out = append(out, r)
			}
		}
	}
	return out
}
