package out

import (
	"strconv"
	"strings"

	"cctune/internal/modules/profile/domain"
)

// On-disk format, one profile per line:
//
//	Name | Temperature | WhiteBalance | Tint
//
// Temperature may be a Kelvin number or "NA". Lines with fewer than four
// pipe-separated fields are not profiles; they are carried through rewrites
// byte for byte. This matches the legacy CCT_Settings files exactly.

func parseDocument(path, text string) domain.Document {
	doc := domain.Document{Path: path}
	lines := strings.Split(text, "\n")
	// A trailing newline produces one empty trailing element; drop it so
	// render can re-add the final newline without doubling it.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for _, raw := range lines {
		doc.Lines = append(doc.Lines, parseLine(raw))
	}
	return doc
}

func parseLine(raw string) domain.Line {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.Line{Raw: raw}
	}
	parts := strings.Split(trimmed, "|")
	if len(parts) < 4 {
		return domain.Line{Raw: raw}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	wb := parseCorrection(parts[2])
	tint := parseCorrection(parts[3])
	return domain.Line{
		Raw:       raw,
		IsProfile: true,
		Profile: domain.Profile{
			Name:         parts[0],
			Temperature:  parts[1],
			WhiteBalance: wb,
			Tint:         tint,
		},
	}
}

// parseCorrection treats "NA" and empty as zero, the legacy reader's rule.
func parseCorrection(s string) float64 {
	if s == "" || strings.EqualFold(s, "NA") {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func renderDocument(doc domain.Document) string {
	var sb strings.Builder
	for _, line := range doc.Lines {
		if line.IsProfile && line.Rewritten {
			sb.WriteString(renderProfile(line.Profile))
		} else {
			sb.WriteString(line.Raw)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderProfile(p domain.Profile) string {
	temp := strings.TrimSpace(p.Temperature)
	if temp == "" {
		temp = "NA"
	}
	return p.Name + " | " + temp + " | " + formatCorrection(p.WhiteBalance) + " | " + formatCorrection(p.Tint)
}

// formatCorrection uses one decimal place, the precision of the sliders and
// of the legacy writer.
func formatCorrection(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
