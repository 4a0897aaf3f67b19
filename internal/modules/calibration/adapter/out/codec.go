package out

import (
	"fmt"
	"strconv"
	"strings"

	"cctune/internal/modules/calibration/domain"
)

// On-disk format, one line per level:
//
//	<level>:<white_balance>,<tint>
//
// e.g. "dark gray:3,-1". This is the compatibility contract with the legacy
// calibration files; keep parse and render in this file only.

func parseSet(text string) (domain.Set, error) {
	set := domain.Set{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		record, err := parseRecord(line)
		if err != nil {
			return domain.Set{}, err
		}
		set.Records = append(set.Records, record)
	}
	return set, nil
}

func parseRecord(line string) (domain.Record, error) {
	name, params, ok := strings.Cut(line, ":")
	if !ok {
		return domain.Record{}, fmt.Errorf("line %q: missing ':' separator", line)
	}
	level, err := domain.ParseLevel(name)
	if err != nil {
		return domain.Record{}, fmt.Errorf("line %q: %w", line, err)
	}
	wbText, tintText, ok := strings.Cut(params, ",")
	if !ok {
		return domain.Record{}, fmt.Errorf("line %q: expected 'wb,tint'", line)
	}
	wb, err := strconv.ParseFloat(strings.TrimSpace(wbText), 64)
	if err != nil {
		return domain.Record{}, fmt.Errorf("line %q: white balance: %w", line, err)
	}
	tint, err := strconv.ParseFloat(strings.TrimSpace(tintText), 64)
	if err != nil {
		return domain.Record{}, fmt.Errorf("line %q: tint: %w", line, err)
	}
	return domain.Record{Level: level, WhiteBalance: wb, Tint: tint}, nil
}

func renderSet(set domain.Set) string {
	var sb strings.Builder
	for _, r := range set.Sorted() {
		sb.WriteString(string(r.Level))
		sb.WriteString(":")
		sb.WriteString(formatFloat(r.WhiteBalance))
		sb.WriteString(",")
		sb.WriteString(formatFloat(r.Tint))
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
