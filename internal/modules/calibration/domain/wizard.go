package domain

// Wizard tracks progression through the five brightness levels. It collects
// one record per "next" and reports completion after the fifth; nothing is
// persisted until the whole set exists.
type Wizard struct {
	index   int
	records []Record
}

func NewWizard() *Wizard {
	return &Wizard{records: make([]Record, 0, len(Levels()))}
}

// Current returns the level being calibrated.
func (w *Wizard) Current() Level {
	levels := Levels()
	if w.index >= len(levels) {
		return levels[len(levels)-1]
	}
	return levels[w.index]
}

// Step reports the 1-based position for display ("Step 2 of 5").
func (w *Wizard) Step() (current, total int) {
	total = len(Levels())
	current = w.index + 1
	if current > total {
		current = total
	}
	return current, total
}

// Next snapshots the slider pair for the current level and advances.
// done is true once all five levels are captured.
func (w *Wizard) Next(whiteBalance, tint float64) (done bool) {
	if w.Done() {
		return true
	}
	w.records = append(w.records, Record{
		Level:        w.Current(),
		WhiteBalance: whiteBalance,
		Tint:         tint,
	})
	w.index++
	return w.Done()
}

func (w *Wizard) Done() bool {
	return w.index >= len(Levels())
}

// Set returns the collected calibration. Only valid once Done.
func (w *Wizard) Set() Set {
	return Set{Records: append([]Record(nil), w.records...)}
}
