package dto

type ProfileOutput struct {
	Name         string
	Temperature  string
	WhiteBalance float64
	Tint         float64
}

type FileOutput struct {
	Path     string
	Profiles []ProfileOutput
}

type SaveInput struct {
	Path         string
	Name         string
	Temperature  string
	WhiteBalance float64
	Tint         float64
}

type PreviewInput struct {
	// TestColor is a brightness level name; its gray value is the base.
	TestColor string
	// Temperature is the Kelvin override as typed, "NA"/empty for none.
	Temperature  string
	WhiteBalance float64
	Tint         float64
}

type PreviewOutput struct {
	R, G, B uint8
	Hex     string
}

type IndexOutput struct {
	FilePath     string
	Name         string
	Temperature  string
	WhiteBalance float64
	Tint         float64
	UpdatedAt    string
}
