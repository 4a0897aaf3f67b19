package dto

type RecordOutput struct {
	Level        string
	Base         float64
	WhiteBalance float64
	Tint         float64
}

type SetOutput struct {
	Records []RecordOutput
}

type SaveInput struct {
	Records []RecordInput
}

type RecordInput struct {
	Level        string
	WhiteBalance float64
	Tint         float64
}
