package entities

// Document describes one source document handed over by the host pipeline
// for a single assembly run. Descriptors are caller-owned input and are never
// mutated by the engine.
type Document struct {
	Title      string `json:"title" validate:"required"`
	SourcePath string `json:"source_path" validate:"required"`
	URL        string `json:"url"`
	Content    string `json:"content"`
	IsIndex    bool   `json:"is_index"`
}
