package types

// GeneratedFile is one file of the scaffolded project, addressed by its
// path relative to the project root (e.g. "src/pages/HomePage.jsx").
type GeneratedFile struct {
	Filename string `json:"filename"`
	Type     string `json:"type"` // e.g., "jsx", "css", "json"
	Content  string `json:"content"`
}
