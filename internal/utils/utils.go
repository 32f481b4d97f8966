package utils

import (
	"path/filepath"
	"strings"
)

// DetermineFileType tags a generated file by extension. Used to fill the
// Type field of files whose renderer did not set one.
func DetermineFileType(filename string) string {
	lower := strings.ToLower(filename)
	switch filepath.Ext(lower) {
	case ".html":
		return "html"
	case ".css":
		return "css"
	case ".js":
		return "js"
	case ".jsx":
		return "jsx"
	case ".ts":
		return "ts"
	case ".tsx":
		return "tsx"
	case ".json":
		return "json"
	case ".md":
		return "md"
	case ".svg":
		return "svg"
	default:
		base := filepath.Base(lower)
		if strings.Contains(base, "vite.config") || strings.Contains(base, "tailwind.config") || strings.Contains(base, "postcss.config") {
			return "config"
		}
		return "text"
	}
}
