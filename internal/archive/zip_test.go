package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"sitegen_ai_server/internal/types"
)

func TestZipContainsEveryFile(t *testing.T) {
	files := []types.GeneratedFile{
		{Filename: "package.json", Type: "json", Content: "{}"},
		{Filename: "src/pages/HomePage.jsx", Type: "jsx", Content: "export default function HomePage() {}"},
	}

	data, err := Zip(files)
	if err != nil {
		t.Fatalf("zip failed: %v", err)
	}

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("reading archive back failed: %v", err)
	}
	if len(r.File) != len(files) {
		t.Fatalf("expected %d entries, got %d", len(files), len(r.File))
	}

	entry := r.File[1]
	if entry.Name != "src/pages/HomePage.jsx" {
		t.Fatalf("unexpected entry name %q", entry.Name)
	}
	rc, err := entry.Open()
	if err != nil {
		t.Fatalf("open entry: %v", err)
	}
	defer rc.Close()
	content, _ := io.ReadAll(rc)
	if string(content) != files[1].Content {
		t.Fatalf("entry content mismatch: %q", content)
	}
}

func TestZipIsByteStable(t *testing.T) {
	files := []types.GeneratedFile{
		{Filename: "index.html", Type: "html", Content: "<!doctype html>"},
	}

	first, err := Zip(files)
	if err != nil {
		t.Fatalf("zip failed: %v", err)
	}
	second, err := Zip(files)
	if err != nil {
		t.Fatalf("zip failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("expected identical archives for identical input")
	}
}
