// Package archive serializes a generated file tree into a zip download.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"

	"sitegen_ai_server/internal/types"
)

// Zip writes the files into a zip archive in their given order. Entry
// timestamps are zeroed so identical input produces identical bytes.
func Zip(files []types.GeneratedFile) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, f := range files {
		hdr := &zip.FileHeader{
			Name:     f.Filename,
			Method:   zip.Deflate,
			Modified: time.Time{},
		}
		entry, err := w.CreateHeader(hdr)
		if err != nil {
			return nil, fmt.Errorf("create zip entry %s: %w", f.Filename, err)
		}
		if _, err := entry.Write([]byte(f.Content)); err != nil {
			return nil, fmt.Errorf("write zip entry %s: %w", f.Filename, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalize zip: %w", err)
	}
	return buf.Bytes(), nil
}
