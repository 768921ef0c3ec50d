// Package output writes generator results as pretty-printed JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/posit-dev/connect-gallery-action/internal/perms"
)

// JSONHandler writes a document as indented JSON, honoring struct tags.
type JSONHandler struct {
	out    io.Writer
	indent string
}

// NewJSONHandler creates a handler that writes to w with the given number of
// spaces per indent level.
func NewJSONHandler(w io.Writer, indentSpaces int) *JSONHandler {
	return &JSONHandler{
		w,
		strings.Repeat(" ", indentSpaces),
	}
}

// Writer returns the underlying io.Writer where JSON will be written.
func (h *JSONHandler) Writer() io.Writer {
	return h.out
}

// Handle marshals the document to the handler's writer. The encoder appends
// the trailing newline expected of the generated artifact.
func (h *JSONHandler) Handle(doc any) error {
	enc := json.NewEncoder(h.out)
	enc.SetIndent("", h.indent)
	return enc.Encode(doc)
}

// WriteFile persists the document to path as two-space-indented JSON with a
// trailing newline, creating parent directories as needed.
func WriteFile(path string, doc any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, perms.RegularDir); err != nil {
			return fmt.Errorf("failed to create output directory (%s): %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perms.RegularFile)
	if err != nil {
		return fmt.Errorf("failed to open output file (%s): %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := NewJSONHandler(f, 2).Handle(doc); err != nil {
		return fmt.Errorf("failed to encode output (%s): %w", path, err)
	}

	return f.Close()
}
