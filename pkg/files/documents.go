package files

import (
	"fmt"
	"os"

	"github.com/softwrap/softwrap/pkg/document"
)

// LoadDocument reads a file into a document. The stored form is ordinary
// line-delimited text: every break it contains was written as authored
// structure, and classification of those breaks happens later, when word
// wrap is activated. The loaded document starts out unmodified.
func LoadDocument(path string) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc := document.New(string(data))
	doc.SetModified(false)
	return doc, nil
}

// SaveDocument writes the document's text to path as-is. Use
// SaveDocumentWith when the document may hold soft breaks that must not
// reach disk.
func SaveDocument(doc *document.Document, path string) error {
	if err := os.WriteFile(path, []byte(doc.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// SaveDocumentWith runs the two-phase save contract: pre runs before the
// bytes are written (removing soft breaks so only hard ones persist), post
// runs after a successful write (restoring the display form). Either hook
// may be nil. When the write fails, post is skipped so the document keeps
// the state pre left it in.
func SaveDocumentWith(doc *document.Document, path string, pre, post func()) error {
	if pre != nil {
		pre()
	}
	if err := SaveDocument(doc, path); err != nil {
		return err
	}
	if post != nil {
		post()
	}
	return nil
}
