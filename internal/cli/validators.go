package cli

import (
	"fmt"
	"os"
)

// ValidateFilePath ensures the path exists and is a regular file
func ValidateFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("file path cannot be empty")
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}

	return nil
}

// ValidateWidth ensures a wrap width is usable
func ValidateWidth(width int) error {
	if width < 1 {
		return fmt.Errorf("width must be at least 1, got %d", width)
	}
	return nil
}

// ValidateOutputFormat checks if the output format is supported
func ValidateOutputFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use text, json, or yaml)", format)
	}
}
