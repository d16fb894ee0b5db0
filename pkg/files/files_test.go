package files

import (
	"os"
	"testing"

	"github.com/softwrap/softwrap/pkg/models"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	os.Chdir(tempDir)
}

func TestReadSettingsMissingFile(t *testing.T) {
	chdirTemp(t)

	if _, err := ReadSettings(); err == nil {
		t.Fatal("expected error when settings file is absent")
	}
}

func TestWriteReadSettings(t *testing.T) {
	chdirTemp(t)

	settings := models.DefaultSettings()
	settings.Wrap.Width = 72
	settings.Wrap.DoubleSpaceAfterSentence = true

	if err := WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}

	got, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if got.Wrap.Width != 72 {
		t.Errorf("Wrap.Width = %d, want 72", got.Wrap.Width)
	}
	if !got.Wrap.DoubleSpaceAfterSentence {
		t.Error("Wrap.DoubleSpaceAfterSentence should be true")
	}
	if got.Editor.TabWidth != 4 {
		t.Errorf("unset fields should keep defaults, TabWidth = %d", got.Editor.TabWidth)
	}
}
