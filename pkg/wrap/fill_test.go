package wrap

import (
	"strings"
	"testing"

	"github.com/softwrap/softwrap/pkg/document"
)

func TestWrapDisplayInsertsSoftBreaks(t *testing.T) {
	doc := document.New("End of sentence.  Next word")
	layout := NewReflowLayout(Options{DoubleSpaceAfterSentence: true})

	layout.WrapDisplay(doc, 16)

	want := "End of sentence.\nNext word"
	if doc.String() != want {
		t.Fatalf("wrapped = %q, want %q", doc.String(), want)
	}
	if doc.IsHard(16) {
		t.Error("layout-inserted break must be soft")
	}
}

func TestWrapDisplayRespectsHardBreaks(t *testing.T) {
	doc := document.New("short line\nanother short line")
	doc.SetHard(10, true)
	layout := NewReflowLayout(Options{})

	layout.WrapDisplay(doc, 80)

	if doc.String() != "short line\nanother short line" {
		t.Fatalf("wrapped = %q, hard break must survive", doc.String())
	}
	if !doc.IsHard(10) {
		t.Error("hard break lost its classification")
	}
}

func TestWrapDisplayMergesStaleSoftBreaks(t *testing.T) {
	// A document wrapped at a narrower width re-wraps from its logical
	// form, not from the old display lines.
	doc := document.New("alpha beta\ngamma delta")
	layout := NewReflowLayout(Options{})

	layout.WrapDisplay(doc, 80)

	if doc.String() != "alpha beta gamma delta" {
		t.Fatalf("re-wrap at a wide width should merge old soft breaks, got %q", doc.String())
	}
}

func TestWrapUnfillRoundTrip(t *testing.T) {
	opts := Options{DoubleSpaceAfterSentence: true}
	texts := []string{
		"End of sentence.  Next word follows here",
		"Plain prose with no punctuation at all just words and words",
		"First paragraph runs long enough to wrap.  Twice even, with luck.\n\nSecond paragraph also needs to be long enough to wrap around",
	}

	for _, text := range texts {
		unfilled := unfillAll(text, opts)
		for _, width := range []int{12, 20, 30} {
			doc := document.New(unfilled)
			// Paragraph-ending breaks are hard in a consistent document.
			MarkParagraphEnds(doc)
			layout := NewReflowLayout(opts)

			layout.WrapDisplay(doc, width)
			UnfillBuffer(doc, opts)

			if doc.String() != unfilled {
				t.Errorf("round trip at width %d: got %q, want %q", width, doc.String(), unfilled)
			}
		}
	}
}

func TestWrapDisplayIdempotent(t *testing.T) {
	doc := document.New("a paragraph long enough that wrapping at a small width changes it")
	layout := NewReflowLayout(Options{})

	layout.WrapDisplay(doc, 20)
	once := doc.String()
	layout.WrapDisplay(doc, 20)

	if doc.String() != once {
		t.Errorf("second wrap changed text: %q != %q", doc.String(), once)
	}
	for _, line := range strings.Split(doc.String(), "\n") {
		if len([]rune(line)) > 20 {
			t.Errorf("display line %q exceeds width 20", line)
		}
	}
}

func TestWrapParagraphOnlyTouchesOneParagraph(t *testing.T) {
	doc := document.New("first paragraph that is long enough to wrap\n\nsecond short")
	layout := NewReflowLayout(Options{})

	layout.WrapParagraph(doc, 0, 20)

	parts := strings.Split(doc.String(), "\n\n")
	if len(parts) != 2 {
		t.Fatalf("paragraph structure changed: %q", doc.String())
	}
	if parts[1] != "second short" {
		t.Errorf("second paragraph touched: %q", parts[1])
	}
	if !strings.Contains(parts[0], "\n") {
		t.Errorf("first paragraph should have wrapped: %q", parts[0])
	}
}

func TestContinuousWrapToggle(t *testing.T) {
	layout := NewReflowLayout(Options{})
	if layout.ContinuousEnabled() {
		t.Error("continuous wrap should start disabled")
	}
	layout.ContinuousWrapEnable()
	if !layout.ContinuousEnabled() {
		t.Error("ContinuousWrapEnable did not stick")
	}
	layout.ContinuousWrapDisable()
	if layout.ContinuousEnabled() {
		t.Error("ContinuousWrapDisable did not stick")
	}
}

func TestWrapKeepsCursorPosition(t *testing.T) {
	doc := document.New("alpha beta gamma delta")
	doc.SetCursor(10) // after "beta"
	layout := NewReflowLayout(Options{})

	layout.WrapParagraph(doc, 0, 11)

	if got := doc.String(); got != "alpha beta\ngamma delta" {
		t.Fatalf("wrapped = %q", got)
	}
	if doc.Cursor() != 10 {
		t.Errorf("cursor moved to %d, want 10", doc.Cursor())
	}

	// Widening the display merges the soft break back; the cursor keeps
	// pointing at the same spot in the word.
	doc.SetCursor(14) // after "gam"
	layout.WrapParagraph(doc, 0, 80)

	if got := doc.String(); got != "alpha beta gamma delta" {
		t.Fatalf("re-merged = %q", got)
	}
	if doc.Cursor() != 14 {
		t.Errorf("cursor moved to %d, want 14", doc.Cursor())
	}
}

func TestMapWrapOffset(t *testing.T) {
	tests := []struct {
		name string
		old  string
		new  string
		off  int
		want int
	}{
		{"before change", "ab cd", "ab\ncd", 1, 1},
		{"after collapsed spaces", "ab  cd", "ab\ncd", 4, 3},
		{"inside word past break", "ab cd", "ab\ncd", 4, 4},
		{"trailing space kept", "ab cd ", "ab\ncd ", 6, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapWrapOffset([]rune(tt.old), []rune(tt.new), tt.off)
			if got != tt.want {
				t.Errorf("mapWrapOffset(%q, %q, %d) = %d, want %d",
					tt.old, tt.new, tt.off, got, tt.want)
			}
		})
	}
}
