package wrap

import (
	"github.com/mattn/go-runewidth"

	"github.com/softwrap/softwrap/pkg/document"
)

// Classify decides, once per activation, how the document's existing breaks
// should be classified. A document with lines wider than the wrap width and
// no hard breaks yet is taken to be conventionally filled text being
// converted for the first time: every break in it was typed deliberately,
// so all of them become hard and a later unfill removes them correctly.
// Every other combination is presumed already consistent, and only the
// break terminating each paragraph is marked hard. ForceHardReturns
// overrides the inspection entirely.
func Classify(doc *document.Document, width int, opts Options) {
	if opts.ForceHardReturns || (HasOverlongLines(doc, width) && !doc.HasHardBreaks()) {
		MarkAllHard(doc)
		return
	}
	MarkParagraphEnds(doc)
}

// HasOverlongLines reports whether any line's display width exceeds width.
func HasOverlongLines(doc *document.Document, width int) bool {
	pos := 0
	for pos <= doc.Len() {
		end := doc.LineEnd(pos)
		if runewidth.StringWidth(doc.Slice(pos, end)) > width {
			return true
		}
		if end == doc.Len() {
			break
		}
		pos = end + 1
	}
	return false
}

// MarkAllHard marks every break in the document hard.
func MarkAllHard(doc *document.Document) {
	for _, br := range doc.Breaks() {
		doc.SetHard(br, true)
	}
}

// MarkParagraphEnds marks exactly the break terminating each paragraph
// hard. Breaks inside paragraphs keep their current classification.
func MarkParagraphEnds(doc *document.Document) {
	start := doc.NextParagraphStart(0)
	for start >= 0 {
		end := doc.ParagraphEnd(start)
		if end == doc.Len() {
			break
		}
		doc.SetHard(end, true)
		start = doc.NextParagraphStart(end + 1)
	}
}
