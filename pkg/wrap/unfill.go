package wrap

import (
	"strings"

	"github.com/softwrap/softwrap/pkg/document"
)

// Options controls break classification and inter-sentence spacing.
type Options struct {
	// ForceHardReturns makes activation mark every existing break hard,
	// regardless of what the document looks like.
	ForceHardReturns bool

	// DoubleSpaceAfterSentence restores two spaces when a soft break is
	// merged right after sentence-ending punctuation.
	DoubleSpaceAfterSentence bool

	// DoubleSpaceAfterColon restores two spaces when a soft break is
	// merged right after a colon.
	DoubleSpaceAfterColon bool
}

// Sentence-ending punctuation, possibly trailed by closing delimiters.
const (
	sentenceEnders = ".!?"
	closers        = `"')]}”’»`
)

// UnfillParagraph merges the soft breaks of the paragraph spanning
// [start, end) into spaces, leaving hard breaks untouched. A break followed
// by sentence-ending punctuation context gets one or two spaces according
// to opts; a colon likewise; any other joinable break gets a single space.
// Breaks followed by whitespace or a blank line are paragraph boundaries
// and are never joined. Returns the signed change in document length so
// callers can adjust trailing offsets.
func UnfillParagraph(doc *document.Document, start, end int, opts Options) int {
	pos := doc.Clamp(start)
	end = doc.Clamp(end)
	delta := 0

	// Leading blank lines belong to the separator, not the paragraph.
	for pos < end && doc.IsBlankLine(pos) {
		pos = doc.LineEnd(pos) + 1
	}

	for {
		br := doc.NextBreak(pos)
		if br < 0 || br >= end {
			break
		}
		if doc.IsHard(br) {
			// Structural break: never joined.
			pos = br + 1
			continue
		}
		next := doc.At(br + 1)
		if br+1 >= end || next == 0 || isSpacing(next) || doc.IsBlankLine(br+1) {
			pos = br + 1
			continue
		}

		spacing := joinSpacing(doc, br, opts)
		doc.Delete(br, 1)
		doc.Insert(br, strings.Repeat(" ", spacing))
		delta += spacing - 1
		end += spacing - 1
		pos = br + spacing
	}
	return delta
}

// UnfillBuffer unfills every paragraph, walking from the document end
// toward the start so earlier paragraph positions stay valid while later
// ones mutate. The walk stops as soon as a pass fails to move strictly
// backward, which guards against zero-length paragraphs. The document's
// cursor tracks the edits, so callers end up reasonably close to where
// they were.
func UnfillBuffer(doc *document.Document, opts Options) {
	last := doc.Len() + 1
	pos := doc.Len()
	for {
		start := doc.PreviousParagraphStart(pos)
		if start < 0 || start >= last {
			break
		}
		UnfillParagraph(doc, start, doc.ParagraphEnd(start), opts)
		last = start
		pos = start
	}
}

// joinSpacing classifies the text before the break at br and returns how
// many spaces replace it. Closing quotes and brackets between the
// punctuation and the break do not hide the sentence end.
func joinSpacing(doc *document.Document, br int, opts Options) int {
	prev := br - 1
	for prev >= 0 && strings.ContainsRune(closers, doc.At(prev)) {
		prev--
	}
	if prev < 0 {
		return 1
	}
	switch {
	case strings.ContainsRune(sentenceEnders, doc.At(prev)):
		if opts.DoubleSpaceAfterSentence {
			return 2
		}
	case doc.At(prev) == ':':
		if opts.DoubleSpaceAfterColon {
			return 2
		}
	}
	return 1
}

func isSpacing(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}
