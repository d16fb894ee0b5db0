package document

import "unicode"

// LineStart returns the position where the line containing pos begins.
// The document end belongs to the final line.
func (d *Document) LineStart(pos int) int {
	pos = d.clamp(pos)
	for pos > 0 && d.text[pos-1] != '\n' {
		pos--
	}
	return pos
}

// LineEnd returns the position of the break terminating the line containing
// pos, or the document length for the final line.
func (d *Document) LineEnd(pos int) int {
	pos = d.clamp(pos)
	for pos < len(d.text) && d.text[pos] != '\n' {
		pos++
	}
	return pos
}

// IsBlankLine reports whether the line containing pos is empty or holds
// only whitespace. Blank lines separate paragraphs.
func (d *Document) IsBlankLine(pos int) bool {
	start := d.LineStart(pos)
	end := d.LineEnd(start)
	for i := start; i < end; i++ {
		if !unicode.IsSpace(d.text[i]) {
			return false
		}
	}
	return true
}

// NextParagraphStart returns the start of the first paragraph beginning at
// or after from, or -1 when none remains. A paragraph begins at a non-blank
// line whose preceding line is blank or absent.
func (d *Document) NextParagraphStart(from int) int {
	start := d.LineStart(from)
	if start < d.clamp(from) {
		start = d.nextLineStart(start)
	}
	for start <= len(d.text) {
		if start == len(d.text) {
			return -1
		}
		if !d.IsBlankLine(start) && (start == 0 || d.IsBlankLine(start-1)) {
			return start
		}
		start = d.nextLineStart(start)
	}
	return -1
}

// PreviousParagraphStart returns the start of the last paragraph beginning
// strictly before from, or -1 when none exists.
func (d *Document) PreviousParagraphStart(from int) int {
	from = d.clamp(from)
	if from == 0 {
		return -1
	}
	start := d.LineStart(from - 1)

	// Skip the blank separator, if any.
	for start > 0 && d.IsBlankLine(start) {
		start = d.LineStart(start - 1)
	}
	if d.IsBlankLine(start) {
		return -1
	}

	// Walk back to the paragraph's first line.
	for start > 0 && !d.IsBlankLine(start-1) {
		start = d.LineStart(start - 1)
	}
	if start >= from {
		return -1
	}
	return start
}

// ParagraphStart returns the start of the paragraph containing pos, or -1
// when pos sits on a blank line.
func (d *Document) ParagraphStart(pos int) int {
	pos = d.clamp(pos)
	if pos == len(d.text) && pos > 0 {
		pos--
	}
	if d.IsBlankLine(pos) {
		return -1
	}
	start := d.LineStart(pos)
	for start > 0 && !d.IsBlankLine(start-1) {
		start = d.LineStart(start - 1)
	}
	return start
}

// ParagraphEnd returns the position of the break terminating the paragraph
// that begins at start: the break before the next blank line, or the
// document length when the paragraph runs to the end.
func (d *Document) ParagraphEnd(start int) int {
	pos := d.clamp(start)
	for {
		end := d.LineEnd(pos)
		if end == len(d.text) {
			return end
		}
		if d.IsBlankLine(end + 1) {
			return end
		}
		pos = end + 1
	}
}

func (d *Document) nextLineStart(pos int) int {
	end := d.LineEnd(pos)
	if end == len(d.text) {
		return len(d.text)
	}
	return end + 1
}
