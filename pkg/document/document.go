package document

// Document is an editable rune buffer. Line breaks are '\n' runes in the
// text; their hardness lives in a side map keyed by break position, which
// every edit keeps in sync with the text. Positions are rune offsets.
type Document struct {
	text     []rune
	hard     map[int]bool
	cursor   int
	modified bool
}

// New creates a document from raw text. Breaks start out unclassified:
// IsHard reports false for all of them until a classifier marks them.
func New(text string) *Document {
	return &Document{
		text: []rune(text),
		hard: make(map[int]bool),
	}
}

// Clone returns an independent copy of the document, annotations included.
// Useful for staging a transformation without committing it.
func (d *Document) Clone() *Document {
	clone := &Document{
		text:     append([]rune{}, d.text...),
		hard:     make(map[int]bool, len(d.hard)),
		cursor:   d.cursor,
		modified: d.modified,
	}
	for pos, hard := range d.hard {
		clone.hard[pos] = hard
	}
	return clone
}

// Len returns the document length in runes.
func (d *Document) Len() int {
	return len(d.text)
}

// String returns the full document text, soft breaks included.
func (d *Document) String() string {
	return string(d.text)
}

// At returns the rune at pos, or 0 when pos is out of range.
func (d *Document) At(pos int) rune {
	if pos < 0 || pos >= len(d.text) {
		return 0
	}
	return d.text[pos]
}

// Slice returns the text in [start, end), clamped to document bounds.
func (d *Document) Slice(start, end int) string {
	start = d.clamp(start)
	end = d.clamp(end)
	if end < start {
		start, end = end, start
	}
	return string(d.text[start:end])
}

// Cursor returns the current cursor position.
func (d *Document) Cursor() int {
	return d.cursor
}

// SetCursor moves the cursor, clamping it into document bounds.
func (d *Document) SetCursor(pos int) {
	d.cursor = d.clamp(pos)
}

// Modified reports whether the document has unsaved changes.
func (d *Document) Modified() bool {
	return d.modified
}

// SetModified sets the unsaved-changes flag. Mode transitions use this to
// keep classification passes from dirtying an otherwise clean document.
func (d *Document) SetModified(modified bool) {
	d.modified = modified
}

// Clamp bounds pos into [0, Len].
func (d *Document) Clamp(pos int) int {
	return d.clamp(pos)
}

func (d *Document) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(d.text) {
		return len(d.text)
	}
	return pos
}
