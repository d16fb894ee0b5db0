package document

// IsBreak reports whether pos addresses a line-break rune.
func (d *Document) IsBreak(pos int) bool {
	return pos >= 0 && pos < len(d.text) && d.text[pos] == '\n'
}

// SetHard marks the break at pos hard or soft. Positions that do not
// address a line break are ignored.
func (d *Document) SetHard(pos int, hard bool) {
	if !d.IsBreak(pos) {
		return
	}
	d.hard[pos] = hard
}

// IsHard reports whether the break at pos is marked hard. Reading a
// position that is not a break, or a break never classified, reports false.
func (d *Document) IsHard(pos int) bool {
	if !d.IsBreak(pos) {
		return false
	}
	return d.hard[pos]
}

// HasHardBreaks reports whether any break in the document is marked hard.
func (d *Document) HasHardBreaks() bool {
	for pos, hard := range d.hard {
		if hard && d.IsBreak(pos) {
			return true
		}
	}
	return false
}

// Breaks returns the positions of all line breaks in document order.
func (d *Document) Breaks() []int {
	var breaks []int
	for i, r := range d.text {
		if r == '\n' {
			breaks = append(breaks, i)
		}
	}
	return breaks
}

// NextBreak returns the position of the first break at or after from, or -1
// when no break remains.
func (d *Document) NextBreak(from int) int {
	for i := d.clamp(from); i < len(d.text); i++ {
		if d.text[i] == '\n' {
			return i
		}
	}
	return -1
}

// shiftHardness remaps hardness annotations at or beyond from by delta.
// Annotations that would land inside the edited region are dropped by the
// caller before shifting.
func (d *Document) shiftHardness(from, delta int) {
	if delta == 0 || len(d.hard) == 0 {
		return
	}
	shifted := make(map[int]bool, len(d.hard))
	for pos, hard := range d.hard {
		if pos >= from {
			shifted[pos+delta] = hard
		} else {
			shifted[pos] = hard
		}
	}
	d.hard = shifted
}
