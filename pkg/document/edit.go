package document

// Insert inserts text at pos. Any breaks in the inserted text are marked
// hard: a typed return signals paragraph structure. The cursor shifts right
// when the insertion happens at or before it.
func (d *Document) Insert(pos int, text string) {
	d.insert(pos, text, true)
}

// InsertSoft inserts text at pos with any contained breaks marked soft.
// Layout passes use this to materialize display wrapping.
func (d *Document) InsertSoft(pos int, text string) {
	d.insert(pos, text, false)
}

func (d *Document) insert(pos int, text string, hard bool) {
	if text == "" {
		return
	}
	pos = d.clamp(pos)
	runes := []rune(text)

	d.shiftHardness(pos, len(runes))

	d.text = append(d.text[:pos], append(append([]rune{}, runes...), d.text[pos:]...)...)
	for i, r := range runes {
		if r == '\n' {
			d.hard[pos+i] = hard
		}
	}

	if d.cursor >= pos {
		d.cursor += len(runes)
	}
	d.modified = true
}

// Delete removes n runes starting at pos. Hardness annotations of removed
// breaks are discarded; annotations beyond the region shift left. The
// cursor moves with the text it sits in.
func (d *Document) Delete(pos, n int) {
	pos = d.clamp(pos)
	if n > len(d.text)-pos {
		n = len(d.text) - pos
	}
	if n <= 0 {
		return
	}

	for i := pos; i < pos+n; i++ {
		delete(d.hard, i)
	}
	d.shiftHardness(pos+n, -n)

	d.text = append(d.text[:pos], d.text[pos+n:]...)

	switch {
	case d.cursor >= pos+n:
		d.cursor -= n
	case d.cursor > pos:
		d.cursor = pos
	}
	d.modified = true
}
