package wrap

import (
	"github.com/muesli/reflow/wordwrap"

	"github.com/softwrap/softwrap/pkg/document"
)

// Layout is the display engine the controller drives: it materializes
// display wrapping as soft breaks and toggles automatic re-wrap while the
// user types. Implementations must never change the hardness of breaks the
// author owns.
type Layout interface {
	WrapDisplay(doc *document.Document, width int)
	ContinuousWrapEnable()
	ContinuousWrapDisable()
}

// ReflowLayout wraps logical lines at word boundaries, inserting soft
// breaks where the display needs them. The word-wrap discipline is
// reflow's: words stay intact, the spaces at a break point are absorbed by
// the break, and words wider than the width overflow rather than split.
type ReflowLayout struct {
	opts       Options
	continuous bool
}

// NewReflowLayout creates a layout engine using opts to restore
// inter-sentence spacing when it has to re-merge soft breaks before
// re-wrapping.
func NewReflowLayout(opts Options) *ReflowLayout {
	return &ReflowLayout{opts: opts}
}

// ContinuousWrapEnable turns on re-wrap-as-you-type.
func (l *ReflowLayout) ContinuousWrapEnable() {
	l.continuous = true
}

// ContinuousWrapDisable turns off re-wrap-as-you-type.
func (l *ReflowLayout) ContinuousWrapDisable() {
	l.continuous = false
}

// ContinuousEnabled reports whether edits should trigger a paragraph
// re-wrap.
func (l *ReflowLayout) ContinuousEnabled() bool {
	return l.continuous
}

// WrapDisplay re-wraps every paragraph to the given display width. Existing
// soft breaks are merged first so the paragraph wraps from its logical
// form; hard breaks always remain line ends.
func (l *ReflowLayout) WrapDisplay(doc *document.Document, width int) {
	start := doc.NextParagraphStart(0)
	for start >= 0 {
		end := l.wrapRange(doc, start, width)
		if end >= doc.Len() {
			break
		}
		start = doc.NextParagraphStart(end + 1)
	}
}

// WrapParagraph re-wraps only the paragraph containing pos. The editor
// calls this after each edit while continuous wrap is enabled.
func (l *ReflowLayout) WrapParagraph(doc *document.Document, pos, width int) {
	start := doc.ParagraphStart(pos)
	if start < 0 {
		return
	}
	l.wrapRange(doc, start, width)
}

// wrapRange unfills then re-wraps the paragraph starting at start and
// returns its adjusted end position.
func (l *ReflowLayout) wrapRange(doc *document.Document, start, width int) int {
	end := doc.ParagraphEnd(start)
	end += UnfillParagraph(doc, start, end, l.opts)

	segStart := start
	for segStart < end {
		segEnd := end
		if br := doc.NextBreak(segStart); br >= 0 && br < end {
			segEnd = br
		}
		line := doc.Slice(segStart, segEnd)
		wrapped := wordwrap.String(line, width)
		if wrapped != line {
			delta := spliceSegment(doc, segStart, line, wrapped)
			end += delta
			segEnd += delta
		}
		segStart = segEnd + 1
	}
	return end
}

// spliceSegment replaces the segment text starting at start with its
// wrapped form, touching only the runes that actually changed. Keeping the
// unchanged prefix and suffix out of the edit keeps the cursor (and the
// annotations of untouched breaks) stable while the user types. A cursor
// inside the changed region is remapped by its content-rune offset, since
// wrapping only trades spaces for breaks and never moves word runes.
// Returns the length delta.
func spliceSegment(doc *document.Document, start int, old, new string) int {
	oldRunes := []rune(old)
	newRunes := []rune(new)

	prefix := 0
	for prefix < len(oldRunes) && prefix < len(newRunes) && oldRunes[prefix] == newRunes[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(oldRunes)-prefix && suffix < len(newRunes)-prefix &&
		oldRunes[len(oldRunes)-1-suffix] == newRunes[len(newRunes)-1-suffix] {
		suffix++
	}

	oldMid := oldRunes[prefix : len(oldRunes)-suffix]
	newMid := newRunes[prefix : len(newRunes)-suffix]

	cur := doc.Cursor()
	remap := cur >= start+prefix && cur < start+len(oldRunes)-suffix

	doc.Delete(start+prefix, len(oldMid))
	doc.InsertSoft(start+prefix, string(newMid))

	if remap {
		doc.SetCursor(start + prefix + mapWrapOffset(oldMid, newMid, cur-start-prefix))
	}
	return len(newRunes) - len(oldRunes)
}

// mapWrapOffset finds the position in new corresponding to off in old,
// where new is old with some space runs replaced by single line breaks.
// The position keeps the same count of non-whitespace runes before it; a
// cursor sitting after trailing whitespace stays after the replacement
// whitespace.
func mapWrapOffset(old, new []rune, off int) int {
	content, trail := 0, 0
	for _, r := range old[:off] {
		if r == ' ' || r == '\n' {
			trail++
		} else {
			content++
			trail = 0
		}
	}

	j := 0
	for j < len(new) && content > 0 {
		if new[j] != ' ' && new[j] != '\n' {
			content--
		}
		j++
	}
	for j < len(new) && trail > 0 && (new[j] == ' ' || new[j] == '\n') {
		j++
		trail--
	}
	return j
}
