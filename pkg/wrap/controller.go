package wrap

import "github.com/softwrap/softwrap/pkg/document"

// State is the word-wrap mode of a single document. The mode is strictly
// binary: no intermediate states exist.
type State int

const (
	StateOff State = iota
	StateOn
)

// Controller owns the mode state machine for one document. It sequences
// break classification, display wrapping and unfilling around activation,
// deactivation and the two-phase save contract. The controller runs
// everything synchronously on the caller's goroutine; a pass either
// completes or never started.
type Controller struct {
	doc    *document.Document
	layout Layout
	opts   Options
	width  int
	state  State
	notify func(string)
}

// NewController creates a controller for doc in the Off state. notify
// receives informational messages (the post-save notice) and may be nil.
func NewController(doc *document.Document, layout Layout, opts Options, notify func(string)) *Controller {
	return &Controller{
		doc:    doc,
		layout: layout,
		opts:   opts,
		notify: notify,
	}
}

// State returns the current mode state.
func (c *Controller) State() State {
	return c.state
}

// Active reports whether word wrap is on.
func (c *Controller) Active() bool {
	return c.state == StateOn
}

// Width returns the display wrap width in effect, or 0 while Off.
func (c *Controller) Width() int {
	return c.width
}

// Activate turns word wrap on. The wrap width is one column less than the
// given viewport width, so the wrapped text never touches the last column.
// Existing breaks are classified by the activation heuristic, then the
// whole document is refilled to display form. Classification and refill
// are display bookkeeping, not edits: the modified flag is preserved.
// Activating while already On is a no-op.
func (c *Controller) Activate(viewportWidth int) {
	if c.state == StateOn {
		return
	}
	c.width = viewportWidth - 1
	if c.width < 1 {
		c.width = 1
	}

	modified := c.doc.Modified()
	Classify(c.doc, c.width, c.opts)
	c.layout.ContinuousWrapEnable()
	c.layout.WrapDisplay(c.doc, c.width)
	c.doc.SetModified(modified)
	c.state = StateOn
}

// Deactivate turns word wrap off: soft breaks are unfilled away so the
// content reverts to logical, un-wrapped lines, and continuous wrapping
// stops. The modified flag is preserved. Deactivating while Off is a
// no-op.
func (c *Controller) Deactivate() {
	if c.state == StateOff {
		return
	}
	modified := c.doc.Modified()
	UnfillBuffer(c.doc, c.opts)
	c.layout.ContinuousWrapDisable()
	c.doc.SetModified(modified)
	c.state = StateOff
	c.width = 0
}

// Toggle flips the mode: Off activates, On deactivates.
func (c *Controller) Toggle(viewportWidth int) {
	if c.state == StateOn {
		c.Deactivate()
		return
	}
	c.Activate(viewportWidth)
}

// BeforeWrite is the pre-save transform: while On, it unfills the whole
// document so only hard breaks reach storage. While Off it does nothing;
// the document already holds its logical form.
func (c *Controller) BeforeWrite() {
	if c.state != StateOn {
		return
	}
	UnfillBuffer(c.doc, c.opts)
}

// AfterWrite is the post-save transform: while On, it refills the document
// back to wrapped display form, clears the modified flag for the save that
// just happened, and emits the informational notice that the stored file
// carries no soft breaks.
func (c *Controller) AfterWrite() {
	if c.state != StateOn {
		return
	}
	c.layout.WrapDisplay(c.doc, c.width)
	c.doc.SetModified(false)
	if c.notify != nil {
		c.notify("Saved without soft line breaks")
	}
}

// UnfillParagraphAt unfills the paragraph containing pos. A no-op while
// Off, and a no-op again when re-invoked with no intervening edits.
func (c *Controller) UnfillParagraphAt(pos int) {
	if c.state != StateOn {
		return
	}
	start := c.doc.ParagraphStart(pos)
	if start < 0 {
		return
	}
	UnfillParagraph(c.doc, start, c.doc.ParagraphEnd(start), c.opts)
}

// UnfillAll unfills every paragraph in the document. A no-op while Off.
func (c *Controller) UnfillAll() {
	if c.state != StateOn {
		return
	}
	UnfillBuffer(c.doc, c.opts)
}

// ConvertBreaksToSoft marks every break in [start, end) soft. Annotation
// only; the text itself is untouched.
func (c *Controller) ConvertBreaksToSoft(start, end int) {
	ConvertBreaksToSoft(c.doc, start, end)
}
