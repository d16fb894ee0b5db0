package wrap

import (
	"strings"
	"testing"

	"github.com/softwrap/softwrap/pkg/document"
)

const filledText = "This paragraph was filled by hand at some\n" +
	"narrow width long before word wrap existed,\n" +
	"so every line break in it was typed.\n"

func newTestController(text string) (*Controller, *document.Document, *[]string) {
	doc := document.New(text)
	doc.SetModified(false)
	var notices []string
	c := NewController(doc, NewReflowLayout(Options{}), Options{}, func(msg string) {
		notices = append(notices, msg)
	})
	return c, doc, &notices
}

func TestControllerToggle(t *testing.T) {
	c, _, _ := newTestController(filledText)

	if c.State() != StateOff {
		t.Fatal("controller should start Off")
	}
	c.Toggle(81)
	if c.State() != StateOn {
		t.Error("toggle from Off should activate")
	}
	if c.Width() != 80 {
		t.Errorf("width = %d, want viewport minus one", c.Width())
	}
	c.Toggle(81)
	if c.State() != StateOff {
		t.Error("toggle from On should deactivate")
	}
}

func TestActivateIsIdempotent(t *testing.T) {
	c, doc, _ := newTestController(filledText)

	c.Activate(41)
	text := doc.String()
	c.Activate(41)

	if doc.String() != text {
		t.Error("activating while On must be a no-op")
	}
	if c.State() != StateOn {
		t.Error("state should remain On")
	}
}

func TestActivatePreservesModifiedFlag(t *testing.T) {
	c, doc, _ := newTestController(filledText)

	c.Activate(81)
	if doc.Modified() {
		t.Error("classification and refill are not meaningful edits")
	}
	c.Deactivate()
	if doc.Modified() {
		t.Error("deactivation unfill is not a meaningful edit")
	}
}

func TestActivateClassifiesFilledDocument(t *testing.T) {
	// filledText has overlong lines at width 20 and no hard breaks, so
	// activation marks every typed break hard and they all survive.
	c, doc, _ := newTestController(filledText)

	c.Activate(21)
	c.Deactivate()

	if doc.String() != filledText {
		t.Errorf("filled document should round-trip unchanged, got %q", doc.String())
	}
}

func TestDeactivateRemovesSoftBreaks(t *testing.T) {
	text := "one logical line that is certainly longer than a narrow display\n"
	c, doc, _ := newTestController(text)
	doc.SetHard(doc.Len()-1, true)

	c.Activate(21)
	if !strings.Contains(doc.Slice(0, doc.Len()-1), "\n") {
		t.Fatal("activation should have wrapped the long line")
	}
	c.Deactivate()
	if doc.String() != text {
		t.Errorf("deactivation should restore the logical form, got %q", doc.String())
	}
}

func TestSaveHooksAreNoopsWhileOff(t *testing.T) {
	c, doc, notices := newTestController("a\nb\n")

	c.BeforeWrite()
	c.AfterWrite()

	if doc.String() != "a\nb\n" {
		t.Error("save hooks must not touch the document while Off")
	}
	if len(*notices) != 0 {
		t.Error("no notice expected while Off")
	}
}

func TestSaveHooksUnfillAndRefill(t *testing.T) {
	text := "a paragraph that is long enough to need wrapping at twenty columns\n"
	c, doc, notices := newTestController(text)
	doc.SetHard(doc.Len()-1, true)
	c.Activate(21)

	c.BeforeWrite()
	if strings.Contains(doc.Slice(0, doc.Len()-1), "\n") {
		t.Error("BeforeWrite should leave only hard breaks")
	}
	stored := doc.String()

	doc.SetModified(true)
	c.AfterWrite()
	if !strings.Contains(doc.Slice(0, doc.Len()-1), "\n") {
		t.Error("AfterWrite should restore display wrapping")
	}
	if doc.Modified() {
		t.Error("AfterWrite should clear the modified flag")
	}
	if len(*notices) != 1 || !strings.Contains((*notices)[0], "soft line breaks") {
		t.Errorf("notices = %v, want the save notice", *notices)
	}

	// A second save produces the identical stored form.
	c.BeforeWrite()
	if doc.String() != stored {
		t.Errorf("second BeforeWrite = %q, want %q", doc.String(), stored)
	}
}

func TestUnfillParagraphAtRequiresOn(t *testing.T) {
	c, doc, _ := newTestController("soft\nwrapped\n")

	c.UnfillParagraphAt(0)
	if doc.String() != "soft\nwrapped\n" {
		t.Error("UnfillParagraphAt must be a no-op while Off")
	}
}

func TestConvertBreaksToSoft(t *testing.T) {
	c, doc, _ := newTestController("a\nb\nc\n")
	for _, br := range doc.Breaks() {
		doc.SetHard(br, true)
	}

	c.ConvertBreaksToSoft(0, 4)

	if doc.IsHard(1) || doc.IsHard(3) {
		t.Error("breaks inside the region should be soft")
	}
	if !doc.IsHard(5) {
		t.Error("break outside the region should stay hard")
	}
}
