package document

import "testing"

func TestNewDocumentBreaksUnclassified(t *testing.T) {
	d := New("one\ntwo\n")

	for _, br := range d.Breaks() {
		if d.IsHard(br) {
			t.Errorf("break at %d should start unclassified (soft)", br)
		}
	}
	if d.HasHardBreaks() {
		t.Error("fresh document should have no hard breaks")
	}
}

func TestSetHardOnlyAffectsBreaks(t *testing.T) {
	d := New("one\ntwo")

	d.SetHard(3, true)
	if !d.IsHard(3) {
		t.Error("break at 3 should be hard after SetHard")
	}

	// Not a break: setting is a no-op, reading reports false.
	d.SetHard(1, true)
	if d.IsHard(1) {
		t.Error("position 1 is not a break and must never read hard")
	}
	d.SetHard(99, true)
	if d.IsHard(99) {
		t.Error("out-of-range position must never read hard")
	}
}

func TestBreaks(t *testing.T) {
	d := New("a\nb\n\nc")
	got := d.Breaks()
	want := []int{1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("Breaks() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Breaks()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	if d.NextBreak(2) != 3 {
		t.Errorf("NextBreak(2) = %d, want 3", d.NextBreak(2))
	}
	if d.NextBreak(5) != -1 {
		t.Errorf("NextBreak(5) = %d, want -1", d.NextBreak(5))
	}
}

func TestInsertMarksNewBreaksHard(t *testing.T) {
	d := New("ab")
	d.Insert(1, "\n")

	if d.String() != "a\nb" {
		t.Fatalf("text = %q, want %q", d.String(), "a\nb")
	}
	if !d.IsHard(1) {
		t.Error("typed break must default to hard")
	}
}

func TestInsertSoftMarksNewBreaksSoft(t *testing.T) {
	d := New("ab")
	d.InsertSoft(1, "x\ny")

	if d.String() != "ax\nyb" {
		t.Fatalf("text = %q, want %q", d.String(), "ax\nyb")
	}
	if d.IsHard(2) {
		t.Error("layout-inserted break must be soft")
	}
}

func TestInsertShiftsAnnotations(t *testing.T) {
	d := New("a\nb\nc")
	d.SetHard(1, true)
	d.SetHard(3, true)

	d.Insert(2, "xx")

	if d.String() != "a\nxxb\nc" {
		t.Fatalf("text = %q", d.String())
	}
	if !d.IsHard(1) {
		t.Error("annotation before insertion point must stay put")
	}
	if !d.IsHard(5) {
		t.Error("annotation after insertion point must shift right")
	}
}

func TestDeleteDropsAndShiftsAnnotations(t *testing.T) {
	d := New("a\nb\nc")
	d.SetHard(1, true)
	d.SetHard(3, true)

	d.Delete(1, 1)

	if d.String() != "ab\nc" {
		t.Fatalf("text = %q", d.String())
	}
	if d.IsHard(1) {
		t.Error("removed break's annotation must be discarded")
	}
	if !d.IsHard(2) {
		t.Error("later annotation must shift left with its break")
	}
}

func TestCursorTracksEdits(t *testing.T) {
	d := New("hello world")
	d.SetCursor(6)

	d.Insert(0, "> ")
	if d.Cursor() != 8 {
		t.Errorf("cursor after insert before it = %d, want 8", d.Cursor())
	}

	d.Delete(0, 2)
	if d.Cursor() != 6 {
		t.Errorf("cursor after delete before it = %d, want 6", d.Cursor())
	}

	d.Delete(4, 4)
	if d.Cursor() != 4 {
		t.Errorf("cursor inside deleted range should clamp to %d, got %d", 4, d.Cursor())
	}
}

func TestModifiedFlag(t *testing.T) {
	d := New("text")
	d.SetModified(false)

	if d.Modified() {
		t.Error("document should start unmodified")
	}
	d.Insert(0, "x")
	if !d.Modified() {
		t.Error("insert should mark the document modified")
	}
	d.SetModified(false)
	d.Delete(0, 1)
	if !d.Modified() {
		t.Error("delete should mark the document modified")
	}
}

func TestSliceClamps(t *testing.T) {
	d := New("abc")
	if got := d.Slice(-5, 99); got != "abc" {
		t.Errorf("Slice(-5, 99) = %q, want %q", got, "abc")
	}
	if got := d.Slice(1, 2); got != "b" {
		t.Errorf("Slice(1, 2) = %q, want %q", got, "b")
	}
}
