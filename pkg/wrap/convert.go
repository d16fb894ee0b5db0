package wrap

import "github.com/softwrap/softwrap/pkg/document"

// ConvertBreaksToSoft marks every break in [start, end) soft. Useful when a
// region of conventionally filled text is pasted into a wrapped document
// and its breaks should be treated as display wrapping. Re-running it over
// the same region changes nothing.
func ConvertBreaksToSoft(doc *document.Document, start, end int) {
	pos := doc.Clamp(start)
	end = doc.Clamp(end)
	for {
		br := doc.NextBreak(pos)
		if br < 0 || br >= end {
			return
		}
		doc.SetHard(br, false)
		pos = br + 1
	}
}
