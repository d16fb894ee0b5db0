// Package document provides the text buffer softwrap operates on: a flat
// rune sequence with embedded line breaks, where each break carries a
// hardness annotation. Hard breaks are part of the document's logical
// structure and survive saving; soft breaks exist only for display wrapping
// and are stripped before the document reaches disk.
package document
