// Package wrap implements word-wrapped prose editing over a document whose
// line breaks are classified hard or soft. Hard breaks are authored
// structure; soft breaks exist only so long lines display wrapped. The
// package provides the paragraph unfiller that merges soft-wrapped lines
// back into logical lines, the activation heuristic that classifies a
// document's existing breaks, the display layout engine that re-wraps
// logical lines to a column width, and the mode controller that sequences
// all of it around editing and saving.
package wrap
