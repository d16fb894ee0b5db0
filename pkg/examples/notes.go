package examples

func getNotesExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "Notes and Lists",
			Description: "Short-line documents where every break should stay hard",
			Documents: []ExampleDocument{
				{
					Name:        "Editor Tour",
					Filename:    "example-editor-tour.txt",
					Description: "A quick reference for the editor key bindings",
					Content: `softwrap editor tour

ctrl+w  toggle word wrap for the whole buffer
ctrl+s  save (soft breaks are removed on disk)
ctrl+q  quit, asking first when there are unsaved changes
alt+q   unfill the paragraph under the cursor
alt+u   unfill the whole buffer
alt+c   copy the buffer in its logical form
ctrl+v  paste from the clipboard

Every line above ends in a hard break, so toggling word wrap
leaves this list exactly as it is.  Only overlong lines and
soft breaks are touched.
`,
				},
				{
					Name:        "Meeting Notes",
					Filename:    "example-meeting-notes.txt",
					Description: "Mixed short lines and a closing paragraph",
					Content: `Standup, Thursday

Decisions:
ship the importer behind a flag
move the retry budget to config

Open items:
Dana owns the migration runbook
perf numbers due before the cutover

One longer note to close: the staging environment drifts from production every time someone hand-edits a config there, so the first importer task is a diff tool that reports the drift before we trust any test run.
`,
				},
			},
		},
	}
}
