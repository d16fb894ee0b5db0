package examples

func getProseExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "Prose Samples",
			Description: "Paragraph-style documents for trying unfill and wrap",
			Documents: []ExampleDocument{
				{
					Name:        "Filled Essay",
					Filename:    "example-filled-essay.txt",
					Description: "Paragraphs hard-wrapped at roughly 65 columns, the way older editors fill text",
					Content: `Plain text files outlive the programs that wrote them.  A letter
typed thirty years ago still opens today, while the word processor
it came from is a museum piece.  That durability is the whole
argument for keeping prose in plain text.

The catch is line length.  Text written for one screen width looks
wrong at another: either the lines run off the edge, or they break
in awkward places halfway across the window.  Editors solved this
by filling paragraphs, inserting a line break near a fixed column.
The breaks make the file readable anywhere, but they freeze the
paragraph at one width forever.

Unfilling reverses the damage.  Merge the breaks inside each
paragraph back into spaces, keep the blank lines between
paragraphs, and the text flows again at whatever width the reader
has.  Open this file, toggle word wrap, and watch these paragraphs
become three long lines.
`,
				},
				{
					Name:        "Wide Paragraphs",
					Filename:    "example-wide-paragraphs.txt",
					Description: "Each paragraph on a single long line, ready for display wrapping",
					Content: `A paragraph stored as one long line is the logical form of prose.  Nothing about its meaning depends on where a screen happens to end, so nothing in the file says where lines end either.

Display wrapping is the editor's job, not the file's.  When this document is open with word wrap on, the editor breaks these lines at word boundaries to fit the window, and removes those breaks again before the file is written back out.

Resize the window, change the wrap width, print it, paste it into a mail client: the text adapts, because the file never committed to a width in the first place.
`,
				},
			},
		},
	}
}
