package models

// Settings represents the application configuration
type Settings struct {
	Wrap   WrapSettings   `yaml:"wrap"`
	Editor EditorSettings `yaml:"editor"`
	UI     UISettings     `yaml:"ui"`
}

// WrapSettings controls break classification and unfill spacing
type WrapSettings struct {
	// Width is the display wrap width. 0 derives it from the viewport
	// at activation time (viewport width minus one column).
	Width int `yaml:"width"`

	// ForceHardReturns marks every existing break hard on activation,
	// skipping the document inspection heuristic.
	ForceHardReturns bool `yaml:"force_hard_returns"`

	// DoubleSpaceAfterSentence restores two spaces between sentences
	// when soft breaks are merged.
	DoubleSpaceAfterSentence bool `yaml:"double_space_after_sentence"`

	// DoubleSpaceAfterColon restores two spaces after a colon when soft
	// breaks are merged.
	DoubleSpaceAfterColon bool `yaml:"double_space_after_colon"`
}

// EditorSettings controls editor preferences
type EditorSettings struct {
	TabWidth int `yaml:"tab_width"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowStatus bool `yaml:"show_status"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Wrap: WrapSettings{
			Width:                    0,
			ForceHardReturns:         false,
			DoubleSpaceAfterSentence: false,
			DoubleSpaceAfterColon:    false,
		},
		Editor: EditorSettings{
			TabWidth: 4,
		},
		UI: UISettings{
			ShowStatus: true,
		},
	}
}
