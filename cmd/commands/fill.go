package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/softwrap/softwrap/internal/cli"
	"github.com/softwrap/softwrap/pkg/files"
	"github.com/softwrap/softwrap/pkg/models"
	"github.com/softwrap/softwrap/pkg/wrap"
)

var (
	fillInPlace bool
	fillWidth   int
)

// NewFillCommand creates the fill command
func NewFillCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fill <file>",
		Short: "Wrap paragraphs to a column width",
		Long: `Fill a text file: wrap each paragraph's lines at word boundaries so no
line exceeds the given width. Paragraph structure is untouched; this is
the batch equivalent of the editor's display wrapping, with the breaks
written out.

By default the result is written to stdout.

Examples:
  # Fill to stdout at the default width
  softwrap fill draft.txt

  # Fill in place at 72 columns
  softwrap fill draft.txt --width 72 --write`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFilePath(args[0]); err != nil {
				return err
			}
			return cli.ValidateWidth(fillWidth)
		},
		RunE: runFill,
	}

	cmd.Flags().BoolVarP(&fillInPlace, "write", "w", false, "Rewrite the file instead of printing to stdout")
	cmd.Flags().IntVar(&fillWidth, "width", 80, "Maximum line width")

	return cmd
}

func runFill(cmd *cobra.Command, args []string) error {
	path := args[0]

	settings, err := files.ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}
	opts := wrapOptions(settings)

	doc, err := files.LoadDocument(path)
	if err != nil {
		return err
	}

	// A filled file's breaks are all intentional once written out, so the
	// paragraph shape has to be pinned first: paragraph ends stay hard,
	// everything else re-wraps.
	wrap.MarkParagraphEnds(doc)
	layout := wrap.NewReflowLayout(opts)
	layout.WrapDisplay(doc, fillWidth)

	if !fillInPlace {
		fmt.Fprint(os.Stdout, doc.String())
		return nil
	}

	if err := files.SaveDocument(doc, path); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err == nil {
		cli.PrintSuccess("filled %s at width %d (%s)", path, fillWidth, cli.FormatBytes(info.Size()))
	}
	return nil
}
