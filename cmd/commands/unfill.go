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
	unfillInPlace bool
	unfillWidth   int
	unfillForce   bool
)

// NewUnfillCommand creates the unfill command
func NewUnfillCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unfill <file>",
		Short: "Merge wrapped lines back into logical lines",
		Long: `Unfill a text file: classify its line breaks, then merge the breaks
that exist only because the text was filled to a column width. Paragraph
ends always survive; inter-sentence spacing follows your settings.

The classification heuristic inspects the file the same way the editor
does on activating word wrap: a file with overlong lines and no known
hard breaks keeps every break, anything else keeps only the break that
ends each paragraph.

By default the result is written to stdout.

Examples:
  # Unfill to stdout
  softwrap unfill draft.txt

  # Unfill in place
  softwrap unfill draft.txt --write

  # Classify against a different wrap width
  softwrap unfill draft.txt --width 100

  # Keep every existing break (no merging of typed returns)
  softwrap unfill draft.txt --force-hard`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFilePath(args[0]); err != nil {
				return err
			}
			return cli.ValidateWidth(unfillWidth)
		},
		RunE: runUnfill,
	}

	cmd.Flags().BoolVarP(&unfillInPlace, "write", "w", false, "Rewrite the file instead of printing to stdout")
	cmd.Flags().IntVar(&unfillWidth, "width", 80, "Wrap width the file was filled to")
	cmd.Flags().BoolVar(&unfillForce, "force-hard", false, "Treat every existing break as typed")

	return cmd
}

func runUnfill(cmd *cobra.Command, args []string) error {
	path := args[0]

	settings, err := files.ReadSettings()
	if err != nil {
		// Use default settings if can't read
		settings = models.DefaultSettings()
	}
	opts := wrapOptions(settings)
	if unfillForce {
		opts.ForceHardReturns = true
	}

	doc, err := files.LoadDocument(path)
	if err != nil {
		return err
	}

	before := len(doc.Breaks())
	wrap.Classify(doc, unfillWidth, opts)
	wrap.UnfillBuffer(doc, opts)

	if !unfillInPlace {
		fmt.Fprint(os.Stdout, doc.String())
		return nil
	}

	if err := files.SaveDocument(doc, path); err != nil {
		return err
	}
	cli.PrintSuccess("unfilled %s (%d breaks merged)", path, before-len(doc.Breaks()))
	return nil
}

// wrapOptions maps settings onto the wrap engine's options.
func wrapOptions(settings *models.Settings) wrap.Options {
	return wrap.Options{
		ForceHardReturns:         settings.Wrap.ForceHardReturns,
		DoubleSpaceAfterSentence: settings.Wrap.DoubleSpaceAfterSentence,
		DoubleSpaceAfterColon:    settings.Wrap.DoubleSpaceAfterColon,
	}
}
