package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/softwrap/softwrap/internal/cli"
	"github.com/softwrap/softwrap/pkg/examples"
)

func NewExamplesCommand() *cobra.Command {
	var listOnly bool
	var force bool
	var dir string

	cmd := &cobra.Command{
		Use:   "examples [category]",
		Short: "Write sample documents to try the editor on",
		Long: `Write sample documents into the current directory (or --dir).

The samples demonstrate the behaviors softwrap is built around: paragraphs
hard-wrapped at a fixed column that unfill back into flowing text, wide
single-line paragraphs that wrap to the window, and short-line notes whose
breaks are never touched.

Categories:
  prose   - paragraph-style documents (default)
  notes   - short-line lists and notes
  all     - every sample

Sample files carry an 'example-' prefix so they are easy to spot and
delete.`,
		Example: `  # Write the prose samples
  softwrap examples

  # See what is available without writing anything
  softwrap examples --list

  # Write every sample into a scratch directory
  softwrap examples all --dir /tmp/softwrap-samples`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := "prose"
			if len(args) > 0 {
				category = args[0]
			} else if listOnly {
				category = "all"
			}

			valid := examples.Categories()
			ok := false
			for _, v := range valid {
				if category == v {
					ok = true
					break
				}
			}
			if !ok {
				return fmt.Errorf("invalid category '%s'. Valid categories: %s",
					category, strings.Join(valid, ", "))
			}

			if listOnly {
				return listExamples(cmd, category)
			}
			return installExamples(cmd, category, dir, force)
		},
	}

	cmd.Flags().BoolVarP(&listOnly, "list", "l", false, "List available samples without writing them")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing sample files")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to write samples into")

	return cmd
}

func listExamples(cmd *cobra.Command, category string) error {
	out := cmd.OutOrStdout()
	if category == "all" {
		fmt.Fprintf(out, "Available samples (all categories):\n\n")
	} else {
		fmt.Fprintf(out, "Available samples in category '%s':\n\n", category)
	}

	for _, set := range examples.GetExamples(category) {
		if category == "all" {
			fmt.Fprintf(out, "[%s] %s\n", set.Category, set.Name)
		} else {
			fmt.Fprintf(out, "%s\n", set.Name)
		}
		fmt.Fprintf(out, "  %s\n", set.Description)
		for _, doc := range set.Documents {
			fmt.Fprintf(out, "  - %s (%s)\n", doc.Name, doc.Filename)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func installExamples(cmd *cobra.Command, category, dir string, force bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	written, skipped := 0, 0
	for _, set := range examples.GetExamples(category) {
		for _, doc := range set.Documents {
			path := filepath.Join(dir, doc.Filename)
			if _, err := os.Stat(path); err == nil && !force {
				skipped++
				continue
			}
			if err := os.WriteFile(path, []byte(doc.Content), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			written++
		}
	}

	if skipped > 0 {
		cli.PrintInfo("skipped %d existing file(s), use --force to overwrite", skipped)
	}
	cli.PrintSuccess("wrote %d sample file(s) to %s", written, dir)
	return nil
}
