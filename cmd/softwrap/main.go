package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/softwrap/softwrap/cmd/commands"
	"github.com/softwrap/softwrap/internal/cli"
	"github.com/softwrap/softwrap/pkg/files"
	"github.com/softwrap/softwrap/pkg/models"
	"github.com/softwrap/softwrap/pkg/tui"
)

// version is set during build with -ldflags
var version = "dev"

var (
	flagQuiet       bool
	flagNoColor     bool
	flagSkipConfirm bool
)

var rootCmd = &cobra.Command{
	Use:   "softwrap [file]",
	Short: "Edit prose as word-wrapped text, store it with only the breaks you typed",
	Long: `Softwrap is an editor for prose. On screen, long lines wrap at word
boundaries to fit the window; on disk, the file keeps only the line
breaks you typed yourself. Wrapping breaks are removed on every save
and regenerated on load, so the stored file stays ordinary
line-delimited text.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(flagQuiet, flagNoColor, flagSkipConfirm)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		settings, err := files.ReadSettings()
		if err != nil {
			settings = models.DefaultSettings()
		}

		app, err := tui.NewApp(path, settings)
		if err != nil {
			return err
		}
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of softwrap",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("softwrap version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagSkipConfirm, "yes", "y", false, "Skip confirmation prompts")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewUnfillCommand())
	rootCmd.AddCommand(commands.NewFillCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewExamplesCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
