package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/softwrap/softwrap/internal/cli"
	"github.com/softwrap/softwrap/pkg/files"
	"github.com/softwrap/softwrap/pkg/models"
)

var configOutputFormat string

// NewConfigCommand creates the config command with its subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change softwrap settings",
		Long: `Show or change the settings stored in .softwrap/settings.yaml under the
current directory.

Examples:
  # Show the effective settings
  softwrap config show

  # Show as JSON
  softwrap config show -o json

  # Change a setting
  softwrap config set wrap.double_space_after_sentence true
  softwrap config set wrap.width 72`,
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(configOutputFormat)
		},
		RunE: runConfigShow,
	}
	show.Flags().StringVarP(&configOutputFormat, "output", "o", "yaml", "Output format (text, json, yaml)")

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting and write the settings file",
		Args:  cobra.ExactArgs(2),
		RunE:  runConfigSet,
	}

	cmd.AddCommand(show)
	cmd.AddCommand(set)
	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings, err := files.ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}
	return cli.OutputResults(os.Stdout, configOutputFormat, settings)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	settings, err := files.ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}

	if err := applySetting(settings, key, value); err != nil {
		return err
	}
	if err := files.WriteSettings(settings); err != nil {
		return err
	}

	cli.PrintSuccess("set %s = %s", key, value)
	return nil
}

func applySetting(settings *models.Settings, key, value string) error {
	switch key {
	case "wrap.width":
		width, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s needs an integer value: %w", key, err)
		}
		settings.Wrap.Width = width
	case "wrap.force_hard_returns":
		return setBool(&settings.Wrap.ForceHardReturns, key, value)
	case "wrap.double_space_after_sentence":
		return setBool(&settings.Wrap.DoubleSpaceAfterSentence, key, value)
	case "wrap.double_space_after_colon":
		return setBool(&settings.Wrap.DoubleSpaceAfterColon, key, value)
	case "editor.tab_width":
		width, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s needs an integer value: %w", key, err)
		}
		settings.Editor.TabWidth = width
	case "ui.show_status":
		return setBool(&settings.UI.ShowStatus, key, value)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func setBool(target *bool, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%s needs a boolean value: %w", key, err)
	}
	*target = b
	return nil
}
