package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tordrt/biaslab/internal/content"
	"github.com/tordrt/biaslab/internal/formatter"
)

var examplesCmd = &cobra.Command{
	Use:   "examples [category]",
	Short: "Show documented examples of bias in education",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExamples,
}

func runExamples(cmd *cobra.Command, args []string) error {
	catalog, err := content.Load()
	if err != nil {
		return err
	}
	f, err := formatter.New(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	examples := catalog.Examples
	if len(args) == 1 {
		e, err := catalog.Example(args[0])
		if err != nil {
			return err
		}
		examples = []content.Example{e}
	}
	if err := f.FormatExamples(examples); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}
