package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/tordrt/biaslab/internal/dataset"
	"github.com/tordrt/biaslab/internal/formatter"
)

var (
	sampleSize       int
	compareAttribute string
	groupA           string
	groupB           string
	summaryAttribute string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print rows of the synthetic student dataset",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the mean recommended score of two groups",
	Example: `  biaslab compare --attribute Gender --group-a Female --group-b Male
  biaslab compare --attribute "Socioeconomic Level" --group-a Low --group-b High --seed 7`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize recommended scores per group of an attribute",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	generateCmd.Flags().IntVarP(&sampleSize, "sample", "n", 10, "Number of random rows to print (0 prints all)")

	compareCmd.Flags().StringVarP(&compareAttribute, "attribute", "a", "", "Gender, Race or Socioeconomic Level")
	compareCmd.Flags().StringVar(&groupA, "group-a", "", "First group, e.g. Female")
	compareCmd.Flags().StringVar(&groupB, "group-b", "", "Second group, e.g. Male")
	_ = compareCmd.MarkFlagRequired("attribute")
	_ = compareCmd.MarkFlagRequired("group-a")
	_ = compareCmd.MarkFlagRequired("group-b")

	summaryCmd.Flags().StringVarP(&summaryAttribute, "attribute", "a", "", "Gender, Race or Socioeconomic Level")
	_ = summaryCmd.MarkFlagRequired("attribute")
}

func generate() *dataset.Table {
	t := dataset.Generate(cfg.Seed)
	logger.Debug("dataset generated", "seed", cfg.Seed, "rows", t.Len())
	return t
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if sampleSize < 0 {
		return fmt.Errorf("--sample must not be negative")
	}
	f, err := formatter.New(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	t := generate()
	records := t.Records()
	if sampleSize > 0 {
		records = dataset.Sample(t, sampleSize, rand.New(rand.NewPCG(uint64(cfg.Seed), 0)))
	}
	if err := f.FormatRecords(records); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	attr, err := dataset.ParseAttribute(compareAttribute)
	if err != nil {
		return err
	}
	f, err := formatter.New(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	result, err := dataset.Compare(generate(), attr, dataset.Category(groupA), dataset.Category(groupB))
	if err != nil {
		return err
	}
	if err := f.FormatComparison(result); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	attr, err := dataset.ParseAttribute(summaryAttribute)
	if err != nil {
		return err
	}
	f, err := formatter.New(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	groups, err := dataset.Summarize(generate(), attr)
	if err != nil {
		return err
	}
	if err := f.FormatSummary(attr, groups); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}
