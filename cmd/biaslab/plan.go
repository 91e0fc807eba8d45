package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tordrt/biaslab"
	"github.com/tordrt/biaslab/internal/formatter"
	"github.com/tordrt/biaslab/internal/lessonplan"
)

var (
	planLevel      string
	planDuration   int
	planTheme      string
	planObjectives string
	planResources  string
	planSubjects   string
	outputDir      string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Create and manage lesson plans",
}

var planCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Build a lesson plan and save it",
	Example: `  biaslab plan create --theme "Chatbots" --objectives "Spot biased answers" \
    --level "High School" --duration 90 --subjects "Science, History"`,
	Args: cobra.NoArgs,
	RunE: runPlanCreate,
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved lesson plans",
	Args:  cobra.NoArgs,
	RunE:  runPlanList,
}

var planShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one lesson plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlanShow,
}

var planDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one lesson plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlanDelete,
}

var planExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every saved plan to a directory (_overview plus one file per plan)",
	Args:  cobra.NoArgs,
	RunE:  runPlanExport,
}

func init() {
	f := planCreateCmd.Flags()
	f.StringVar(&planLevel, "level", lessonplan.ElementaryI, "Elementary I, Elementary II or High School")
	f.IntVar(&planDuration, "duration", lessonplan.DefaultDuration, "Duration in minutes (30 to 120)")
	f.StringVar(&planTheme, "theme", "", "Lesson theme (required)")
	f.StringVar(&planObjectives, "objectives", "", "Learning objectives (required)")
	f.StringVar(&planResources, "resources", "", "Resources needed (optional)")
	f.StringVar(&planSubjects, "subjects", "", "Connected curriculum areas (comma-separated, optional)")

	planExportCmd.Flags().StringVarP(&outputDir, "output-dir", "d", "", "Output directory (required)")
	_ = planExportCmd.MarkFlagRequired("output-dir")

	planCmd.AddCommand(planCreateCmd, planListCmd, planShowCmd, planDeleteCmd, planExportCmd)
}

// defaultPlanStore keeps CLI plans between runs, relative to the working directory
const defaultPlanStore = "sqlite://biaslab.db"

func withStore(ctx context.Context, fn func(lessonplan.Store) error) error {
	url := cfg.StoreURL
	if url == "" {
		url = defaultPlanStore
	}
	if biaslab.IsMemoryStore(url) {
		return fmt.Errorf("the memory store does not keep plans between commands; use --store sqlite://path or a database URL")
	}
	store, err := biaslab.OpenStore(ctx, url)
	if err != nil {
		return err
	}
	defer closeStore(store)
	return fn(store)
}

func parsePlanID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid plan id: %s", arg)
	}
	return id, nil
}

func runPlanCreate(cmd *cobra.Command, args []string) error {
	plan, err := lessonplan.NewBuilder().Build(lessonplan.Request{
		Level:           planLevel,
		DurationMinutes: planDuration,
		Theme:           planTheme,
		Objectives:      planObjectives,
		Resources:       planResources,
		Curriculum:      parseSubjects(planSubjects),
	})
	if err != nil {
		return err
	}

	return withStore(cmd.Context(), func(store lessonplan.Store) error {
		saved, err := store.Save(cmd.Context(), session, plan)
		if err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}
		logger.Info("lesson plan saved", "session", session, "id", saved.ID)

		f, err := formatter.New(format, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return f.FormatPlan(saved)
	})
}

func runPlanList(cmd *cobra.Command, args []string) error {
	f, err := formatter.New(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return withStore(cmd.Context(), func(store lessonplan.Store) error {
		plans, err := store.List(cmd.Context(), session)
		if err != nil {
			return fmt.Errorf("failed to list plans: %w", err)
		}
		return f.FormatPlans(plans)
	})
}

func runPlanShow(cmd *cobra.Command, args []string) error {
	id, err := parsePlanID(args[0])
	if err != nil {
		return err
	}
	f, err := formatter.New(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return withStore(cmd.Context(), func(store lessonplan.Store) error {
		plan, err := store.Get(cmd.Context(), session, id)
		if err != nil {
			return err
		}
		return f.FormatPlan(plan)
	})
}

func runPlanDelete(cmd *cobra.Command, args []string) error {
	id, err := parsePlanID(args[0])
	if err != nil {
		return err
	}
	return withStore(cmd.Context(), func(store lessonplan.Store) error {
		if err := store.Delete(cmd.Context(), session, id); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %d\n", id)
		return nil
	})
}

func runPlanExport(cmd *cobra.Command, args []string) error {
	return withStore(cmd.Context(), func(store lessonplan.Store) error {
		plans, err := store.List(cmd.Context(), session)
		if err != nil {
			return fmt.Errorf("failed to list plans: %w", err)
		}
		if err := formatter.NewMultiFileFormatter(outputDir, format).Format(plans); err != nil {
			return fmt.Errorf("failed to export plans: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d plans to %s\n", len(plans), outputDir)
		return nil
	})
}
