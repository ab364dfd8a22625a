// Package ai holds the `nexus ai` subcommands backed by the advisor
package ai

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/nexus/internal/advisor"
	"github.com/thenoetrevino/nexus/internal/cli"
)

var (
	errNoInsights = errors.New("the AI advisor could not produce insights")
	errEmptyTitle = errors.New("a task title is required")
)

// AICmd returns the ai parent command
func AICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai",
		Short: "Ask the AI advisor about the board",
		Long: `Ask the AI advisor for board insights or a task description draft.

The advisor needs an API key in GEMINI_API_KEY (or API_KEY).`,
	}
	cmd.AddCommand(InsightsCmd())
	cmd.AddCommand(DescribeCmd())
	return cmd
}

// InsightsCmd returns the ai insights subcommand
func InsightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Summarize board health, risks, and next steps",
		RunE:  runInsights,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// DescribeCmd returns the ai describe subcommand
func DescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <title>",
		Short: "Draft a task description for a title",
		Long: `Draft a bullet-point description for a task title. Nothing is saved;
use 'nexus task create --generate' to store the draft with a new task.

Examples:
  nexus ai describe "Implement OAuth Login"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runDescribe,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

type insightsResult struct {
	*advisor.Insights
	TaskCount int `json:"taskCount"`
}

func runInsights(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer closeCLI(cliInstance)

	tasks, err := cliInstance.App.TaskService.Tasks(ctx)
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	insights := cliInstance.App.Advisor.ProjectInsights(ctx, tasks)
	if insights == nil {
		suggestion := "Try again later"
		if !cliInstance.App.Advisor.Available() {
			suggestion = "Set GEMINI_API_KEY to enable the advisor"
		}
		return formatter.Fail(cli.ExitError, "AI_UNAVAILABLE", errNoInsights, suggestion)
	}

	result := insightsResult{Insights: insights, TaskCount: len(tasks)}
	return formatter.Success(result, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, cli.RenderMarkdown(InsightsMarkdown(insights), 80))
		return err
	})
}

// InsightsMarkdown formats insights as a markdown report
func InsightsMarkdown(in *advisor.Insights) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Project health: %.0f/100\n\n", in.HealthScore)
	if in.Summary != "" {
		b.WriteString(in.Summary + "\n\n")
	}
	list := func(heading string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString("## " + heading + "\n\n")
		for _, item := range items {
			b.WriteString("- " + item + "\n")
		}
		b.WriteString("\n")
	}
	list("Risks", in.Risks)
	list("Recommendations", in.Recommendations)
	return strings.TrimSpace(b.String())
}

type describeResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Generated   bool   `json:"generated"`
}

func runDescribe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return formatter.Fail(cli.ExitUsage, "MISSING_ARGUMENT", errEmptyTitle, "")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer closeCLI(cliInstance)

	description := cliInstance.App.Advisor.GenerateTaskDescription(ctx, title)
	result := describeResult{
		Title:       title,
		Description: description,
		Generated:   description != advisor.DescriptionFallback,
	}

	return formatter.Success(result, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, cli.RenderMarkdown(description, 80))
		return err
	})
}

func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}
