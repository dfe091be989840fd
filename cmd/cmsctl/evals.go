package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/olgasafonova/headless-cms-mcp-server/evals"
	"github.com/olgasafonova/headless-cms-mcp-server/tools"
)

// newEvalsCmd reports on the tool selection suites and checks them against
// the registered tool definitions. Scoring an LLM needs a ToolSelector
// harness and is done through the evals package.
func newEvalsCmd() *cobra.Command {
	var dir string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "evals",
		Short: "Check tool selection eval suites against the tool definitions",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			selection, pairs, err := evals.LoadAll(dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cyan := color.New(color.FgCyan)
			cyan.Fprintf(out, "Tool Selection Suite: %s (v%s)\n", selection.Name, selection.Version)
			fmt.Fprintf(out, "Total Tests: %d\n", len(selection.Tests))

			byTool := make(map[string]int)
			for _, test := range selection.Tests {
				byTool[test.ExpectedTool]++
			}
			names := make([]string, 0, len(byTool))
			for name := range byTool {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(out, "  %-25s: %d\n", name, byTool[name])
			}

			cyan.Fprintf(out, "\nConfusion Pair Suite: %s (v%s)\n", pairs.Name, pairs.Version)
			for _, pair := range pairs.Pairs {
				fmt.Fprintf(out, "  %-20s: %d tests\n", pair.ID, len(pair.Tests))
				if verbose {
					fmt.Fprintf(out, "    %s\n", pair.Disambiguation)
				}
			}

			problems := evals.CheckSuites(selection, pairs, tools.AllTools)
			if len(problems) > 0 {
				red := color.New(color.FgRed)
				red.Fprintln(out, "\nProblems:")
				for _, p := range problems {
					red.Fprintf(out, "  - %s\n", p)
				}
				return fmt.Errorf("%d problems in eval suites", len(problems))
			}
			color.New(color.FgGreen).Fprintln(out, "\nAll suites match the tool definitions")
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "./evals", "Directory containing eval JSON files")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show disambiguation notes")
	return cmd
}
