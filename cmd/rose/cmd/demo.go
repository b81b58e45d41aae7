package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roselang/rose/internal/demo"
	"github.com/roselang/rose/internal/eval"
)

var demoCmd = &cobra.Command{
	Use:   "demo [name]",
	Short: "Evaluate one of the bundled example programs",
	Long: `demo evaluates one of a small set of hand-built Rose programs and
prints its output. This module has no lexer or parser, so demo
programs are built directly as ASTs rather than loaded from a file.

Run "rose demo" with no arguments to list the available programs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		listDemos(cmd)
		return nil
	}

	name := args[0]
	program, ok := demo.Lookup(name)
	if !ok {
		listDemos(cmd)
		return fmt.Errorf("unknown demo %q", name)
	}

	ev := eval.New(cmd.OutOrStdout(), os.Stdin)
	outcome := ev.Eval(program.Build())
	for _, e := range outcome.Errors {
		fmt.Fprintln(cmd.ErrOrStderr(), e)
	}
	if outcome.ExitCode != 0 {
		os.Exit(outcome.ExitCode)
	}
	return nil
}

func listDemos(cmd *cobra.Command) {
	names := make([]string, len(demo.Programs))
	for i, p := range demo.Programs {
		names[i] = fmt.Sprintf("  %-12s %s", p.Name, p.Description)
	}
	sort.Strings(names)
	fmt.Fprintln(cmd.OutOrStdout(), "available demos:")
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
}
