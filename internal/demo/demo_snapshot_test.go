package demo_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/roselang/rose/internal/demo"
	"github.com/roselang/rose/internal/eval"
)

// TestDemoProgramsMatchSnapshot runs each bundled demo program end to
// end (type-check plus evaluation) and snapshots its stdout plus exit
// code, the same before/after pair a reader of spec.md §8 would expect.
func TestDemoProgramsMatchSnapshot(t *testing.T) {
	for _, program := range demo.Programs {
		program := program
		t.Run(program.Name, func(t *testing.T) {
			var buf bytes.Buffer
			ev := eval.New(&buf, strings.NewReader(""))
			outcome := ev.Eval(program.Build())

			snapshot := fmt.Sprintf("exit=%d\nstdout=%s\nerrors=%v",
				outcome.ExitCode, buf.String(), outcome.Errors)
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", program.Name), snapshot)
		})
	}
}
