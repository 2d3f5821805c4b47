package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cidrcalc/cidrcalc/pkg/eval"
	"github.com/cidrcalc/cidrcalc/pkg/format"
	"github.com/cidrcalc/cidrcalc/pkg/parser"
	"github.com/cidrcalc/cidrcalc/pkg/scope"
	"github.com/cidrcalc/cidrcalc/pkg/value"
)

// RunCmd evaluates a script file in batch mode: parse every statement,
// evaluate in source order, and for each non-unit result print one line
// of comma-separated canonical blocks enclosed in "[...]".
type RunCmd struct {
	File string `arg:"" type:"existingfile" help:"Path to a script file."`
}

// Run implements batch mode. Read, parse and evaluation errors are
// returned; Main reports them to standard error and exits nonzero.
func (cmd *RunCmd) Run(ctx *Context) error {
	src, err := os.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cmd.File, err)
	}

	stmts, err := parser.ParseProgram(string(src))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", cmd.File, err)
	}

	s := scope.Scope{}
	for i, stmt := range stmts {
		start := time.Now()
		v, next, err := eval.Eval(stmt, s)
		ctx.Logger.Debug("evaluated statement",
			"index", i,
			"let", stmt.Kind == parser.StmtLet,
			"elapsed", time.Since(start))
		if err != nil {
			return fmt.Errorf("statement %d: %w", i+1, err)
		}
		s = next

		if v.Kind != value.Unit {
			fmt.Println(inlineBlocks(v))
		}
	}
	return nil
}

// inlineBlocks renders a set value as "[b1, b2, b3]", the batch-mode line
// format.
func inlineBlocks(v value.Value) string {
	blocks := v.Blocks()
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = format.Block(b)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
