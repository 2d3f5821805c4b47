package cli

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cidrcalc/cidrcalc/pkg/eval"
	"github.com/cidrcalc/cidrcalc/pkg/format"
	"github.com/cidrcalc/cidrcalc/pkg/parser"
	"github.com/cidrcalc/cidrcalc/pkg/scope"
	"github.com/cidrcalc/cidrcalc/pkg/value"
)

// ReplCmd starts an interactive session: one statement per line of
// standard input, against a scope that persists across lines.
type ReplCmd struct{}

// interruptError signals that the session ended because of a delivered
// interrupt rather than end-of-input.
type interruptError struct{}

func (interruptError) Error() string { return "interrupted" }

// Run implements interactive mode over stdin/stdout. "/s" prints the
// current scope's bound names; any other line is parsed and evaluated as
// a single statement. Evaluation errors are printed and the session
// continues; end-of-input exits cleanly; an interrupt is reported as an
// error so Main exits nonzero.
func (cmd *ReplCmd) Run(ctx *Context) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT)
	defer signal.Stop(sigCh)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	var history *os.File
	if ctx.Config.HistoryFile != "" {
		f, err := os.OpenFile(ctx.Config.HistoryFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			ctx.Logger.Error("failed to open history file", "path", ctx.Config.HistoryFile, "error", err)
		} else {
			history = f
			defer history.Close()
		}
	}

	s := scope.Scope{}
	for {
		select {
		case <-sigCh:
			return interruptError{}
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			s = cmd.evalLine(ctx, s, line, history)
		}
	}
}

func (cmd *ReplCmd) evalLine(ctx *Context, s scope.Scope, line string, history *os.File) scope.Scope {
	if history != nil {
		fmt.Fprintln(history, line)
	}

	if strings.HasPrefix(line, "/s") {
		fmt.Println(strings.Join(s.Keys(), ", "))
		return s
	}

	stmt, err := parser.ParseSingle(line)
	if err != nil {
		printDiagnostic(err)
		ctx.Logger.Error("parse error", "line", line, "error", err)
		return s
	}

	start := time.Now()
	v, next, err := eval.Eval(stmt, s)
	ctx.Logger.Debug("evaluated statement",
		"let", stmt.Kind == parser.StmtLet,
		"elapsed", time.Since(start))
	if err != nil {
		printDiagnostic(err)
		ctx.Logger.Error("evaluation error", "line", line, "error", err)
		return s
	}

	if v.Kind != value.Unit {
		printIndentedBlocks(v, ctx.Config.Indent)
	}
	return next
}

// printDiagnostic prints the two-line error diagnostic interactive mode
// requires on a failing statement.
func printDiagnostic(err error) {
	fmt.Fprintln(os.Stderr, "error:")
	fmt.Fprintln(os.Stderr, err.Error())
}

func printIndentedBlocks(v value.Value, indent string) {
	fmt.Println("[")
	for _, b := range v.Blocks() {
		fmt.Printf("%s%s\n", indent, format.Block(b))
	}
	fmt.Println("]")
}
