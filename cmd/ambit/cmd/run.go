package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ambitlang/ambit/internal/interpreter"
	"github.com/ambitlang/ambit/internal/lexer"
	"github.com/ambitlang/ambit/internal/parser"
	"github.com/ambitlang/ambit/internal/pipeline"
	"github.com/ambitlang/ambit/internal/prettyprinter"
)

var dumpAST bool

// stdout/stderr are indirected through package vars so tests can capture
// them without touching the real process streams.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run an Ambit source file",
	Long: `Execute an Ambit program from a file or from stdin.

Examples:
  ambit run program.amb
  cat program.amb | ambit run
  ambit run --dump-ast program.amb`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST instead of running it")
}

func runScript(_ *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	ctx := pipeline.NewPipelineContext(source)
	if len(args) == 1 {
		ctx.FilePath = args[0]
	}

	stages := []pipeline.Processor{&lexer.LexerProcessor{}, &parser.Processor{}}
	if !dumpAST {
		stages = append(stages, &interpreter.Processor{})
	}
	pl := pipeline.New(stages...)
	ctx = pl.Run(ctx)

	if dumpAST && ctx.AstRoot != nil {
		printer := prettyprinter.NewTreePrinter()
		ctx.AstRoot.Accept(printer)
		fmt.Fprint(stdout, printer.String())
	} else {
		fmt.Fprint(stdout, ctx.Trace)
	}

	if len(ctx.Diagnostics) > 0 {
		for _, d := range ctx.Diagnostics {
			fmt.Fprintln(stderr, d.Error())
		}
		return fmt.Errorf("execution failed with %d diagnostic(s)", len(ctx.Diagnostics))
	}
	return nil
}

func readSource(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), nil
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", fmt.Errorf("provide a file path or pipe source from stdin")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
