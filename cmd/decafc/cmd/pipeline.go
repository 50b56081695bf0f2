package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-decaf/decafc/internal/ast"
	"github.com/go-decaf/decafc/internal/cfg"
	"github.com/go-decaf/decafc/internal/config"
	"github.com/go-decaf/decafc/internal/errors"
	"github.com/go-decaf/decafc/internal/lexer"
	"github.com/go-decaf/decafc/internal/parser"
	"github.com/go-decaf/decafc/internal/printer"
	"github.com/go-decaf/decafc/internal/semantic"
	"github.com/go-decaf/decafc/internal/tac"
)

// errSilent signals "exit 1, diagnostics already written" to main
// without cobra re-printing a usage error.
var errSilent = fmt.Errorf("")

// runPipeline is the single entry point: it runs exactly as
// many pipeline stages as --target requires, stopping at the first
// stage that reports errors ("each stage runs to completion
// before the next").
func runPipeline(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfgFile, err := config.Load(filepath.Dir(inputPath))
	if err != nil {
		return fmt.Errorf("reading %s: %w", config.FileName, err)
	}
	merged := config.Merge(cfgFile, targetFlag, debugFlag, outputFlag, irFlag,
		cmd.Flags().Changed("target"), cmd.Flags().Changed("debug"),
		cmd.Flags().Changed("output"), cmd.Flags().Changed("ir"))

	target := merged.Target
	if target == "" {
		target = "scan"
	}
	switch target {
	case "scan", "parse", "inter", "assembly":
	default:
		return fmt.Errorf("unknown --target %q: must be one of scan, parse, inter, assembly", target)
	}

	ir := merged.IR
	if ir == "" {
		ir = "cfg"
	}

	contentBytes, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}
	source := string(contentBytes)

	out, closeOut, err := openOutput(merged.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "decafc: target=%s input=%s\n", target, inputPath)
	}

	l := lexer.New(source)
	tokens, lexErrs := l.ScanAll()

	if target == "scan" {
		for _, t := range tokens {
			fmt.Fprintln(out, t.Listing())
		}
		if len(lexErrs) > 0 {
			for _, e := range lexErrs {
				fmt.Fprintln(out, e.String())
			}
			return errSilent
		}
		return nil
	}

	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintln(out, e.String())
		}
		return errSilent
	}

	p := parser.New(tokens, source, inputPath)
	prog, parseErrs := p.Parse()
	if !parseErrs.Empty() {
		writeErrorList(out, parseErrs)
		return errSilent
	}

	if target == "parse" {
		if merged.Debug {
			pp := printer.New(printer.Options{})
			fmt.Fprint(out, pp.Print(prog))
		}
		return nil
	}

	semErrs := semantic.Check(prog, source, inputPath)
	if !semErrs.Empty() {
		writeErrorList(out, semErrs)
		return errSilent
	}

	if target == "inter" {
		return nil
	}

	// CFG/TAC only run on semantically valid programs; the semantic
	// check above already enforced that.
	graphs := cfg.Build(prog)
	if merged.Debug {
		if ir == "cfg" || ir == "both" {
			dumpProgramGraph(out, prog, graphs)
		}
		if ir == "tac" || ir == "both" {
			dumpTAC(out, prog, tac.Build(prog, graphs))
		}
	}
	return nil
}

func writeErrorList(w io.Writer, list *errors.List) {
	for _, line := range list.Lines() {
		fmt.Fprintln(w, line)
	}
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

// dumpProgramGraph renders one arena listing per method, in declaration
// order (matching the original compiler's IR dump ordering).
func dumpProgramGraph(w io.Writer, prog *ast.Program, graphs cfg.ProgramGraph) {
	for _, m := range prog.Methods {
		g, ok := graphs[m.Name.Name]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "method %s:\n", m.Name.Name)
		for idx, blk := range g.Nodes {
			fmt.Fprintf(w, "  [%d] %s\n", idx, blockString(blk))
		}
		fmt.Fprintf(w, "  start=%d end=%d\n", g.Start, g.End)
	}
}

func blockString(blk cfg.Block) string {
	switch b := blk.(type) {
	case *cfg.Decl:
		names := make([]string, 0, len(b.Decls))
		for _, f := range b.Decls {
			names = append(names, f.TypeName)
		}
		return fmt.Sprintf("Decl(%s) -> %d", strings.Join(names, ","), b.Next)
	case *cfg.Basic:
		return fmt.Sprintf("Basic(%d stmt) -> %d", len(b.Statements), b.Next)
	case *cfg.Condition:
		return fmt.Sprintf("Condition -> true:%d false:%d", b.True, b.False)
	case *cfg.NoOp:
		return fmt.Sprintf("NoOp -> %d", b.Next)
	default:
		return "?"
	}
}

// dumpTAC renders each method's linearized instruction stream, one
// mnemonic per line, in declaration order.
func dumpTAC(w io.Writer, prog *ast.Program, ir *tac.Program) {
	for _, m := range prog.Methods {
		instrs, ok := ir.Methods[m.Name.Name]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "method %s:\n", m.Name.Name)
		for _, instr := range instrs {
			fmt.Fprintf(w, "  %s\n", tacString(instr))
		}
	}
}

func tacString(instr tac.Instruction) string {
	switch i := instr.(type) {
	case *tac.Binary:
		return fmt.Sprintf("t%d = t%d op%d t%d", i.Target, i.V1, i.Op, i.V2)
	case *tac.Unary:
		return fmt.Sprintf("t%d = op%d t%d", i.Target, i.Op, i.V)
	case *tac.Push:
		return fmt.Sprintf("push t%d", i.V)
	case *tac.Array:
		return fmt.Sprintf("t%d <op%d> t%d[t%d]", i.Target, i.Op, i.V, i.Index)
	case *tac.Call:
		return fmt.Sprintf("call %s, %d", i.Func, i.ParamCount)
	case *tac.Ret:
		return "ret"
	case *tac.Flow:
		if i.Op == tac.Label {
			return fmt.Sprintf("L%d:", i.Label)
		}
		if i.Cond != nil {
			return fmt.Sprintf("if_false t%d goto L%d", *i.Cond, i.Label)
		}
		return fmt.Sprintf("goto L%d", i.Label)
	default:
		return "?"
	}
}
