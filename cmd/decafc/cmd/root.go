// Package cmd wires decafc's single cobra root command. Rather than a
// subcommand per stage (lex, parse, run, fmt, compile), decafc exposes
// one flag-driven entry point and lets --target pick the stage.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	targetFlag string
	debugFlag  bool
	outputFlag string
	irFlag     string
)

var rootCmd = &cobra.Command{
	Use:   "decafc --target {scan|parse|inter|assembly} [--debug] [-o path] <input>",
	Short: "decafc compiles a decaf-like source file through scan, parse, check, and IR stages",
	Long: `decafc is the front-end driver for a small statically-typed imperative
language: it scans, parses, semantically checks, and lowers to a
control-flow graph and three-address code, stopping at whichever
pipeline stage --target selects.`,
	Version:       Version,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPipeline,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVar(&targetFlag, "target", "", "pipeline stage to run: scan, parse, inter, assembly")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "print the AST after parse, or a ProgramGraph dump after assembly")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "write output to path instead of stdout")
	rootCmd.Flags().StringVar(&irFlag, "ir", "", "assembly target only: cfg, tac, or both (default cfg)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose progress output")
}
