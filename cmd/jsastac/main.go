// Command jsastac is the ahead-of-time compiler's CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nanov/jsasta/internal/driver"
)

var rootCmd = &cobra.Command{
	Use:   "jsastac <input>",
	Short: "Ahead-of-time compiler with monomorphization to LLVM-style IR",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func main() {
	rootCmd.Flags().StringP("output", "o", "output.ll", "output IR path")
	rootCmd.Flags().BoolP("debug", "g", false, "emit source-location debug info")
	rootCmd.Flags().BoolP("debug-mode", "d", false, "enable runtime assertion built-ins")
	rootCmd.Flags().BoolP("verbose", "v", false, "verbose progress output")
	rootCmd.Flags().BoolP("quiet", "q", false, "suppress non-error progress output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCompile(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	dbg, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return err
	}
	dbgMode, err := cmd.Flags().GetBool("debug-mode")
	if err != nil {
		return err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}
	if verbose && quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}

	opts := driver.Options{
		InputPath:  args[0],
		OutputPath: output,
		Debug:      dbg,
		DebugMode:  dbgMode,
		Verbose:    verbose,
		Quiet:      quiet,
		UseColor:   isTerminal(os.Stdout) && !quiet,
	}

	if manifest, merr := driver.LoadManifest("."); merr == nil && manifest != nil {
		explicit := map[string]bool{
			"output":     cmd.Flags().Changed("output"),
			"debug":      cmd.Flags().Changed("debug"),
			"debug-mode": cmd.Flags().Changed("debug-mode"),
		}
		opts = driver.ApplyManifest(opts, manifest, explicit)
	}

	res := driver.Run(opts, os.Stdout, os.Stderr)
	if err := driver.WriteOutput(opts, res); err != nil {
		return fmt.Errorf("writing %s: %w", opts.OutputPath, err)
	}

	if res.ExitCode != driver.ExitSuccess {
		os.Exit(int(res.ExitCode))
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
