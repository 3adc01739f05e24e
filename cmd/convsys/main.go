package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"convsys/internal/config"
	"convsys/internal/version"
)

// main runs the CLI and exits with status 1 on any error.
func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs one command line and always finishes the session, so the
// summary and the diagnostic dump are written even when the command fails.
func execute(argv []string, stdout, stderr io.Writer) error {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if ferr := a.finish(err); ferr != nil {
		fmt.Fprintf(stderr, "convsys: %v\n", ferr)
		if err == nil {
			err = ferr
		}
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "convsys",
		Short:         "Conversion toolkit process utilities",
		Long:          `convsys normalizes paths, validates output directories, applies axis swaps and reports diagnostics`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	// Глобальные флаги
	flags := root.PersistentFlags()
	flags.String("color", "auto", "colorize diagnostics (auto|on|off)")
	flags.Bool("quiet", false, "silence warnings and infos (errors are always shown)")
	flags.Bool("errpause", false, "wait for Enter after every error")
	flags.String("config", "", "path to "+config.FileName+" (default: search upward from the working directory)")
	flags.Int("threshold", 0, "repeat count at which identical messages stop being shown (0 = config/default)")
	flags.Bool("summary", false, "list all recorded diagnostics with their counts at exit")
	flags.String("diag-dump", "", "write recorded diagnostics to a msgpack file at exit")
	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|process|component|debug)")
	flags.String("trace-mode", "stream", "trace storage (stream|ring|both)")

	root.AddCommand(newPathCmd())
	root.AddCommand(newOutdirCmd())
	root.AddCommand(newAxisCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newSysinfoCmd())
	root.AddCommand(newVersionCmd())
	return root
}
