package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newOutdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outdir <dir>",
		Short: "Check that a directory accepts new files and select it as output",
		Long: `outdir stores the directory part of <dir> and probes it by creating and
removing the file <dir>tmp. Pass the directory with a trailing separator.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			sys, err := systemFrom(cmd)
			if err != nil {
				return err
			}
			dir := argv[0]
			if !strings.HasSuffix(dir, "/") && !strings.HasSuffix(dir, "\\") {
				sys.Log.Warningf("output directory has no trailing separator: %s", dir)
			}
			if err := sys.SetOutputDirectory(cmd.Context(), dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "output directory: %s\n", sys.OutputDirectory())
			return nil
		},
	}
}
