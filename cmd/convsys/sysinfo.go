package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"convsys/internal/system"
)

func newSysinfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sysinfo",
		Short: "Show the session state: working and output directories, free memory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sys, err := systemFrom(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "working dir: %s\n", sys.CurDir())
			fmt.Fprintf(out, "output dir:  %s\n", valueOrUnknown(sys.OutputDirectory()))
			fmt.Fprintf(out, "axis swap:   %t\n", sys.HasAxisSwap())
			fmt.Fprintf(out, "quiet:       %t\n", sys.Log.Silent())
			fmt.Fprintf(out, "arguments:   %s\n", sys.Args.String())
			fmt.Fprintf(out, "free memory: %s\n", formatBytes(system.AvailableRAM()))
			return nil
		},
	}
}

func formatBytes(n uint64) string {
	if n == 0 {
		return "unknown"
	}
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
