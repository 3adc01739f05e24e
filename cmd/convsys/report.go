package main

import (
	"github.com/spf13/cobra"

	"convsys/internal/diag"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <dump>",
		Short: "List the diagnostics stored in a --diag-dump file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			sys, err := systemFrom(cmd)
			if err != nil {
				return err
			}
			snap, err := diag.LoadSnapshot(argv[0])
			if err != nil {
				sys.Log.Errorf("cannot read diagnostic dump %s", argv[0])
				return err
			}
			sys.Log.Restore(snap)
			sys.Log.DisplayAll()
			return nil
		},
	}
}
