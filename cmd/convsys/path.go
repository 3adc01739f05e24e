package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"convsys/internal/pathutil"
)

type pathOp struct {
	use   string
	short string
	fn    func(string) string
}

var pathOps = []pathOp{
	{"fix", "Canonicalize separators and fold parent steps", pathutil.FixPath},
	{"dir", "Print the directory part including the trailing separator", pathutil.FileDirectory},
	{"name", "Print the file name of the normalized path", pathutil.Filename},
	{"stem", "Strip everything after the last dot", pathutil.RemoveFileEnding},
}

func newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Path string helpers (no filesystem access)",
	}
	for _, op := range pathOps {
		cmd.AddCommand(newPathOpCmd(op))
	}
	return cmd
}

func newPathOpCmd(op pathOp) *cobra.Command {
	return &cobra.Command{
		Use:   op.use + " <path>...",
		Short: op.short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, paths []string) error {
			sys, err := systemFrom(cmd)
			if err != nil {
				return err
			}
			for _, p := range paths {
				out := op.fn(p)
				if op.use == "stem" && out == p {
					sys.Log.Infof("path has no file ending: %s", p)
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
}
