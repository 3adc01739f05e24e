package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newAxisCmd() *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "axis [a1,a2]...",
		Short: "Compose axis swaps and print the resulting transform",
		Long: `axis composes the swaps from the config file and the arguments, in that
order, and prints the 4x4 transform. Axes are 0 (x), 1 (y) and 2 (z).`,
		RunE: func(cmd *cobra.Command, argv []string) error {
			sys, err := systemFrom(cmd)
			if err != nil {
				return err
			}
			pairs := make([][2]int, 0, len(argv))
			for _, a := range argv {
				p, err := parseSwap(a)
				if err != nil {
					return err
				}
				pairs = append(pairs, p)
			}
			if reset {
				sys.Axis.Reset()
			}
			for _, p := range pairs {
				sys.SetAxisSwap(cmd.Context(), p[0], p[1])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, sys.AxisSwap())
			fmt.Fprintf(out, "axis swap: %t\n", sys.HasAxisSwap())
			return nil
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "ignore swaps from the config file")
	return cmd
}

// parseSwap reads "a1,a2" and validates both indices.
func parseSwap(s string) ([2]int, error) {
	first, second, ok := strings.Cut(s, ",")
	if !ok {
		return [2]int{}, fmt.Errorf("invalid swap %q (expected a1,a2)", s)
	}
	var p [2]int
	for i, part := range []string{first, second} {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v < 0 || v > 2 {
			return [2]int{}, fmt.Errorf("invalid swap %q: axis must be 0, 1 or 2", s)
		}
		p[i] = v
	}
	if p[0] == p[1] {
		return [2]int{}, fmt.Errorf("invalid swap %q: axes must differ", s)
	}
	return p, nil
}
