package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srediag/atomicint/pkg/atomicint"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the kinds of this build and how each is implemented",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, k := range atomicint.Kinds() {
				fmt.Fprintln(out, k)
			}
			fmt.Fprintf(out, "signal safe: %t, lock table: %d\n", atomicint.SignalSafe, atomicint.LockTableSize)
		},
	}
}
