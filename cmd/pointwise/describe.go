package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fractalqb/pointwise"
)

func init() {
	describeCmd.RunE = describe
	describeCmd.Flags().BoolVarP(&describeCmd.negate, "negate", "n", false,
		"Describe the negated expectation")
	rootCmd.AddCommand(&describeCmd.Command)
}

var describeCmd = struct {
	cobra.Command
	negate bool
}{
	Command: cobra.Command{
		Use:   "describe",
		Short: "Describe what subjects are expected to satisfy",
		Args:  cobra.NoArgs,
	},
}

func describe(cmd *cobra.Command, _ []string) error {
	m, err := loadMatcher(rootCmd.reffile, rootCmd.pred)
	if err != nil {
		return err
	}
	r := pointwise.Matches
	if describeCmd.negate {
		r = pointwise.DoesNotMatch
	}
	fmt.Fprintln(cmd.OutOrStdout(), m.Describe(r))
	return nil
}
