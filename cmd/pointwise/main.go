// A command line tool to match value files element by element
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fractalqb/pointwise"
)

var rootCmd = struct {
	cobra.Command
	reffile string
	pred    string
}{
	Command: cobra.Command{
		Use:   "pointwise",
		Short: "Match value files element by element",
		Long: fmt.Sprintf(`Match value files element by element

A value file has one value per line. Values compare as numbers when both
parse as numbers and as strings otherwise. Each line of a subject file is
checked with the predicate against the same line of the reference file and
both files must have the same number of lines.

Predicates:
   %s
`, strings.Join(pointwise.PredicateNames(), ", ")),
		SilenceUsage:  true,
		SilenceErrors: true,
	},
	pred: pointwise.PredEq,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootCmd.reffile, "reference", "r", "",
		"Set reference file name")
	rootCmd.PersistentFlags().StringVarP(&rootCmd.pred, "predicate", "p", rootCmd.pred,
		"Set the predicate applied to each reference value")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errMismatch) {
			log.Println(err)
		}
		os.Exit(1)
	}
}
