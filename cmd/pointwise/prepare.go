package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/fractalqb/pointwise"
)

func init() {
	prepareCmd.Run = prepareFiles
	prepareCmd.Flags().StringVarP(
		&prepareCmd.suffix,
		"suffix", "s",
		prepareCmd.suffix,
		"Set file suffix for created reference files")
	prepareCmd.Flags().BoolVarP(
		&prepareCmd.force,
		"force", "f",
		prepareCmd.force,
		"Force to overwrite existing reference files")
	rootCmd.AddCommand(&prepareCmd.Command)
}

var prepareCmd = struct {
	cobra.Command
	suffix string
	force  bool
}{
	Command: cobra.Command{
		Use:   "prepare [files]",
		Short: "Prepare reference files from subject files",
	},
	suffix: ".ref",
	force:  false,
}

func prepareFiles(cmd *cobra.Command, files []string) {
	if len(files) == 0 {
		if err := pointwise.PrepareValues(os.Stdout, os.Stdin); err != nil {
			log.Fatal(err)
		}
		return
	}
	for _, f := range files {
		prepareFile(f)
	}
}

func prepareFile(name string) {
	reffile := name + prepareCmd.suffix
	if _, err := os.Stat(reffile); !os.IsNotExist(err) {
		if !prepareCmd.force {
			log.Fatalf("%s already exists", reffile)
		}
	}
	rd, err := os.Open(name)
	if err != nil {
		log.Fatal(err)
	}
	defer rd.Close()
	wr, err := os.Create(reffile)
	if err != nil {
		log.Fatal(err)
	}
	defer wr.Close()
	if err = pointwise.PrepareValues(wr, rd); err != nil {
		log.Fatal(err)
	}
}
