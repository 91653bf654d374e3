package main

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fractalqb/pointwise"
)

func init() {
	compareCmd.RunE = checkFiles
	rootCmd.AddCommand(&compareCmd)
}

var errMismatch = errors.New("subjects do not match the reference")

var compareCmd = cobra.Command{
	Use:   "compare [subject files]",
	Short: "Compare subject files to the reference, stdin if no file is given",
}

func checkFiles(cmd *cobra.Command, files []string) error {
	m, err := loadMatcher(rootCmd.reffile, rootCmd.pred)
	if err != nil {
		return err
	}
	ok := true
	if len(files) == 0 {
		ok = checkRd(m, "stdin", os.Stdin)
	}
	for _, f := range files {
		if !checkFile(m, f) {
			ok = false
		}
	}
	if !ok {
		return errMismatch
	}
	return nil
}

func checkFile(m *pointwise.Positional[pointwise.Value], subj string) bool {
	sr, err := os.Open(subj)
	if err != nil {
		log.Println(err)
		return false
	}
	defer sr.Close()
	return checkRd(m, subj, sr)
}

func checkRd(m *pointwise.Positional[pointwise.Value], sname string, subj io.Reader) bool {
	vals, err := pointwise.ReadValues(subj)
	if err != nil {
		log.Printf("%s: %s", sname, err)
		return false
	}
	if err = pointwise.Verify(sname, pointwise.ParseValues(vals), m); err != nil {
		log.Printf("%s mismatch with %s:\n%s", sname, rootCmd.reffile, err)
		return false
	}
	log.Printf("%s matches reference %s\n", sname, rootCmd.reffile)
	return true
}
