// Package pwtest supports the use of pointwise matchers in your Go tests.
//
// Example:
//
//	func TestBounds(t *testing.T) {
//		got := []int{1, 2, 3}
//		pwtest.Error(t, "got", got, pointwise.Pointwise(pointwise.Le[int], []int{1, 3, 3}))
//	}
//
// A failing check reports:
//
//	Value of: got
//	Expected: has elements satisfying respectively:
//	  0. is less than or equal to 1
//	  1. is less than or equal to 1
//	  2. is less than or equal to 3
//	Actual: [1 2 3], where element #1 is 2, which is greater than 1
//
// Reference reads the expected values of a test from testdata/<TestName>.ref,
// one value per line:
//
//	func TestLatencies(t *testing.T) {
//		pwtest.Reference(t, "", measure(), pointwise.PredLe)
//	}
package pwtest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/fractalqb/pointwise"
)

// When this environment variable is set to a non-empty value, checks also
// log the description of passing values.
const VerboseEnv = "PWTEST_VERBOSE"

// When this environment variable is set to a regexp and the name of the
// current test matches, Reference records the values as new reference
// file instead of comparing them. E.g.
//
//	PWTEST_RECORD=TestLatencies go test .
const RecordEnv = "PWTEST_RECORD"

// GoTestdataDir is the name of Go's default directory for testdata (see go
// help test).
const GoTestdataDir = "testdata"

// Error checks actual with m and reports a mismatch with t.Error. It
// returns the reported error, if any.
func Error[T any](t testing.TB, expr string, actual T, m pointwise.Matcher[T]) error {
	t.Helper()
	return check(defaultConfig, t, expr, actual, m, false)
}

// Fatal is like Error but stops the test with t.Fatal.
func Fatal[T any](t testing.TB, expr string, actual T, m pointwise.Matcher[T]) {
	t.Helper()
	check(defaultConfig, t, expr, actual, m, true)
}

// Elements checks that actual has exactly the expected elements in order
// and reports a mismatch with t.Error.
func Elements[T comparable](t testing.TB, expr string, actual []T, expected ...T) error {
	t.Helper()
	return check(defaultConfig, t, expr, actual, pointwise.Pointwise(pointwise.Eq[T], expected), false)
}

// Reference checks values against the reference file of the test. The
// reference values are the bounds for the predicate named pred, see
// pointwise.Named.
func Reference(t testing.TB, hint string, values []string, pred string) error {
	t.Helper()
	return CheckReference(defaultConfig, t, hint, values, pred)
}

// RefRepo locates reference files in Dir. Without a hint the file is named
// after the test. With a hint it is named after the hint in a directory
// named after the test.
type RefRepo struct {
	Dir    string
	Suffix string
}

const (
	StdSuffix = ".ref"
	NoSuffix  = "\x00"
)

func (rr RefRepo) Filename(t testing.TB, hint string) string {
	suffix := rr.Suffix
	switch suffix {
	case "":
		suffix = StdSuffix
	case NoSuffix:
		suffix = ""
	}
	if hint == "" {
		return filepath.Join(rr.Dir, t.Name()+suffix)
	}
	if suffix == "" || strings.HasSuffix(hint, suffix) {
		return filepath.Join(rr.Dir, t.Name(), hint)
	}
	return filepath.Join(rr.Dir, t.Name(), hint+suffix)
}

type Config struct {
	// Prefix is put in front of every reported message
	Prefix string
	// LogPass logs the description of values that matched
	LogPass bool
	// RefFileName locates reference files, nil uses testdata
	RefFileName func(t testing.TB, hint string) string
	// RecordOverwrite allows recording to replace existing reference files
	RecordOverwrite bool
}

var defaultConfig = Config{
	LogPass:     os.Getenv(VerboseEnv) != "",
	RefFileName: RefRepo{Dir: GoTestdataDir}.Filename,
}

func (cfg Config) refFile(t testing.TB, hint string) string {
	if cfg.RefFileName == nil {
		return RefRepo{Dir: GoTestdataDir}.Filename(t, hint)
	}
	return cfg.RefFileName(t, hint)
}

// Check checks actual with m using cfg and reports a mismatch with t.Error.
func Check[T any](cfg Config, t testing.TB, expr string, actual T, m pointwise.Matcher[T]) error {
	t.Helper()
	return check(cfg, t, expr, actual, m, false)
}

// Require is like Check but stops the test with t.Fatal.
func Require[T any](cfg Config, t testing.TB, expr string, actual T, m pointwise.Matcher[T]) {
	t.Helper()
	check(cfg, t, expr, actual, m, true)
}

func check[T any](cfg Config, t testing.TB, expr string, actual T, m pointwise.Matcher[T], fatal bool) error {
	t.Helper()
	err := pointwise.Verify(expr, actual, m)
	if err == nil {
		if cfg.LogPass {
			t.Logf("%s%s %s", cfg.Prefix, expr, m.Describe(pointwise.Matches))
		}
		return nil
	}
	if fatal {
		t.Fatalf("%s%s", cfg.Prefix, err)
	} else {
		t.Errorf("%s%s", cfg.Prefix, err)
	}
	return err
}

// CheckReference is like Reference but uses cfg.
func CheckReference(cfg Config, t testing.TB, hint string, values []string, pred string) error {
	t.Helper()
	if recordTest(t) {
		cfg.record(t, hint, values)
		return nil
	}
	mk, err := pointwise.Named(pred)
	if err != nil {
		t.Errorf("%s%s", cfg.Prefix, err)
		return err
	}
	reffile := cfg.refFile(t, hint)
	ref, err := pointwise.ReadValueFile(reffile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		t.Logf("to record a reference file run '%[1]s=%[2]s go test -run %[2]s'",
			RecordEnv,
			t.Name(),
		)
		err = fmt.Errorf("reference file %s does not exist", reffile)
		t.Errorf("%s%s", cfg.Prefix, err)
		return err
	case err != nil:
		t.Errorf("%s%s", cfg.Prefix, err)
		return err
	}
	expr := hint
	if expr == "" {
		expr = "values"
	}
	m := pointwise.Pointwise(mk, pointwise.ParseValues(ref))
	return check(cfg, t, expr, pointwise.ParseValues(values), m, false)
}

func recordTest(t testing.TB) bool {
	rec := os.Getenv(RecordEnv)
	if rec == "" {
		return false
	}
	r, err := regexp.Compile(rec)
	if err != nil {
		t.Logf("pwtest: invalid regexp '%s' in %s, not recording: %s", rec, RecordEnv, err)
		return false
	}
	return r.MatchString(t.Name())
}

func (cfg Config) record(t testing.TB, hint string, values []string) {
	t.Helper()
	reffile := cfg.refFile(t, hint)
	if _, err := os.Stat(reffile); !os.IsNotExist(err) && !cfg.RecordOverwrite {
		t.Fatalf("pwtest: reference file '%s' already exists", reffile)
		return
	}
	if err := os.MkdirAll(filepath.Dir(reffile), 0777); err != nil {
		t.Fatal(err)
		return
	}
	wr, err := os.Create(reffile)
	if err != nil {
		t.Fatal(err)
		return
	}
	defer wr.Close()
	if err = pointwise.WriteValues(wr, values); err != nil {
		t.Error(err)
	}
	t.Errorf("pwtest recorded %d values to %s", len(values), reffile)
}
