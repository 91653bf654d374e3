package pointwise

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ReadValues reads one value per line from rd. Lines end with "\n" or
// "\r\n" and surrounding white space is not part of the value.
func ReadValues(rd io.Reader) ([]string, error) {
	var (
		ls  lineScanner
		res []string
	)
	scn := bufio.NewScanner(rd)
	scn.Split(ls.split)
	for scn.Scan() {
		res = append(res, string(bytes.TrimSpace(scn.Bytes())))
	}
	return res, scn.Err()
}

// ReadValueFile reads the values from the file name with ReadValues.
func ReadValueFile(name string) ([]string, error) {
	rd, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open value file")
	}
	defer rd.Close()
	vals, err := ReadValues(rd)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return vals, nil
}

// PrepareValues copies the lines of rd to wr with surrounding white space
// removed. The line separators are copied as they are.
func PrepareValues(wr io.Writer, rd io.Reader) error {
	var ls lineScanner
	scn := bufio.NewScanner(rd)
	scn.Split(ls.split)
	for scn.Scan() {
		if _, err := wr.Write(bytes.TrimSpace(scn.Bytes())); err != nil {
			return err
		}
		if _, err := wr.Write(ls.sep); err != nil {
			return err
		}
	}
	return scn.Err()
}

// WriteValues writes values to wr, one per line, in the form ReadValues
// reads them back.
func WriteValues(wr io.Writer, values []string) error {
	bw := bufio.NewWriter(wr)
	for _, v := range values {
		bw.WriteString(strings.TrimSpace(v))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

var (
	nl = []byte{'\n'}
	cr = []byte{'\r'}
)

// lineScanner splits like bufio.ScanLines. After each token sep holds the
// separator that ended the line. It is empty for a last line without one.
type lineScanner struct {
	sep []byte
}

func (ls *lineScanner) split(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	advance = bytes.IndexByte(data, '\n') + 1
	if advance == 0 {
		if !atEOF {
			return 0, nil, nil
		}
		advance = len(data)
	}
	token = bytes.TrimSuffix(bytes.TrimSuffix(data[:advance], nl), cr)
	ls.sep = data[len(token):advance]
	return advance, token, nil
}
