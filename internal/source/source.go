// Package source reads SQL text from files and standard input.
//
// Input is decoded to UTF-8 before it reaches the tokenizer: a UTF-8 byte
// order mark is removed and UTF-16 input (either byte order, announced by
// its BOM) is transcoded.
package source

import (
	"io"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Stdin is the file name that selects standard input.
const Stdin = "-"

// ErrInvalidUTF8 is returned when BOM-less input is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// File is a decoded SQL source.
type File struct {
	Name string
	Text string
}

// Decode converts raw bytes to UTF-8 text without a byte order mark.
func Decode(data []byte) (string, error) {
	decoder := unicode.BOMOverride(transform.Nop)
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", errors.Wrap(err, "decode input")
	}
	if !utf8.Valid(out) {
		return "", ErrInvalidUTF8
	}
	return string(out), nil
}

// Read decodes everything from r.
func Read(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "read input")
	}
	return Decode(data)
}

// ReadFile reads and decodes the named file. The name "-" reads standard
// input.
func ReadFile(name string) (*File, error) {
	var (
		data []byte
		err  error
	)
	if name == Stdin {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name) //nolint:gosec // path comes from the command line
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read the file %s", name)
	}
	text, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode the file %s", name)
	}
	return &File{Name: name, Text: text}, nil
}
