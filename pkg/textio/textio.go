// Package textio turns raw report bytes into lines.
package textio

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names the charset a report was decoded with.
type Encoding string

const (
	UTF8   Encoding = "utf-8"
	Latin1 Encoding = "latin-1"
)

// Decode converts data to a string. Valid UTF-8 is used as-is; anything else
// is decoded as ISO-8859-1, which maps every byte to a character and so
// never fails.
func Decode(data []byte) (string, Encoding, error) {
	if utf8.Valid(data) {
		return string(data), UTF8, nil
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", Latin1, fmt.Errorf("decoding latin-1: %w", err)
	}
	return string(s), Latin1, nil
}

// SplitLines splits s on "\n", "\r\n" and lone "\r". A trailing line break
// does not produce a final empty line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// DecodeLines decodes data and splits it into lines.
func DecodeLines(data []byte) ([]string, Encoding, error) {
	s, enc, err := Decode(data)
	if err != nil {
		return nil, enc, err
	}
	return SplitLines(s), enc, nil
}

// ReadLines reads all of r and returns its lines.
func ReadLines(r io.Reader) ([]string, Encoding, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", err
	}
	return DecodeLines(data)
}

// ReadFileLines reads the file at path and returns its lines.
func ReadFileLines(path string) ([]string, Encoding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return DecodeLines(data)
}
