package cli

import (
	"bufio"
	"encoding/hex"
	"io"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// ParseValue parses a non-negative integer in Go literal syntax: decimal, or
// hex, octal and binary with a 0x, 0o or 0b prefix.
func ParseValue(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, errors.Errorf("invalid integer %q", s)
	}
	return v, nil
}

// ParseHex parses hex-encoded bytes. Whitespace and an optional 0x prefix are
// ignored.
func ParseHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hex input")
	}
	return b, nil
}

// ReadFields reads whitespace-separated fields from r.
func ReadFields(r io.Reader) ([]string, error) {
	var fields []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		fields = append(fields, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading input")
	}
	return fields, nil
}
