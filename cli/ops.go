package cli

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"

	"uintvar/log"
	"uintvar/uintvar"
)

type EncodeResult struct {
	Value  string `json:"value"`
	Hex    string `json:"hex"`
	Length int    `json:"length"`
}

func (r *EncodeResult) Header() []string {
	return []string{"Value", "Encoded", "Length"}
}

func (r *EncodeResult) Columns() []string {
	return []string{r.Value, r.Hex, itoa(r.Length)}
}

type DecodeResult struct {
	Value string `json:"value"`
	Hex   string `json:"hex"`
	Rest  string `json:"rest,omitempty"`
}

func (r *DecodeResult) Header() []string {
	return []string{"Value", "Encoded", "Rest"}
}

func (r *DecodeResult) Columns() []string {
	return []string{r.Value, r.Hex, r.Rest}
}

type SizeResult struct {
	Value  string `json:"value"`
	Length int    `json:"length"`
	Fits   bool   `json:"fits"`
}

func (r *SizeResult) Header() []string {
	return []string{"Value", "Length", "Fits"}
}

func (r *SizeResult) Columns() []string {
	fits := "no"
	if r.Fits {
		fits = "yes"
	}
	return []string{r.Value, itoa(r.Length), fits}
}

var lgr = log.WithModule("cli")

func (s *Settings) hex(b []byte) string {
	out := hex.EncodeToString(b)
	if s.UppercaseHex {
		return strings.ToUpper(out)
	}
	return out
}

// Encode encodes each of the textual values.
func (s *Settings) Encode(values []string) ([]Row, error) {
	codec := s.Codec()
	rows := make([]Row, 0, len(values))
	for _, raw := range values {
		v, err := ParseValue(raw)
		if err != nil {
			return nil, err
		}
		b, err := codec.Encode(v)
		if err != nil {
			return nil, errors.Wrapf(err, "error encoding %s", raw)
		}
		lgr.Debug("encoded value", "value", v.String(), "bytes", len(b), "bound", s.Bound.String())
		rows = append(rows, &EncodeResult{
			Value:  v.String(),
			Hex:    s.hex(b),
			Length: len(b),
		})
	}
	return rows, nil
}

// Decode decodes the hex input. In single mode only the first value is
// decoded and the undecoded remainder is reported; otherwise the input must be
// a concatenation of complete values.
func (s *Settings) Decode(input string, single bool) ([]Row, error) {
	b, err := ParseHex(input)
	if err != nil {
		return nil, err
	}
	codec := s.Codec()

	if single {
		v, rest, err := codec.Decode(b)
		if err != nil {
			return nil, errors.Wrap(err, "error decoding input")
		}
		lgr.Debug("decoded value", "value", v.String(), "rest", len(rest))
		return []Row{
			&DecodeResult{
				Value: v.String(),
				Hex:   s.hex(b[:len(b)-len(rest)]),
				Rest:  s.hex(rest),
			},
		}, nil
	}

	var rows []Row
	for len(b) > 0 {
		v, rest, err := codec.Decode(b)
		if err != nil {
			return nil, errors.Wrapf(err, "error decoding value %d", len(rows))
		}
		rows = append(rows, &DecodeResult{
			Value: v.String(),
			Hex:   s.hex(b[:len(b)-len(rest)]),
		})
		b = rest
	}
	lgr.Debug("decoded values", "count", len(rows))
	return rows, nil
}

// Size reports the minimal encoded length of each value and whether it fits
// within the configured bound.
func (s *Settings) Size(values []string) ([]Row, error) {
	rows := make([]Row, 0, len(values))
	for _, raw := range values {
		v, err := ParseValue(raw)
		if err != nil {
			return nil, err
		}
		if v.Sign() < 0 {
			return nil, errors.Wrapf(uintvar.ErrBadArgument, "negative value %s", v)
		}
		n := uintvar.Size(v)
		rows = append(rows, &SizeResult{
			Value:  v.String(),
			Length: n,
			Fits:   s.Bound.Fits(n),
		})
	}
	return rows, nil
}
