package uintvar

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// MaxLen32 is the number of bytes needed to hold any 32-bit value.
	MaxLen32 = 5
	// MaxLen64 is the number of bytes needed to hold any 64-bit value.
	MaxLen64 = 10

	unboundedText = "unbounded"
)

// Bound is the maximum number of bytes one encoded value may occupy. The zero
// value is Unbounded.
type Bound struct {
	n       int
	bounded bool
}

// Unbounded places no limit on the encoded length.
var Unbounded = Bound{}

// MaxBytes returns a Bound of n bytes. n must be positive; a non-positive n
// produces a Bound that every operation rejects with ErrBadArgument.
func MaxBytes(n int) Bound {
	return Bound{n: n, bounded: true}
}

// ParseBound parses the textual form of a Bound: "unbounded" or a positive
// byte count. An empty string is unbounded.
func ParseBound(s string) (Bound, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, unboundedText) {
		return Unbounded, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Unbounded, errors.Wrapf(err, "invalid bound %q", s)
	}
	if n <= 0 {
		return Unbounded, badArgumentf("bound must be positive, got %d", n)
	}
	return MaxBytes(n), nil
}

func (b Bound) IsUnbounded() bool {
	return !b.bounded
}

// Limit returns the byte limit and true, or 0 and false when b is Unbounded.
func (b Bound) Limit() (int, bool) {
	return b.n, b.bounded
}

// Fits reports whether an encoding of n bytes is permitted by b.
func (b Bound) Fits(n int) bool {
	return !b.bounded || n <= b.n
}

func (b Bound) String() string {
	if !b.bounded {
		return unboundedText
	}
	return strconv.Itoa(b.n)
}

func (b Bound) validate() error {
	if b.bounded && b.n <= 0 {
		return badArgumentf("bound must be positive, got %d", b.n)
	}
	return nil
}

// take charges one byte against the budget. It is the only place a budget is
// decremented, and both the encoder and the decoder go through it.
func (b Bound) take() (Bound, bool) {
	if !b.bounded {
		return b, true
	}
	if b.n <= 0 {
		return b, false
	}
	return Bound{n: b.n - 1, bounded: true}, true
}
