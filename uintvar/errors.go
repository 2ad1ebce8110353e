package uintvar

import (
	"github.com/pkg/errors"
)

// ErrBadArgument is returned, wrapped with a more specific message, whenever a
// value cannot be encoded or decoded within its bound, the input is truncated,
// or the caller passes an invalid value or bound.
var ErrBadArgument = errors.New("uintvar: bad argument")

func badArgument(msg string) error {
	return errors.Wrap(ErrBadArgument, msg)
}

func badArgumentf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrBadArgument, format, args...)
}

// IsBadArgument reports whether err was caused by ErrBadArgument.
func IsBadArgument(err error) bool {
	return errors.Cause(err) == ErrBadArgument
}
