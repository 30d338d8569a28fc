package colormap

import "github.com/pkg/errors"

// ErrInvalidArgument is returned, wrapped with context, for every rejected
// input: neutral values outside [0,1], table sizes out of range, unknown
// interpolation modes and non-positive Bezier weights.
var ErrInvalidArgument = errors.New("colormap: invalid argument")

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}
