package animation

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrUnknownType       = errors.New("unknown type")
	ErrConversion        = errors.New("conversion error")
	ErrUnsupportedType   = errors.New("unsupported type")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrUnknownEntry      = errors.New("unknown entry")
	ErrChildTypeMismatch = errors.New("child type mismatch")
	ErrBinderPanic       = errors.New("binder panic")
)

func wrapf(err error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
}
