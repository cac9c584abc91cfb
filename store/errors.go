package store

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when a data format other than json,
// yaml or toml is requested.
var ErrUnsupportedFormat = errors.New("unsupported data format")

// IOError reports a failure reading or writing the data file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// DecodeError reports a data file whose content could not be parsed or
// does not describe a valid collection.
type DecodeError struct {
	Path   string
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s data from %s: %v", e.Format, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
