package macsxls

import (
	"errors"
	"fmt"
)

// ErrNoVersion indicates no MACS version line was found in the file
// header, meaning the input is probably not a MACS output file.
var ErrNoVersion = errors.New("no MACS version line in header")

// ErrUnsupportedVersion indicates the file comes from a MACS version
// family the workbook emitter does not handle.
var ErrUnsupportedVersion = errors.New("unsupported MACS version")

// ErrUnsupportedMode indicates the file comes from a MACS run mode the
// workbook emitter does not handle.
var ErrUnsupportedMode = errors.New("unsupported MACS run mode")

// UnsupportedError reports why a loaded peak file was rejected by the
// workbook emitter.
type UnsupportedError struct {
	// Kind is ErrUnsupportedVersion or ErrUnsupportedMode.
	Kind error
	// Detail describes the rejected input.
	Detail string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
}

func (e *UnsupportedError) Unwrap() error {
	return e.Kind
}
