package types

import (
	"golang.org/x/xerrors"
)

// ErrMalformedWireData is returned when decoding encounters bytes whose
// structure does not match the expected wire shape: wrong array arity, an
// integer that does not fit the declared width, or a byte string whose
// length is inconsistent with the type being decoded. It indicates a
// protocol mismatch with the remote actor and aborts the current operation.
var ErrMalformedWireData = xerrors.New("malformed wire data")

// ErrValueTooLarge is returned when a caller-supplied value violates an
// encoding precondition, before any bytes are produced.
var ErrValueTooLarge = xerrors.New("value too large")
