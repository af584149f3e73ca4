package types

import (
	"io"
	"math"

	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"
)

// Uint64 is a bare CBOR unsigned integer. Several read-only actor methods
// take or return one of these with no surrounding array.
type Uint64 uint64

// Int64 is a bare CBOR signed integer.
type Int64 int64

// MarshalCBOR encodes a Uint64 with a minimal-length header
func (i Uint64) MarshalCBOR(w io.Writer) error {
	return cbg.WriteMajorTypeHeader(w, cbg.MajUnsignedInt, uint64(i))
}

// UnmarshalCBOR decodes a Uint64, rejecting any other major type
func (i *Uint64) UnmarshalCBOR(br io.Reader) error {
	maj, extra, err := cbg.CborReadHeader(br)
	if err != nil {
		return err
	}

	if maj != cbg.MajUnsignedInt {
		return xerrors.Errorf("cbor input for uint64 was not an unsigned integer (%x): %w", maj, ErrMalformedWireData)
	}

	*i = Uint64(extra)
	return nil
}

// MarshalCBOR encodes an Int64 as an unsigned or negative integer depending
// on sign
func (i Int64) MarshalCBOR(w io.Writer) error {
	if i >= 0 {
		return cbg.WriteMajorTypeHeader(w, cbg.MajUnsignedInt, uint64(i))
	}
	return cbg.WriteMajorTypeHeader(w, cbg.MajNegativeInt, uint64(-i-1))
}

// UnmarshalCBOR decodes an Int64 from either integer major type
func (i *Int64) UnmarshalCBOR(br io.Reader) error {
	maj, extra, err := cbg.CborReadHeader(br)
	if err != nil {
		return err
	}

	switch maj {
	case cbg.MajUnsignedInt:
		if extra > math.MaxInt64 {
			return xerrors.Errorf("cbor input for int64 overflows (%d): %w", extra, ErrMalformedWireData)
		}
		*i = Int64(extra)
	case cbg.MajNegativeInt:
		if extra > math.MaxInt64 {
			return xerrors.Errorf("cbor input for int64 overflows (-%d): %w", extra, ErrMalformedWireData)
		}
		*i = Int64(-1 - int64(extra))
	default:
		return xerrors.Errorf("cbor input for int64 was not an integer (%x): %w", maj, ErrMalformedWireData)
	}

	return nil
}

// readUint32 reads an unsigned integer and checks it fits in 32 bits
func readUint32(br io.Reader) (uint32, error) {
	maj, extra, err := cbg.CborReadHeader(br)
	if err != nil {
		return 0, err
	}

	if maj != cbg.MajUnsignedInt {
		return 0, xerrors.Errorf("cbor input for uint32 was not an unsigned integer (%x): %w", maj, ErrMalformedWireData)
	}

	if extra > math.MaxUint32 {
		return 0, xerrors.Errorf("cbor input for uint32 does not fit (%d): %w", extra, ErrMalformedWireData)
	}

	return uint32(extra), nil
}
