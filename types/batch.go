package types

import (
	"io"

	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"
)

// FailCode reports the failure of a single element of a batch operation:
// the element's index in the original batch and the exit code it failed
// with.
type FailCode struct {
	Idx  uint32
	Code uint32
}

// BatchReturn describes the outcome of a batch operation. SuccessCount plus
// the number of fail codes equals the number of operations attempted. Fail
// codes are ordered by original batch position, the indices need not be
// contiguous.
type BatchReturn struct {
	SuccessCount uint32
	FailCodes    []FailCode
}

// Size returns the total number of operations the batch attempted
func (b *BatchReturn) Size() int {
	return int(b.SuccessCount) + len(b.FailCodes)
}

// AllOk returns true if no element of the batch failed
func (b *BatchReturn) AllOk() bool {
	return len(b.FailCodes) == 0
}

var lengthBufFailCode = []byte{130}

// MarshalCBOR encodes a FailCode as a 2-element array
func (t *FailCode) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufFailCode); err != nil {
		return err
	}

	if err := cbg.WriteMajorTypeHeader(w, cbg.MajUnsignedInt, uint64(t.Idx)); err != nil {
		return err
	}

	if err := cbg.WriteMajorTypeHeader(w, cbg.MajUnsignedInt, uint64(t.Code)); err != nil {
		return err
	}

	return nil
}

// UnmarshalCBOR decodes a FailCode, validating arity and integer width
func (t *FailCode) UnmarshalCBOR(br io.Reader) error {
	*t = FailCode{}

	maj, extra, err := cbg.CborReadHeader(br)
	if err != nil {
		return err
	}

	if maj != cbg.MajArray {
		return xerrors.Errorf("cbor input for fail code should be an array: %w", ErrMalformedWireData)
	}

	if extra != 2 {
		return xerrors.Errorf("cbor input for fail code had wrong number of fields (%d): %w", extra, ErrMalformedWireData)
	}

	if t.Idx, err = readUint32(br); err != nil {
		return err
	}

	if t.Code, err = readUint32(br); err != nil {
		return err
	}

	return nil
}

var lengthBufBatchReturn = []byte{130}

// MarshalCBOR encodes a BatchReturn as a 2-element array holding the
// success count and the array of fail code pairs
func (t *BatchReturn) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufBatchReturn); err != nil {
		return err
	}

	if err := cbg.WriteMajorTypeHeader(w, cbg.MajUnsignedInt, uint64(t.SuccessCount)); err != nil {
		return err
	}

	if err := cbg.WriteMajorTypeHeader(w, cbg.MajArray, uint64(len(t.FailCodes))); err != nil {
		return err
	}
	for i := range t.FailCodes {
		if err := t.FailCodes[i].MarshalCBOR(w); err != nil {
			return err
		}
	}

	return nil
}

// UnmarshalCBOR decodes a BatchReturn
func (t *BatchReturn) UnmarshalCBOR(br io.Reader) error {
	*t = BatchReturn{}

	maj, extra, err := cbg.CborReadHeader(br)
	if err != nil {
		return err
	}

	if maj != cbg.MajArray {
		return xerrors.Errorf("cbor input for batch return should be an array: %w", ErrMalformedWireData)
	}

	if extra != 2 {
		return xerrors.Errorf("cbor input for batch return had wrong number of fields (%d): %w", extra, ErrMalformedWireData)
	}

	if t.SuccessCount, err = readUint32(br); err != nil {
		return err
	}

	maj, extra, err = cbg.CborReadHeader(br)
	if err != nil {
		return err
	}

	if maj != cbg.MajArray {
		return xerrors.Errorf("cbor input for fail code list should be an array: %w", ErrMalformedWireData)
	}

	if extra > cbg.MaxLength {
		return xerrors.Errorf("fail code list too long (%d): %w", extra, ErrMalformedWireData)
	}

	if extra > 0 {
		t.FailCodes = make([]FailCode, extra)
	}
	for i := 0; i < int(extra); i++ {
		if err := t.FailCodes[i].UnmarshalCBOR(br); err != nil {
			return err
		}
	}

	return nil
}
