package types

import (
	"io"

	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"
)

// ReceiverType is the tag of a universal receiver payload, agreed out of
// band between sender and recipient
type ReceiverType uint32

// UniversalReceiverParams is the envelope handed to an actor's universal
// receiver hook. Interpretation of the payload depends on the type tag and
// is opaque to this layer.
type UniversalReceiverParams struct {
	Type_   ReceiverType
	Payload []byte
}

var lengthBufUniversalReceiverParams = []byte{130}

// MarshalCBOR encodes UniversalReceiverParams as a 2-element array
func (t *UniversalReceiverParams) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufUniversalReceiverParams); err != nil {
		return err
	}

	if err := cbg.WriteMajorTypeHeader(w, cbg.MajUnsignedInt, uint64(t.Type_)); err != nil {
		return err
	}

	if err := cbg.WriteMajorTypeHeader(w, cbg.MajByteString, uint64(len(t.Payload))); err != nil {
		return err
	}
	if _, err := w.Write(t.Payload); err != nil {
		return err
	}

	return nil
}

// UnmarshalCBOR decodes UniversalReceiverParams
func (t *UniversalReceiverParams) UnmarshalCBOR(br io.Reader) error {
	*t = UniversalReceiverParams{}

	maj, extra, err := cbg.CborReadHeader(br)
	if err != nil {
		return err
	}

	if maj != cbg.MajArray {
		return xerrors.Errorf("cbor input for receiver params should be an array: %w", ErrMalformedWireData)
	}

	if extra != 2 {
		return xerrors.Errorf("cbor input for receiver params had wrong number of fields (%d): %w", extra, ErrMalformedWireData)
	}

	typ, err := readUint32(br)
	if err != nil {
		return err
	}
	t.Type_ = ReceiverType(typ)

	maj, extra, err = cbg.CborReadHeader(br)
	if err != nil {
		return err
	}

	if maj != cbg.MajByteString {
		return xerrors.Errorf("cbor input for receiver payload was not a byte string (%x): %w", maj, ErrMalformedWireData)
	}

	if extra > cbg.ByteArrayMaxLen {
		return xerrors.Errorf("receiver payload too large (%d): %w", extra, ErrMalformedWireData)
	}

	if extra > 0 {
		t.Payload = make([]byte, extra)
	}
	if _, err := io.ReadFull(br, t.Payload); err != nil {
		return err
	}

	return nil
}
