package account

import (
	"io"

	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-actor-api/types"
)

// AuthenticateMessageParams asks an account actor whether a signature over
// a message is valid for the account's key.
type AuthenticateMessageParams struct {
	Signature []byte
	Message   []byte
}

var lengthBufAuthenticateMessageParams = []byte{130}

// MarshalCBOR encodes AuthenticateMessageParams as a 2-element array
func (t *AuthenticateMessageParams) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufAuthenticateMessageParams); err != nil {
		return err
	}

	if err := cbg.WriteMajorTypeHeader(w, cbg.MajByteString, uint64(len(t.Signature))); err != nil {
		return err
	}
	if _, err := w.Write(t.Signature); err != nil {
		return err
	}

	if err := cbg.WriteMajorTypeHeader(w, cbg.MajByteString, uint64(len(t.Message))); err != nil {
		return err
	}
	if _, err := w.Write(t.Message); err != nil {
		return err
	}

	return nil
}

// UnmarshalCBOR decodes AuthenticateMessageParams, validating arity
func (t *AuthenticateMessageParams) UnmarshalCBOR(br io.Reader) error {
	*t = AuthenticateMessageParams{}

	maj, extra, err := cbg.CborReadHeader(br)
	if err != nil {
		return err
	}

	if maj != cbg.MajArray {
		return xerrors.Errorf("cbor input for authenticate message params should be an array: %w", types.ErrMalformedWireData)
	}

	if extra != 2 {
		return xerrors.Errorf("cbor input for authenticate message params had wrong number of fields (%d): %w", extra, types.ErrMalformedWireData)
	}

	if t.Signature, err = readByteString(br); err != nil {
		return err
	}

	if t.Message, err = readByteString(br); err != nil {
		return err
	}

	return nil
}

func readByteString(br io.Reader) ([]byte, error) {
	maj, extra, err := cbg.CborReadHeader(br)
	if err != nil {
		return nil, err
	}

	if maj != cbg.MajByteString {
		return nil, xerrors.Errorf("cbor input was not a byte string (%x): %w", maj, types.ErrMalformedWireData)
	}

	if extra > cbg.ByteArrayMaxLen {
		return nil, xerrors.Errorf("byte string too large (%d): %w", extra, types.ErrMalformedWireData)
	}

	if extra == 0 {
		return nil, nil
	}

	buf := make([]byte, extra)
	if _, err := io.ReadFull(br, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
