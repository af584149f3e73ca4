package types

import (
	"io"
	"unicode/utf8"

	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"
)

// MaxDealLabelSize is the maximum size of a deal label in bytes
const MaxDealLabelSize = 256

// DealLabel is an arbitrary client chosen label for a deal. It is either a
// UTF-8 string, serialized to CBOR as a text string, or raw bytes,
// serialized as a byte string. The remote side distinguishes the two by
// major type alone.
type DealLabel struct {
	bs        []byte
	notString bool
}

// EmptyDealLabel is the empty string label
var EmptyDealLabel = DealLabel{}

// NewLabelFromString makes a label from a UTF-8 string
func NewLabelFromString(s string) (DealLabel, error) {
	if len(s) > MaxDealLabelSize {
		return EmptyDealLabel, xerrors.Errorf("label is %d bytes, max is %d: %w", len(s), MaxDealLabelSize, ErrValueTooLarge)
	}
	if !utf8.ValidString(s) {
		return EmptyDealLabel, xerrors.Errorf("label is not a valid utf-8 string")
	}
	return DealLabel{bs: []byte(s)}, nil
}

// NewLabelFromBytes makes a label from raw bytes
func NewLabelFromBytes(b []byte) (DealLabel, error) {
	if len(b) > MaxDealLabelSize {
		return EmptyDealLabel, xerrors.Errorf("label is %d bytes, max is %d: %w", len(b), MaxDealLabelSize, ErrValueTooLarge)
	}
	return DealLabel{bs: b, notString: true}, nil
}

// IsString returns true if the label should be interpreted as UTF-8 text
func (label DealLabel) IsString() bool {
	return !label.notString
}

// IsBytes returns true if the label holds raw bytes
func (label DealLabel) IsBytes() bool {
	return label.notString
}

// ToString returns the label as a string, failing for byte labels
func (label DealLabel) ToString() (string, error) {
	if !label.IsString() {
		return "", xerrors.Errorf("label is not a string")
	}
	return string(label.bs), nil
}

// ToBytes returns the label's raw bytes, failing for string labels
func (label DealLabel) ToBytes() ([]byte, error) {
	if !label.IsBytes() {
		return nil, xerrors.Errorf("label is not bytes")
	}
	return label.bs, nil
}

// Length returns the label length in bytes
func (label DealLabel) Length() int {
	return len(label.bs)
}

// Equals returns true if the labels hold the same data in the same form
func (label DealLabel) Equals(o DealLabel) bool {
	if label.notString != o.notString {
		return false
	}
	return string(label.bs) == string(o.bs)
}

// MarshalCBOR encodes a DealLabel as a text string or byte string. The
// length precondition is rechecked here so a label constructed directly
// never produces bytes.
func (label *DealLabel) MarshalCBOR(w io.Writer) error {
	if label == nil {
		return xerrors.Errorf("cannot marshal nil deal label")
	}

	if len(label.bs) > MaxDealLabelSize {
		return xerrors.Errorf("label is %d bytes, max is %d: %w", len(label.bs), MaxDealLabelSize, ErrValueTooLarge)
	}

	maj := byte(cbg.MajTextString)
	if label.notString {
		maj = cbg.MajByteString
	}

	if err := cbg.WriteMajorTypeHeader(w, maj, uint64(len(label.bs))); err != nil {
		return err
	}

	_, err := w.Write(label.bs)
	return err
}

// UnmarshalCBOR decodes a DealLabel, accepting either string major type
func (label *DealLabel) UnmarshalCBOR(br io.Reader) error {
	maj, extra, err := cbg.CborReadHeader(br)
	if err != nil {
		return err
	}

	if maj != cbg.MajTextString && maj != cbg.MajByteString {
		return xerrors.Errorf("cbor input for deal label was not a string (%x): %w", maj, ErrMalformedWireData)
	}

	if extra > MaxDealLabelSize {
		return xerrors.Errorf("label is %d bytes, max is %d: %w", extra, MaxDealLabelSize, ErrMalformedWireData)
	}

	label.bs = make([]byte, extra)
	label.notString = maj != cbg.MajTextString
	if _, err := io.ReadFull(br, label.bs); err != nil {
		return err
	}

	if !label.notString && !utf8.Valid(label.bs) {
		return xerrors.Errorf("label string is not valid utf-8: %w", ErrMalformedWireData)
	}

	return nil
}
