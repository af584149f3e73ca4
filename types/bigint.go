package types

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	cbor "github.com/ipfs/go-ipld-cbor"
	"github.com/polydawn/refmt/obj/atlas"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"
)

// BigIntMaxSerializedLen is the maximum number of bytes a big int can use
// when serialized to CBOR (sign byte plus magnitude)
const BigIntMaxSerializedLen = 128

func init() {
	cbor.RegisterCborType(atlas.BuildEntry(BigInt{}).Transform().
		TransformMarshal(atlas.MakeMarshalTransformFunc(
			func(i BigInt) ([]byte, error) {
				return i.cborBytes(), nil
			})).
		TransformUnmarshal(atlas.MakeUnmarshalTransformFunc(
			func(x []byte) (BigInt, error) {
				return fromCborBytes(x)
			})).
		Complete())
}

// EmptyInt is a big int with no underlying value
var EmptyInt = BigInt{}

// BigInt is an arbitrary-precision signed integer, serialized to CBOR as a
// byte string holding a sign byte followed by the big-endian magnitude
type BigInt struct {
	*big.Int
}

// NewInt creates a big int from a signed integer
func NewInt(i int64) BigInt {
	return BigInt{big.NewInt(i)}
}

// FromInt creates a big int from an unsigned integer
func FromInt(i uint64) BigInt {
	return BigInt{big.NewInt(0).SetUint64(i)}
}

// FromBytes creates a positive big int from a big-endian magnitude
func FromBytes(b []byte) BigInt {
	i := big.NewInt(0).SetBytes(b)
	return BigInt{i}
}

// FromString creates a big int from a decimal string representation
func FromString(s string) (BigInt, error) {
	v, ok := big.NewInt(0).SetString(s, 10)
	if !ok {
		return BigInt{}, fmt.Errorf("failed to parse string as a big int")
	}

	return BigInt{v}, nil
}

// Zero returns the canonical zero big int
func Zero() BigInt {
	return NewInt(0)
}

// Mul multiplies two big ints
func Mul(a, b BigInt) BigInt {
	return BigInt{big.NewInt(0).Mul(a.Int, b.Int)}
}

// Div divides two big ints
func Div(a, b BigInt) BigInt {
	return BigInt{big.NewInt(0).Div(a.Int, b.Int)}
}

// Add adds two big ints together
func Add(a, b BigInt) BigInt {
	return BigInt{big.NewInt(0).Add(a.Int, b.Int)}
}

// Sub subtracts the second big int from the first
func Sub(a, b BigInt) BigInt {
	return BigInt{big.NewInt(0).Sub(a.Int, b.Int)}
}

// Cmp compares two big ints (for sorting)
func Cmp(a, b BigInt) int {
	return a.Int.Cmp(b.Int)
}

// Nil is true if there is no underlying value
func (bi BigInt) Nil() bool {
	return bi.Int == nil
}

// LessThan returns true if bi < o
func (bi BigInt) LessThan(o BigInt) bool {
	return Cmp(bi, o) < 0
}

// GreaterThan returns true if bi > o
func (bi BigInt) GreaterThan(o BigInt) bool {
	return Cmp(bi, o) > 0
}

// Equals returns true if bi == o
func (bi BigInt) Equals(o BigInt) bool {
	return Cmp(bi, o) == 0
}

// IsZero returns true if bi is nil or has a zero value
func (bi BigInt) IsZero() bool {
	return bi.Int == nil || bi.Sign() == 0
}

// String outputs the big int as a decimal string
func (bi BigInt) String() string {
	if bi.Int == nil {
		return "<nil>"
	}
	return bi.Int.String()
}

// MarshalJSON converts a big int to a json string
func (bi *BigInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(bi.String())
}

// UnmarshalJSON decodes a big int from json
func (bi *BigInt) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	res, err := FromString(s)
	if err != nil {
		return err
	}
	bi.Int = res.Int
	return nil
}

// cborBytes returns the sign byte followed by the big-endian magnitude. The
// sign byte is always present: the remote actor's reader rejects an empty
// byte string. A negative sign with an empty magnitude cannot occur since
// big.Int normalizes negative zero to zero.
func (bi BigInt) cborBytes() []byte {
	if bi.Int == nil || bi.Sign() == 0 {
		return []byte{0}
	}

	if bi.Sign() < 0 {
		return append([]byte{1}, bi.Bytes()...)
	}
	return append([]byte{0}, bi.Bytes()...)
}

func fromCborBytes(buf []byte) (BigInt, error) {
	if len(buf) == 0 {
		return EmptyInt, xerrors.Errorf("big int lacks sign byte: %w", ErrMalformedWireData)
	}

	var negative bool
	switch buf[0] {
	case 0:
		negative = false
	case 1:
		negative = true
	default:
		return EmptyInt, xerrors.Errorf("big int sign byte should be either 0 or 1, got %d: %w", buf[0], ErrMalformedWireData)
	}

	i := big.NewInt(0).SetBytes(buf[1:])
	if negative {
		// negative zero normalizes to zero here
		i.Neg(i)
	}

	return BigInt{i}, nil
}

// MarshalCBOR encodes a BigInt as a CBOR byte string
func (bi *BigInt) MarshalCBOR(w io.Writer) error {
	enc := bi.cborBytes()

	header := cbg.CborEncodeMajorType(cbg.MajByteString, uint64(len(enc)))
	if _, err := w.Write(header); err != nil {
		return err
	}

	if _, err := w.Write(enc); err != nil {
		return err
	}

	return nil
}

// UnmarshalCBOR decodes a BigInt from a CBOR byte string
func (bi *BigInt) UnmarshalCBOR(br io.Reader) error {
	maj, extra, err := cbg.CborReadHeader(br)
	if err != nil {
		return err
	}

	if maj != cbg.MajByteString {
		return xerrors.Errorf("cbor input for big int was not a byte string (%x): %w", maj, ErrMalformedWireData)
	}

	if extra == 0 {
		return xerrors.Errorf("big int byte string lacks sign byte: %w", ErrMalformedWireData)
	}

	if extra > BigIntMaxSerializedLen {
		return xerrors.Errorf("big int byte string too long: %w", ErrMalformedWireData)
	}

	buf := make([]byte, extra)
	if _, err := io.ReadFull(br, buf); err != nil {
		return err
	}

	i, err := fromCborBytes(buf)
	if err != nil {
		return err
	}

	*bi = i

	return nil
}
