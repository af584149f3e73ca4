package types

import (
	"io"

	"github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"
)

// Cid wraps a content identifier for wire encoding. The identifier's
// internal structure is not validated here, it crosses the boundary as a
// tagged byte string.
type Cid struct {
	cid.Cid
}

// NewCid wraps a cid for encoding
func NewCid(c cid.Cid) Cid {
	return Cid{Cid: c}
}

// MarshalCBOR encodes the cid as a tag-42 byte string
func (c *Cid) MarshalCBOR(w io.Writer) error {
	if !c.Defined() {
		return xerrors.Errorf("cannot marshal undefined cid")
	}

	return cbg.WriteCidBuf(make([]byte, 9), w, c.Cid)
}

// UnmarshalCBOR decodes a tag-42 cid
func (c *Cid) UnmarshalCBOR(br io.Reader) error {
	decoded, err := cbg.ReadCid(cbg.GetPeeker(br))
	if err != nil {
		return xerrors.Errorf("reading cid: %s: %w", err, ErrMalformedWireData)
	}

	c.Cid = decoded
	return nil
}
