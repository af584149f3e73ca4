package power

import (
	"io"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-actor-api/types"
)

// CreateMinerParams instructs the power actor to deploy a new storage
// miner. Field order is a wire contract with the remote actor and must not
// change.
type CreateMinerParams struct {
	Owner               address.Address
	Worker              address.Address
	WindowPoStProofType abi.RegisteredPoStProof
	Peer                []byte
	Multiaddrs          [][]byte
}

// CreateMinerReturn reports the addresses assigned to a newly created
// miner.
type CreateMinerReturn struct {
	IDAddress     address.Address
	RobustAddress address.Address
}

// MinerRawPowerReturn reports a single miner's raw byte power and whether
// it meets the network's consensus minimum.
type MinerRawPowerReturn struct {
	RawBytePower          types.BigInt
	MeetsConsensusMinimum bool
}

var lengthBufCreateMinerParams = []byte{133}

// MarshalCBOR encodes CreateMinerParams as a 5-element array
func (t *CreateMinerParams) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufCreateMinerParams); err != nil {
		return err
	}

	if err := t.Owner.MarshalCBOR(w); err != nil {
		return err
	}

	if err := t.Worker.MarshalCBOR(w); err != nil {
		return err
	}

	if err := types.Int64(t.WindowPoStProofType).MarshalCBOR(w); err != nil {
		return err
	}

	if err := cbg.WriteMajorTypeHeader(w, cbg.MajByteString, uint64(len(t.Peer))); err != nil {
		return err
	}
	if _, err := w.Write(t.Peer); err != nil {
		return err
	}

	if err := cbg.WriteMajorTypeHeader(w, cbg.MajArray, uint64(len(t.Multiaddrs))); err != nil {
		return err
	}
	for _, ma := range t.Multiaddrs {
		if err := cbg.WriteMajorTypeHeader(w, cbg.MajByteString, uint64(len(ma))); err != nil {
			return err
		}
		if _, err := w.Write(ma); err != nil {
			return err
		}
	}

	return nil
}

// UnmarshalCBOR decodes CreateMinerParams, validating arity
func (t *CreateMinerParams) UnmarshalCBOR(br io.Reader) error {
	*t = CreateMinerParams{}

	maj, extra, err := cbg.CborReadHeader(br)
	if err != nil {
		return err
	}

	if maj != cbg.MajArray {
		return xerrors.Errorf("cbor input for create miner params should be an array: %w", types.ErrMalformedWireData)
	}

	if extra != 5 {
		return xerrors.Errorf("cbor input for create miner params had wrong number of fields (%d): %w", extra, types.ErrMalformedWireData)
	}

	if err := t.Owner.UnmarshalCBOR(br); err != nil {
		return xerrors.Errorf("unmarshaling owner address: %w", err)
	}

	if err := t.Worker.UnmarshalCBOR(br); err != nil {
		return xerrors.Errorf("unmarshaling worker address: %w", err)
	}

	var proof types.Int64
	if err := proof.UnmarshalCBOR(br); err != nil {
		return err
	}
	t.WindowPoStProofType = abi.RegisteredPoStProof(proof)

	if t.Peer, err = readByteString(br); err != nil {
		return err
	}

	maj, extra, err = cbg.CborReadHeader(br)
	if err != nil {
		return err
	}

	if maj != cbg.MajArray {
		return xerrors.Errorf("cbor input for multiaddrs should be an array: %w", types.ErrMalformedWireData)
	}

	if extra > cbg.MaxLength {
		return xerrors.Errorf("multiaddr list too long (%d): %w", extra, types.ErrMalformedWireData)
	}

	if extra > 0 {
		t.Multiaddrs = make([][]byte, extra)
	}
	for i := 0; i < int(extra); i++ {
		if t.Multiaddrs[i], err = readByteString(br); err != nil {
			return err
		}
	}

	return nil
}

var lengthBufCreateMinerReturn = []byte{130}

// MarshalCBOR encodes CreateMinerReturn as a 2-element array
func (t *CreateMinerReturn) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufCreateMinerReturn); err != nil {
		return err
	}

	if err := t.IDAddress.MarshalCBOR(w); err != nil {
		return err
	}

	if err := t.RobustAddress.MarshalCBOR(w); err != nil {
		return err
	}

	return nil
}

// UnmarshalCBOR decodes CreateMinerReturn, validating arity
func (t *CreateMinerReturn) UnmarshalCBOR(br io.Reader) error {
	*t = CreateMinerReturn{}

	maj, extra, err := cbg.CborReadHeader(br)
	if err != nil {
		return err
	}

	if maj != cbg.MajArray {
		return xerrors.Errorf("cbor input for create miner return should be an array: %w", types.ErrMalformedWireData)
	}

	if extra != 2 {
		return xerrors.Errorf("cbor input for create miner return had wrong number of fields (%d): %w", extra, types.ErrMalformedWireData)
	}

	if err := t.IDAddress.UnmarshalCBOR(br); err != nil {
		return xerrors.Errorf("unmarshaling id address: %w", err)
	}

	if err := t.RobustAddress.UnmarshalCBOR(br); err != nil {
		return xerrors.Errorf("unmarshaling robust address: %w", err)
	}

	return nil
}

var lengthBufMinerRawPowerReturn = []byte{130}

// MarshalCBOR encodes MinerRawPowerReturn as a 2-element array
func (t *MinerRawPowerReturn) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufMinerRawPowerReturn); err != nil {
		return err
	}

	if err := t.RawBytePower.MarshalCBOR(w); err != nil {
		return err
	}

	if err := cbg.WriteBool(w, t.MeetsConsensusMinimum); err != nil {
		return err
	}

	return nil
}

// UnmarshalCBOR decodes MinerRawPowerReturn, validating arity
func (t *MinerRawPowerReturn) UnmarshalCBOR(br io.Reader) error {
	*t = MinerRawPowerReturn{}

	maj, extra, err := cbg.CborReadHeader(br)
	if err != nil {
		return err
	}

	if maj != cbg.MajArray {
		return xerrors.Errorf("cbor input for miner raw power return should be an array: %w", types.ErrMalformedWireData)
	}

	if extra != 2 {
		return xerrors.Errorf("cbor input for miner raw power return had wrong number of fields (%d): %w", extra, types.ErrMalformedWireData)
	}

	if err := t.RawBytePower.UnmarshalCBOR(br); err != nil {
		return err
	}

	maj, extra, err = cbg.CborReadHeader(br)
	if err != nil {
		return err
	}

	if maj != cbg.MajOther {
		return xerrors.Errorf("cbor input for consensus minimum flag was not a bool: %w", types.ErrMalformedWireData)
	}

	switch extra {
	case 20:
		t.MeetsConsensusMinimum = false
	case 21:
		t.MeetsConsensusMinimum = true
	default:
		return xerrors.Errorf("cbor input for consensus minimum flag was not a bool (%d): %w", extra, types.ErrMalformedWireData)
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
