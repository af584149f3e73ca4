package actor

import (
	"bytes"
	"context"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	cborutil "github.com/filecoin-project/go-cbor-util"

	"github.com/filecoin-project/go-actor-api/types"
)

// Codec values tag how the payload bytes of a call should be interpreted
// by the remote side.
const (
	// NoneCodec marks an empty payload
	NoneCodec = uint64(0x00)
	// CborCodec marks a CBOR encoded payload
	CborCodec = uint64(0x51)
	// DagCborCodec marks an IPLD DAG-CBOR encoded payload
	DagCborCodec = uint64(0x71)
)

// MethodSend is the method number of a bare value transfer
const MethodSend = abi.MethodNum(0)

// Caller is the low-level call primitive provided by the host environment.
// It performs a single cross-boundary invocation of a built-in actor and
// reports the remote exit code alongside the raw response bytes. A nonzero
// exit code is an ordinary outcome, not an error: the error return is
// reserved for the host failing to perform the call at all. Cancellation
// and timeouts belong to the host, via ctx.
type Caller interface {
	// CallByID invokes a method on the target actor, transferring value
	CallByID(ctx context.Context, target abi.ActorID, method abi.MethodNum, codec uint64, params []byte, value types.BigInt) (exitcode.ExitCode, []byte, error)

	// CallByIDReadOnly invokes a method on the target actor without value
	// transfer or state mutation
	CallByIDReadOnly(ctx context.Context, target abi.ActorID, method abi.MethodNum, codec uint64, params []byte) (exitcode.ExitCode, []byte, error)
}

// Call performs one mutating request/response round trip: it serializes
// params (nil params sends an empty payload), invokes the primitive, and on
// exit code 0 decodes the response into ret (nil ret discards the
// response). On a nonzero exit code the response bytes are never decoded
// and ret is left untouched, so the caller sees the zero value it passed
// in. Callers must check the exit code before using ret.
func Call(ctx context.Context, c Caller, target abi.ActorID, method abi.MethodNum, params cbg.CBORMarshaler, value types.BigInt, ret cbg.CBORUnmarshaler) (exitcode.ExitCode, error) {
	raw, codec, err := serializeParams(params)
	if err != nil {
		return exitcode.Ok, err
	}

	code, resp, err := c.CallByID(ctx, target, method, codec, raw, value)
	if err != nil {
		return exitcode.Ok, xerrors.Errorf("calling actor %d method %d: %w", target, method, err)
	}

	if !code.IsSuccess() {
		return code, nil
	}

	return exitcode.Ok, deserializeReturn(resp, ret)
}

// CallReadOnly is Call without value transfer or state mutation
func CallReadOnly(ctx context.Context, c Caller, target abi.ActorID, method abi.MethodNum, params cbg.CBORMarshaler, ret cbg.CBORUnmarshaler) (exitcode.ExitCode, error) {
	raw, codec, err := serializeParams(params)
	if err != nil {
		return exitcode.Ok, err
	}

	code, resp, err := c.CallByIDReadOnly(ctx, target, method, codec, raw)
	if err != nil {
		return exitcode.Ok, xerrors.Errorf("calling actor %d method %d: %w", target, method, err)
	}

	if !code.IsSuccess() {
		return code, nil
	}

	return exitcode.Ok, deserializeReturn(resp, ret)
}

// Send transfers value to the target actor with no payload
func Send(ctx context.Context, c Caller, target abi.ActorID, value types.BigInt) (exitcode.ExitCode, error) {
	return Call(ctx, c, target, MethodSend, nil, value, nil)
}

func serializeParams(params cbg.CBORMarshaler) ([]byte, uint64, error) {
	if params == nil {
		return nil, NoneCodec, nil
	}

	raw, err := cborutil.Dump(params)
	if err != nil {
		return nil, 0, xerrors.Errorf("serializing params: %w", err)
	}
	return raw, CborCodec, nil
}

func deserializeReturn(resp []byte, ret cbg.CBORUnmarshaler) error {
	if ret == nil {
		return nil
	}

	if err := ret.UnmarshalCBOR(bytes.NewReader(resp)); err != nil {
		return xerrors.Errorf("deserializing return value: %w", err)
	}
	return nil
}
