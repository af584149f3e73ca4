package actor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cborutil "github.com/filecoin-project/go-cbor-util"

	"github.com/filecoin-project/go-actor-api/actor"
	"github.com/filecoin-project/go-actor-api/shared_testutil"
	"github.com/filecoin-project/go-actor-api/types"
)

func TestCodecTags(t *testing.T) {
	assert.EqualValues(t, 0x00, actor.NoneCodec)
	assert.EqualValues(t, 0x51, actor.CborCodec)
	assert.EqualValues(t, 0x71, actor.DagCborCodec)
	assert.EqualValues(t, 0, actor.MethodSend)
}

func TestCallSerializesParams(t *testing.T) {
	params := &types.UniversalReceiverParams{Type_: 4, Payload: []byte("data")}
	expected, err := cborutil.Dump(params)
	require.NoError(t, err)

	caller := shared_testutil.NewTestCaller(nil)
	code, err := actor.Call(context.Background(), caller, abi.ActorID(7), abi.MethodNum(99), params, types.NewInt(10), nil)
	require.NoError(t, err)
	assert.Equal(t, exitcode.Ok, code)

	call := caller.LastCall()
	assert.Equal(t, abi.ActorID(7), call.Target)
	assert.Equal(t, abi.MethodNum(99), call.Method)
	assert.Equal(t, actor.CborCodec, call.Codec)
	assert.Equal(t, expected, call.Params)
	assert.True(t, call.Value.Equals(types.NewInt(10)))
	assert.False(t, call.ReadOnly)
}

func TestCallNilParamsSendsEmptyPayload(t *testing.T) {
	caller := shared_testutil.NewTestCaller(nil)
	_, err := actor.Call(context.Background(), caller, abi.ActorID(7), abi.MethodNum(99), nil, types.Zero(), nil)
	require.NoError(t, err)

	call := caller.LastCall()
	assert.Equal(t, actor.NoneCodec, call.Codec)
	assert.Empty(t, call.Params)
}

func TestCallDecodesReturn(t *testing.T) {
	expected := types.FromInt(123456)
	resp, err := cborutil.Dump(&expected)
	require.NoError(t, err)

	caller := shared_testutil.NewTestCaller(resp)

	var out types.BigInt
	code, err := actor.Call(context.Background(), caller, abi.ActorID(7), abi.MethodNum(99), nil, types.Zero(), &out)
	require.NoError(t, err)
	assert.Equal(t, exitcode.Ok, code)
	assert.True(t, out.Equals(expected))
}

func TestCallNonzeroExitSkipsDecode(t *testing.T) {
	// deliberately malformed response bytes: decoding them would fail, so
	// the only way this passes is if they are never touched
	caller := shared_testutil.NewFailingTestCaller(exitcode.ExitCode(17), []byte{0xff, 0xff, 0xff})

	var out types.BigInt
	code, err := actor.Call(context.Background(), caller, abi.ActorID(7), abi.MethodNum(99), nil, types.Zero(), &out)
	require.NoError(t, err)
	assert.Equal(t, exitcode.ExitCode(17), code)
	assert.True(t, out.Nil())
}

func TestCallMalformedResponseFails(t *testing.T) {
	caller := shared_testutil.NewTestCaller([]byte{0x40})

	var out types.BigInt
	_, err := actor.Call(context.Background(), caller, abi.ActorID(7), abi.MethodNum(99), nil, types.Zero(), &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMalformedWireData))
}

func TestCallPropagatesHostError(t *testing.T) {
	hostErr := errors.New("host went away")
	caller := &shared_testutil.TestCaller{Err: hostErr}

	_, err := actor.Call(context.Background(), caller, abi.ActorID(7), abi.MethodNum(99), nil, types.Zero(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, hostErr))
}

func TestCallReadOnly(t *testing.T) {
	caller := shared_testutil.NewTestCaller(nil)
	code, err := actor.CallReadOnly(context.Background(), caller, abi.ActorID(4), abi.MethodNum(2), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, exitcode.Ok, code)

	call := caller.LastCall()
	assert.True(t, call.ReadOnly)
	assert.Equal(t, actor.NoneCodec, call.Codec)
}

func TestSend(t *testing.T) {
	caller := shared_testutil.NewTestCaller(nil)
	code, err := actor.Send(context.Background(), caller, abi.ActorID(1001), types.FromInt(5000))
	require.NoError(t, err)
	assert.Equal(t, exitcode.Ok, code)

	call := caller.LastCall()
	assert.Equal(t, abi.ActorID(1001), call.Target)
	assert.Equal(t, actor.MethodSend, call.Method)
	assert.Equal(t, actor.NoneCodec, call.Codec)
	assert.Empty(t, call.Params)
	assert.True(t, call.Value.Equals(types.FromInt(5000)))
	assert.False(t, call.ReadOnly)
}
