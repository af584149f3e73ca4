package account_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cborutil "github.com/filecoin-project/go-cbor-util"

	"github.com/filecoin-project/go-actor-api/account"
	"github.com/filecoin-project/go-actor-api/actor"
	"github.com/filecoin-project/go-actor-api/shared_testutil"
	"github.com/filecoin-project/go-actor-api/types"
)

func TestWireConstants(t *testing.T) {
	assert.EqualValues(t, 2643134072, account.MethodAuthenticateMessage)
	assert.EqualValues(t, 3726118371, account.MethodUniversalReceiverHook)
}

func TestAuthenticateMessage(t *testing.T) {
	caller := shared_testutil.NewTestCaller(nil)
	client := account.NewClient(caller)

	params := &account.AuthenticateMessageParams{
		Signature: []byte("a signature"),
		Message:   []byte("a message"),
	}

	code, err := client.AuthenticateMessage(context.Background(), abi.ActorID(1001), params)
	require.NoError(t, err)
	assert.Equal(t, exitcode.Ok, code)

	expectedParams, err := cborutil.Dump(params)
	require.NoError(t, err)

	call := caller.LastCall()
	assert.Equal(t, abi.ActorID(1001), call.Target)
	assert.Equal(t, account.MethodAuthenticateMessage, call.Method)
	assert.Equal(t, actor.CborCodec, call.Codec)
	assert.Equal(t, expectedParams, call.Params)
	assert.True(t, call.ReadOnly)
}

func TestAuthenticateMessageRejected(t *testing.T) {
	caller := shared_testutil.NewFailingTestCaller(exitcode.ErrIllegalArgument, nil)
	client := account.NewClient(caller)

	code, err := client.AuthenticateMessage(context.Background(), abi.ActorID(1001), &account.AuthenticateMessageParams{})
	require.NoError(t, err)
	assert.Equal(t, exitcode.ErrIllegalArgument, code)
}

func TestUniversalReceiverHook(t *testing.T) {
	caller := shared_testutil.NewTestCaller([]byte("recipient data"))
	client := account.NewClient(caller)

	params := &types.UniversalReceiverParams{Type_: 4, Payload: []byte("the payload")}
	value := types.FromInt(99)

	code, data, err := client.UniversalReceiverHook(context.Background(), abi.ActorID(2002), params, value)
	require.NoError(t, err)
	assert.Equal(t, exitcode.Ok, code)
	assert.Equal(t, []byte("recipient data"), data)

	expectedParams, err := cborutil.Dump(params)
	require.NoError(t, err)

	call := caller.LastCall()
	assert.Equal(t, abi.ActorID(2002), call.Target)
	assert.Equal(t, account.MethodUniversalReceiverHook, call.Method)
	assert.Equal(t, actor.CborCodec, call.Codec)
	assert.Equal(t, expectedParams, call.Params)
	assert.True(t, call.Value.Equals(value))
	assert.False(t, call.ReadOnly)
}

func TestUniversalReceiverHookRemoteFailure(t *testing.T) {
	caller := shared_testutil.NewFailingTestCaller(exitcode.ExitCode(21), []byte{0xff, 0xff})
	client := account.NewClient(caller)

	code, data, err := client.UniversalReceiverHook(context.Background(), abi.ActorID(2002), &types.UniversalReceiverParams{}, types.Zero())
	require.NoError(t, err)
	assert.Equal(t, exitcode.ExitCode(21), code)
	assert.Nil(t, data)
}

func TestAuthenticateMessageParamsRoundTrip(t *testing.T) {
	in := &account.AuthenticateMessageParams{
		Signature: []byte{0x01, 0x02, 0x03},
		Message:   []byte{0x04, 0x05},
	}

	buf := new(bytes.Buffer)
	require.NoError(t, in.MarshalCBOR(buf))

	var out account.AuthenticateMessageParams
	require.NoError(t, out.UnmarshalCBOR(buf))

	assert.Equal(t, in.Signature, out.Signature)
	assert.Equal(t, in.Message, out.Message)
}

func TestAuthenticateMessageParamsWrongArityFails(t *testing.T) {
	var out account.AuthenticateMessageParams
	err := out.UnmarshalCBOR(bytes.NewReader([]byte{0x81, 0x40}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMalformedWireData))
}
