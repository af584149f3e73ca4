package types_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-actor-api/types"
)

func TestBatchReturnRoundTrip(t *testing.T) {
	in := &types.BatchReturn{
		SuccessCount: 3,
		FailCodes: []types.FailCode{
			{Idx: 2, Code: 5},
			{Idx: 7, Code: 9},
		},
	}

	buf := new(bytes.Buffer)
	require.NoError(t, in.MarshalCBOR(buf))

	// [3, [[2, 5], [7, 9]]]
	assert.Equal(t, []byte{0x82, 0x03, 0x82, 0x82, 0x02, 0x05, 0x82, 0x07, 0x09}, buf.Bytes())

	var out types.BatchReturn
	require.NoError(t, out.UnmarshalCBOR(buf))

	assert.Equal(t, uint32(3), out.SuccessCount)
	require.Len(t, out.FailCodes, 2)
	assert.Equal(t, types.FailCode{Idx: 2, Code: 5}, out.FailCodes[0])
	assert.Equal(t, types.FailCode{Idx: 7, Code: 9}, out.FailCodes[1])
	assert.Equal(t, 5, out.Size())
	assert.False(t, out.AllOk())
}

func TestBatchReturnAllOk(t *testing.T) {
	in := &types.BatchReturn{SuccessCount: 4}

	buf := new(bytes.Buffer)
	require.NoError(t, in.MarshalCBOR(buf))

	var out types.BatchReturn
	require.NoError(t, out.UnmarshalCBOR(buf))

	assert.True(t, out.AllOk())
	assert.Equal(t, 4, out.Size())
}

func TestBatchReturnWrongArityFails(t *testing.T) {
	// a 3-element outer array never decodes, whatever the elements are
	var out types.BatchReturn
	err := out.UnmarshalCBOR(bytes.NewReader([]byte{0x83, 0x03, 0x80, 0x00}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMalformedWireData))
}

func TestFailCodeWrongArityFails(t *testing.T) {
	var out types.FailCode
	err := out.UnmarshalCBOR(bytes.NewReader([]byte{0x83, 0x02, 0x05, 0x00}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMalformedWireData))
}

func TestFailCodeWidthCheck(t *testing.T) {
	// index 2^32 does not fit the declared 32-bit width
	var out types.FailCode
	err := out.UnmarshalCBOR(bytes.NewReader([]byte{0x82, 0x1b, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x05}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMalformedWireData))
}
