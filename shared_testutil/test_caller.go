package shared_testutil

import (
	"context"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/go-actor-api/types"
)

// TestCall records the arguments of one invocation of the call primitive
type TestCall struct {
	Target   abi.ActorID
	Method   abi.MethodNum
	Codec    uint64
	Params   []byte
	Value    types.BigInt
	ReadOnly bool
}

// TestCaller is a scripted stand-in for the host call primitive. It records
// every invocation and answers each one with the configured exit code,
// response bytes and error.
type TestCaller struct {
	ExitCode exitcode.ExitCode
	Response []byte
	Err      error

	Calls []TestCall
}

// NewTestCaller builds a TestCaller answering with exit code 0 and the
// given response bytes
func NewTestCaller(response []byte) *TestCaller {
	return &TestCaller{Response: response}
}

// NewFailingTestCaller builds a TestCaller reporting the given nonzero exit
// code and response bytes
func NewFailingTestCaller(code exitcode.ExitCode, response []byte) *TestCaller {
	return &TestCaller{ExitCode: code, Response: response}
}

// CallByID records the mutating call and returns the scripted result
func (tc *TestCaller) CallByID(ctx context.Context, target abi.ActorID, method abi.MethodNum, codec uint64, params []byte, value types.BigInt) (exitcode.ExitCode, []byte, error) {
	tc.Calls = append(tc.Calls, TestCall{
		Target: target,
		Method: method,
		Codec:  codec,
		Params: params,
		Value:  value,
	})
	return tc.ExitCode, tc.Response, tc.Err
}

// CallByIDReadOnly records the read-only call and returns the scripted
// result
func (tc *TestCaller) CallByIDReadOnly(ctx context.Context, target abi.ActorID, method abi.MethodNum, codec uint64, params []byte) (exitcode.ExitCode, []byte, error) {
	tc.Calls = append(tc.Calls, TestCall{
		Target:   target,
		Method:   method,
		Codec:    codec,
		Params:   params,
		ReadOnly: true,
	})
	return tc.ExitCode, tc.Response, tc.Err
}

// LastCall returns the most recent recorded call, or the zero value if no
// call was made
func (tc *TestCaller) LastCall() TestCall {
	if len(tc.Calls) == 0 {
		return TestCall{}
	}
	return tc.Calls[len(tc.Calls)-1]
}
