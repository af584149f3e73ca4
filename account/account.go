package account

import (
	"context"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"
	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/xerrors"

	cborutil "github.com/filecoin-project/go-cbor-util"

	"github.com/filecoin-project/go-actor-api/actor"
	"github.com/filecoin-project/go-actor-api/types"
)

var log = logging.Logger("actorapi-account")

// Method numbers of the FRC-42 exported account operations. Unlike the
// power actor these are invoked on a caller-chosen target actor.
const (
	MethodAuthenticateMessage   = abi.MethodNum(2643134072)
	MethodUniversalReceiverHook = abi.MethodNum(3726118371)
)

// Client invokes account-level operations on arbitrary target actors
// through a host-provided call primitive.
type Client struct {
	caller actor.Caller
}

// NewClient creates an account client around the given call primitive
func NewClient(caller actor.Caller) *Client {
	return &Client{caller: caller}
}

// AuthenticateMessage asks the target account actor to validate a
// signature over a message. A zero exit code means the signature is valid.
func (c *Client) AuthenticateMessage(ctx context.Context, target abi.ActorID, params *AuthenticateMessageParams) (exitcode.ExitCode, error) {
	code, err := actor.CallReadOnly(ctx, c.caller, target, MethodAuthenticateMessage, params, nil)
	if err != nil {
		log.Errorf("authenticate message call failed: %s", err)
	}
	return code, err
}

// UniversalReceiverHook notifies the target actor that it has been sent
// something, transferring value alongside the typed payload. The recipient
// data returned by the hook is passed through undecoded.
func (c *Client) UniversalReceiverHook(ctx context.Context, target abi.ActorID, params *types.UniversalReceiverParams, value types.BigInt) (exitcode.ExitCode, []byte, error) {
	raw, err := cborutil.Dump(params)
	if err != nil {
		return exitcode.Ok, nil, xerrors.Errorf("serializing params: %w", err)
	}

	code, resp, err := c.caller.CallByID(ctx, target, MethodUniversalReceiverHook, actor.CborCodec, raw, value)
	if err != nil {
		log.Errorf("universal receiver hook call failed: %s", err)
		return code, nil, xerrors.Errorf("calling actor %d method %d: %w", target, MethodUniversalReceiverHook, err)
	}
	if !code.IsSuccess() {
		return code, nil, nil
	}

	return code, resp, nil
}
