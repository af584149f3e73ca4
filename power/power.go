package power

import (
	"context"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"
	logging "github.com/ipfs/go-log/v2"

	"github.com/filecoin-project/go-actor-api/actor"
	"github.com/filecoin-project/go-actor-api/types"
)

var log = logging.Logger("actorapi-power")

// ActorID is the fixed identifier of the built-in storage power actor (f04)
const ActorID = abi.ActorID(4)

// Method numbers of the power actor's exported operations. These are
// wire-level identifiers agreed with the remote implementation and must
// match it exactly.
const (
	MethodCreateMiner         = abi.MethodNum(1173380165)
	MethodNetworkRawPower     = abi.MethodNum(931722534)
	MethodMinerRawPower       = abi.MethodNum(3753401894)
	MethodMinerCount          = abi.MethodNum(3470093699)
	MethodMinerConsensusCount = abi.MethodNum(196739875)
)

// Client invokes operations on the built-in storage power actor through a
// host-provided call primitive. Every operation is a single atomic
// request/response pair: a nonzero exit code is reported as a value with a
// zero result, and only a structurally corrupt response to a successful
// call surfaces as an error.
type Client struct {
	caller actor.Caller
}

// NewClient creates a power actor client around the given call primitive
func NewClient(caller actor.Caller) *Client {
	return &Client{caller: caller}
}

// CreateMiner registers a new storage miner, transferring value to cover
// its initial pledge
func (c *Client) CreateMiner(ctx context.Context, params *CreateMinerParams, value types.BigInt) (exitcode.ExitCode, *CreateMinerReturn, error) {
	var ret CreateMinerReturn
	code, err := actor.Call(ctx, c.caller, ActorID, MethodCreateMiner, params, value, &ret)
	if err != nil {
		log.Errorf("create miner call failed: %s", err)
		return code, nil, err
	}
	if !code.IsSuccess() {
		return code, nil, nil
	}

	return code, &ret, nil
}

// MinerCount returns the total number of registered miners
func (c *Client) MinerCount(ctx context.Context) (exitcode.ExitCode, uint64, error) {
	var count types.Uint64
	code, err := actor.CallReadOnly(ctx, c.caller, ActorID, MethodMinerCount, nil, &count)
	if err != nil || !code.IsSuccess() {
		return code, 0, err
	}

	return code, uint64(count), nil
}

// MinerConsensusCount returns the number of miners meeting the consensus
// minimum power
func (c *Client) MinerConsensusCount(ctx context.Context) (exitcode.ExitCode, uint64, error) {
	var count types.Uint64
	code, err := actor.CallReadOnly(ctx, c.caller, ActorID, MethodMinerConsensusCount, nil, &count)
	if err != nil || !code.IsSuccess() {
		return code, 0, err
	}

	return code, uint64(count), nil
}

// NetworkRawPower returns the network's total raw byte power
func (c *Client) NetworkRawPower(ctx context.Context) (exitcode.ExitCode, types.BigInt, error) {
	var power types.BigInt
	code, err := actor.CallReadOnly(ctx, c.caller, ActorID, MethodNetworkRawPower, nil, &power)
	if err != nil || !code.IsSuccess() {
		return code, types.EmptyInt, err
	}

	return code, power, nil
}

// MinerRawPower returns the raw byte power claimed by the given miner
func (c *Client) MinerRawPower(ctx context.Context, minerID abi.ActorID) (exitcode.ExitCode, *MinerRawPowerReturn, error) {
	var ret MinerRawPowerReturn
	code, err := actor.CallReadOnly(ctx, c.caller, ActorID, MethodMinerRawPower, types.Uint64(minerID), &ret)
	if err != nil {
		log.Errorf("miner raw power call failed: %s", err)
		return code, nil, err
	}
	if !code.IsSuccess() {
		return code, nil, nil
	}

	return code, &ret, nil
}
