package shared_testutil

import (
	"math/rand"

	"github.com/filecoin-project/go-address"

	"github.com/filecoin-project/go-actor-api/power"
	"github.com/filecoin-project/go-actor-api/types"
)

// MakeTestBigInt generates a random non-zero big int
func MakeTestBigInt() types.BigInt {
	return types.FromInt(rand.Uint64() | 1)
}

// MakeTestDealLabel generates a random string deal label
func MakeTestDealLabel() types.DealLabel {
	label, err := types.NewLabelFromString("label-" + string(rune('a'+rand.Intn(26))))
	if err != nil {
		panic(err)
	}
	return label
}

// MakeTestBatchReturn generates a BatchReturn with one failed element
func MakeTestBatchReturn() *types.BatchReturn {
	return &types.BatchReturn{
		SuccessCount: rand.Uint32() % 100,
		FailCodes: []types.FailCode{
			{Idx: rand.Uint32() % 100, Code: 16 + rand.Uint32()%10},
		},
	}
}

// MakeTestCreateMinerParams generates CreateMinerParams with all non-zero
// fields
func MakeTestCreateMinerParams() *power.CreateMinerParams {
	return &power.CreateMinerParams{
		Owner:               address.TestAddress,
		Worker:              address.TestAddress2,
		WindowPoStProofType: 1,
		Peer:                []byte("test peer id"),
		Multiaddrs:          [][]byte{[]byte("test multiaddr")},
	}
}

// MakeTestCreateMinerReturn generates a CreateMinerReturn with all non-zero
// fields
func MakeTestCreateMinerReturn() *power.CreateMinerReturn {
	idAddr, err := address.NewIDAddress(rand.Uint64() % 1000000)
	if err != nil {
		panic(err)
	}
	return &power.CreateMinerReturn{
		IDAddress:     idAddr,
		RobustAddress: address.TestAddress,
	}
}
