package chain

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChainClient(t *testing.T) *Client {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(crowdtrustABI))
	require.NoError(t, err)
	return &Client{contractABI: parsed}
}

func TestContractABI(t *testing.T) {
	client := newTestChainClient(t)

	back, ok := client.contractABI.Methods["backProject"]
	require.True(t, ok)
	assert.Equal(t, "payable", back.StateMutability)
	require.Len(t, back.Inputs, 1)
	assert.Equal(t, "uint64", back.Inputs[0].Type.String())

	create, ok := client.contractABI.Methods["createProject"]
	require.True(t, ok)
	require.Len(t, create.Inputs, 4)
	assert.Equal(t, "string", create.Inputs[0].Type.String())
	assert.Equal(t, "uint256", create.Inputs[3].Type.String())

	_, ok = client.contractABI.Methods["next_id"]
	assert.True(t, ok)

	for _, name := range []string{"Back", "Create", "Refund"} {
		_, ok := client.contractABI.Events[name]
		assert.True(t, ok, "missing event %s", name)
	}
}

func TestParseBackEvent(t *testing.T) {
	client := newTestChainClient(t)
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	amount := big.NewInt(1500000)
	txHash := common.HexToHash("0xabc1")

	event, err := client.ParseEvent(types.Log{
		Topics: []common.Hash{
			client.contractABI.Events["Back"].ID,
			common.BigToHash(big.NewInt(7)),
			common.BytesToHash(owner.Bytes()),
		},
		Data:        common.BigToHash(amount).Bytes(),
		TxHash:      txHash,
		BlockNumber: 42,
	})
	require.NoError(t, err)

	assert.Equal(t, "Back", event.Type)
	assert.Equal(t, uint64(7), event.ProjectId)
	assert.Equal(t, owner, event.Owner)
	assert.Equal(t, 0, event.Amount.Cmp(amount))
	assert.Equal(t, txHash, event.TxHash)
	assert.Equal(t, uint64(42), event.BlockNumber)
}

func TestParseCreateEvent(t *testing.T) {
	client := newTestChainClient(t)
	owner := common.HexToAddress("0x2222222222222222222222222222222222222222")

	event, err := client.ParseEvent(types.Log{
		Topics: []common.Hash{
			client.contractABI.Events["Create"].ID,
			common.BigToHash(big.NewInt(3)),
			common.BytesToHash(owner.Bytes()),
		},
		BlockNumber: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, "Create", event.Type)
	assert.Equal(t, uint64(3), event.ProjectId)
	assert.Equal(t, owner, event.Owner)
	assert.Nil(t, event.Amount)
}

func TestParseRefundEvent(t *testing.T) {
	client := newTestChainClient(t)
	owner := common.HexToAddress("0x3333333333333333333333333333333333333333")

	event, err := client.ParseEvent(types.Log{
		Topics: []common.Hash{
			client.contractABI.Events["Refund"].ID,
			common.BigToHash(big.NewInt(5)),
			common.BytesToHash(owner.Bytes()),
		},
		Data: common.BigToHash(big.NewInt(900)).Bytes(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Refund", event.Type)
	assert.Equal(t, 0, event.Amount.Cmp(big.NewInt(900)))
}

func TestParseEventUnknownSignature(t *testing.T) {
	client := newTestChainClient(t)

	_, err := client.ParseEvent(types.Log{
		Topics: []common.Hash{common.HexToHash("0xdead")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown event signature")

	_, err = client.ParseEvent(types.Log{})
	require.Error(t, err)
}

func TestParseEventInsufficientTopics(t *testing.T) {
	client := newTestChainClient(t)

	_, err := client.ParseEvent(types.Log{
		Topics: []common.Hash{client.contractABI.Events["Back"].ID},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient topics")
}
