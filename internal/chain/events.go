package chain

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Event 解析后的合约事件
type Event struct {
	Type        string
	ProjectId   uint64
	Owner       common.Address
	Amount      *big.Int
	TxHash      common.Hash
	BlockNumber uint64
}

// ParseEvent 解析合约事件日志
func (c *Client) ParseEvent(log types.Log) (*Event, error) {
	if len(log.Topics) == 0 {
		return nil, fmt.Errorf("event log has no topics")
	}
	signature := log.Topics[0].Hex()

	switch signature {
	case c.contractABI.Events["Back"].ID.Hex():
		return c.parseAmountEvent("Back", log)
	case c.contractABI.Events["Refund"].ID.Hex():
		return c.parseAmountEvent("Refund", log)
	case c.contractABI.Events["Create"].ID.Hex():
		return c.parseCreateEvent(log)
	default:
		return nil, fmt.Errorf("unknown event signature: %s", signature)
	}
}

// parseAmountEvent 解析带金额的事件（Back、Refund）
func (c *Client) parseAmountEvent(eventType string, log types.Log) (*Event, error) {
	if len(log.Topics) < 3 {
		return nil, fmt.Errorf("invalid %s event: insufficient topics", eventType)
	}

	event := &Event{
		Type:        eventType,
		ProjectId:   new(big.Int).SetBytes(log.Topics[1].Bytes()).Uint64(),
		Owner:       common.BytesToAddress(log.Topics[2].Bytes()),
		TxHash:      log.TxHash,
		BlockNumber: log.BlockNumber,
	}
	if len(log.Data) > 0 {
		event.Amount = new(big.Int).SetBytes(log.Data)
	}
	return event, nil
}

// parseCreateEvent 解析项目创建事件
func (c *Client) parseCreateEvent(log types.Log) (*Event, error) {
	if len(log.Topics) < 3 {
		return nil, fmt.Errorf("invalid Create event: insufficient topics")
	}

	return &Event{
		Type:        "Create",
		ProjectId:   new(big.Int).SetBytes(log.Topics[1].Bytes()).Uint64(),
		Owner:       common.BytesToAddress(log.Topics[2].Bytes()),
		TxHash:      log.TxHash,
		BlockNumber: log.BlockNumber,
	}, nil
}
