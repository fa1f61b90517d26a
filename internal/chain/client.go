package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/config"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ProjectView 链上项目视图，对应getProject返回的tuple
type ProjectView struct {
	Name         string   `abi:"name"`
	StartTime    uint64   `abi:"start_time"`
	EndTime      uint64   `abi:"end_time"`
	Goal         *big.Int `abi:"goal"`
	TotalPledged *big.Int `abi:"total_pledged"`
}

// Client CrowdTrust合约客户端。提交交易后不等待上链，
// 确认状态由调用方用IsTransactionConfirmed轮询。
type Client struct {
	client       *ethclient.Client
	privateKey   *ecdsa.PrivateKey
	chainId      *big.Int
	ContractAddr common.Address
	contractABI  abi.ABI
	bound        *bind.BoundContract
}

// Init 连接RPC节点并绑定CrowdTrust合约
func Init(cfg config.ChainConfig) (*Client, error) {
	client, err := ethclient.Dial(cfg.RpcUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ethereum client: %w", err)
	}

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	contractAddr := common.HexToAddress(cfg.Contract)

	parsedABI, err := abi.JSON(strings.NewReader(crowdtrustABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}

	return &Client{
		client:       client,
		privateKey:   privateKey,
		chainId:      big.NewInt(cfg.ChainId),
		ContractAddr: contractAddr,
		contractABI:  parsedABI,
		bound:        bind.NewBoundContract(contractAddr, parsedABI, client, client, client),
	}, nil
}

// GetAccountAddress 获取签名账户地址
func (c *Client) GetAccountAddress() common.Address {
	return crypto.PubkeyToAddress(c.privateKey.PublicKey)
}

// auth 构造交易签名授权
func (c *Client) auth(ctx context.Context, value *big.Int) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(c.privateKey, c.chainId)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	opts.Value = value
	return opts, nil
}

// CreateProject 在链上创建项目，返回已提交的交易
func (c *Client) CreateProject(ctx context.Context, name string, startTime, endTime uint64, goal *big.Int) (*types.Transaction, error) {
	opts, err := c.auth(ctx, nil)
	if err != nil {
		return nil, err
	}
	tx, err := c.bound.Transact(opts, "createProject", name, startTime, endTime, goal)
	if err != nil {
		return nil, fmt.Errorf("createProject transaction failed: %w", err)
	}
	return tx, nil
}

// BackProject 支持项目，value为随交易支付的金额
func (c *Client) BackProject(ctx context.Context, projectId uint64, value *big.Int) (*types.Transaction, error) {
	opts, err := c.auth(ctx, value)
	if err != nil {
		return nil, err
	}
	tx, err := c.bound.Transact(opts, "backProject", projectId)
	if err != nil {
		return nil, fmt.Errorf("backProject transaction failed: %w", err)
	}
	return tx, nil
}

// Refund 申请退款
func (c *Client) Refund(ctx context.Context, projectId uint64, amount *big.Int) (*types.Transaction, error) {
	opts, err := c.auth(ctx, nil)
	if err != nil {
		return nil, err
	}
	tx, err := c.bound.Transact(opts, "refund", projectId, amount)
	if err != nil {
		return nil, fmt.Errorf("refund transaction failed: %w", err)
	}
	return tx, nil
}

// GetProject 读取链上项目视图
func (c *Client) GetProject(ctx context.Context, id uint64) (*ProjectView, error) {
	var out []interface{}
	err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, "getProject", id)
	if err != nil {
		return nil, fmt.Errorf("getProject call failed: %w", err)
	}
	view := *abi.ConvertType(out[0], new(ProjectView)).(*ProjectView)
	return &view, nil
}

// GetPledge 读取某地址在项目上的链上支持金额
func (c *Client) GetPledge(ctx context.Context, projectId uint64, backer common.Address) (*big.Int, error) {
	var out []interface{}
	err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, "getPledge", projectId, backer)
	if err != nil {
		return nil, fmt.Errorf("getPledge call failed: %w", err)
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// NextId 读取下一个项目ID
func (c *Client) NextId(ctx context.Context) (uint64, error) {
	var out []interface{}
	err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, "next_id")
	if err != nil {
		return 0, fmt.Errorf("next_id call failed: %w", err)
	}
	return *abi.ConvertType(out[0], new(uint64)).(*uint64), nil
}

// GetLatestBlock 获取最新区块号
func (c *Client) GetLatestBlock(ctx context.Context) (uint64, error) {
	header, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, err
	}
	return header.Number.Uint64(), nil
}

// GetTransactionReceipt 获取交易回执
func (c *Client) GetTransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return c.client.TransactionReceipt(ctx, txHash)
}

// IsTransactionConfirmed 检查交易是否已确认
func (c *Client) IsTransactionConfirmed(ctx context.Context, txHash common.Hash, confirmations int) (bool, error) {
	receipt, err := c.GetTransactionReceipt(ctx, txHash)
	if err != nil {
		return false, err
	}
	if receipt == nil {
		return false, nil
	}

	latestBlock, err := c.GetLatestBlock(ctx)
	if err != nil {
		return false, err
	}
	return latestBlock >= receipt.BlockNumber.Uint64()+uint64(confirmations), nil
}

// GetLogs 获取合约在指定区块范围内的日志
func (c *Client) GetLogs(ctx context.Context, fromBlock, toBlock uint64) ([]types.Log, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{c.ContractAddr},
	}
	return c.client.FilterLogs(ctx, query)
}
