// Package chain abstracts blockchain access for the settlement engines: hot
// wallet balances, signed transfers out, and receipt verification of
// transfers in.
package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/tukarid/tukarbot/internal/config"
	"go.uber.org/zap"
)

var (
	ErrUnknownNetwork = errors.New("unknown network")
	ErrSendFailed     = errors.New("broadcast failed")
	ErrTxNotFound     = errors.New("transaction not found")
	ErrNotConfirmed   = errors.New("transaction not confirmed")
	ErrTxReverted     = errors.New("transaction reverted")
	ErrWrongSender    = errors.New("sender does not match")
	ErrWrongRecipient = errors.New("recipient is not the hot wallet")
	ErrNoTransfer     = errors.New("no matching transfer found")
)

const (
	gasLimitNative = 60000
	gasLimitToken  = 120000

	erc20ABI = `[
		{"name":"balanceOf","type":"function","stateMutability":"view","inputs":[{"name":"_owner","type":"address"}],"outputs":[{"name":"balance","type":"uint256"}]},
		{"name":"transfer","type":"function","stateMutability":"nonpayable","inputs":[{"name":"_to","type":"address"},{"name":"_value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]}
	]`
)

var transferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// Asset identifies one deliverable token on one network. An empty Contract
// means the network's native coin.
type Asset struct {
	Token    string
	Network  string
	Contract string
	Decimals int
}

func (a Asset) native() bool { return a.Contract == "" }

type Gateway struct {
	cfg *config.Config
	hot common.Address
	key *ecdsa.PrivateKey
	abi abi.ABI

	mu       sync.Mutex
	clients  map[string]*ethclient.Client
	chainIDs map[string]*big.Int
}

func New(cfg *config.Config) (*Gateway, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.HotWalletKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("can't parse hot wallet key: %w", err)
	}

	hot := crypto.PubkeyToAddress(key.PublicKey)
	if cfg.HotWallet != "" && !strings.EqualFold(cfg.HotWallet, hot.Hex()) {
		return nil, fmt.Errorf("hot wallet %s does not match key address %s", cfg.HotWallet, hot.Hex())
	}

	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("can't parse erc20 abi: %w", err)
	}

	return &Gateway{
		cfg:      cfg,
		hot:      hot,
		key:      key,
		abi:      parsed,
		clients:  make(map[string]*ethclient.Client),
		chainIDs: make(map[string]*big.Int),
	}, nil
}

func (g *Gateway) HotWallet() common.Address { return g.hot }

func (g *Gateway) client(ctx context.Context, network string) (*ethclient.Client, *big.Int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	cl, ok := g.clients[network]
	if !ok {
		rpc, found := g.cfg.RPC(network)
		if !found {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnknownNetwork, network)
		}
		var err error
		cl, err = ethclient.DialContext(ctx, rpc)
		if err != nil {
			return nil, nil, fmt.Errorf("can't dial %s rpc: %w", network, err)
		}
		g.clients[network] = cl
	}

	chainID, ok := g.chainIDs[network]
	if !ok {
		var err error
		chainID, err = cl.ChainID(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("can't fetch %s chain id: %w", network, err)
		}
		g.chainIDs[network] = chainID
	}

	return cl, chainID, nil
}

// HotBalance returns the hot wallet's balance of the asset in minor token
// units, for liquidity checks.
func (g *Gateway) HotBalance(ctx context.Context, asset Asset) (*big.Int, error) {
	cl, _, err := g.client(ctx, asset.Network)
	if err != nil {
		return nil, err
	}

	if asset.native() {
		return cl.BalanceAt(ctx, g.hot, nil)
	}

	data, err := g.abi.Pack("balanceOf", g.hot)
	if err != nil {
		return nil, fmt.Errorf("can't pack balanceOf: %w", err)
	}
	contract := common.HexToAddress(asset.Contract)
	out, err := cl.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("balanceOf call failed: %w", err)
	}
	return new(big.Int).SetBytes(out), nil
}

// Send signs and broadcasts a transfer of amountWei to the destination. The
// transaction hash is returned even when the broadcast errors, so the caller
// can reconcile an unknown outcome by polling for the receipt.
func (g *Gateway) Send(ctx context.Context, asset Asset, to string, amountWei *big.Int) (string, error) {
	cl, chainID, err := g.client(ctx, asset.Network)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrSendFailed, err)
	}

	nonce, err := cl.PendingNonceAt(ctx, g.hot)
	if err != nil {
		return "", fmt.Errorf("%w: nonce: %s", ErrSendFailed, err)
	}
	head, err := cl.HeaderByNumber(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("%w: head: %s", ErrSendFailed, err)
	}

	dest := common.HexToAddress(to)
	gasLimit := uint64(gasLimitNative)
	value := amountWei
	var data []byte
	txTo := dest

	if !asset.native() {
		gasLimit = gasLimitToken
		value = big.NewInt(0)
		txTo = common.HexToAddress(asset.Contract)
		data, err = g.abi.Pack("transfer", dest, amountWei)
		if err != nil {
			return "", fmt.Errorf("%w: pack transfer: %s", ErrSendFailed, err)
		}
	}

	// Priority-fee strategy when the network reports a base fee, legacy gas
	// price otherwise.
	var tx *types.Transaction
	if head.BaseFee != nil {
		tip := big.NewInt(2_000_000_000) // 2 gwei
		feeCap := new(big.Int).Add(head.BaseFee, tip)
		tx = types.NewTx(&types.DynamicFeeTx{
			ChainID:   chainID,
			Nonce:     nonce,
			GasTipCap: tip,
			GasFeeCap: feeCap,
			Gas:       gasLimit,
			To:        &txTo,
			Value:     value,
			Data:      data,
		})
	} else {
		gasPrice, err := cl.SuggestGasPrice(ctx)
		if err != nil {
			return "", fmt.Errorf("%w: gas price: %s", ErrSendFailed, err)
		}
		tx = types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			GasPrice: gasPrice,
			Gas:      gasLimit,
			To:       &txTo,
			Value:    value,
			Data:     data,
		})
	}

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), g.key)
	if err != nil {
		return "", fmt.Errorf("%w: sign: %s", ErrSendFailed, err)
	}

	hash := signed.Hash().Hex()
	if err := cl.SendTransaction(ctx, signed); err != nil {
		zap.L().Error("broadcast failed",
			zap.String("txHash", hash),
			zap.String("network", asset.Network),
			zap.Error(err))
		return hash, fmt.Errorf("%w: %s", ErrSendFailed, err)
	}
	return hash, nil
}

// Mined reports whether the transaction has a mined receipt. It is used to
// confirm that a failed broadcast really never landed before rolling back.
func (g *Gateway) Mined(ctx context.Context, asset Asset, txHash string) (bool, error) {
	cl, _, err := g.client(ctx, asset.Network)
	if err != nil {
		return false, err
	}
	_, err = cl.TransactionReceipt(ctx, common.HexToHash(txHash))
	if errors.Is(err, ethereum.NotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeliveredAmount verifies a deposit transaction and returns the amount that
// actually reached the hot wallet, in minor token units. For a native
// transfer it checks sender and recipient directly; for a token transfer it
// sums the contract's Transfer events from sender to the hot wallet, so a
// transaction containing several partial transfers still verifies.
func (g *Gateway) DeliveredAmount(ctx context.Context, asset Asset, txHash, sender string) (*big.Int, error) {
	cl, chainID, err := g.client(ctx, asset.Network)
	if err != nil {
		return nil, err
	}

	hash := common.HexToHash(txHash)
	tx, pending, err := cl.TransactionByHash(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return nil, ErrTxNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't fetch transaction: %w", err)
	}
	if pending {
		return nil, ErrNotConfirmed
	}

	receipt, err := cl.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return nil, ErrNotConfirmed
	}
	if err != nil {
		return nil, fmt.Errorf("can't fetch receipt: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, ErrTxReverted
	}

	from := common.HexToAddress(sender)

	if asset.native() {
		if tx.To() == nil || *tx.To() != g.hot {
			return nil, ErrWrongRecipient
		}
		actual, err := types.Sender(types.LatestSignerForChainID(chainID), tx)
		if err != nil {
			return nil, fmt.Errorf("can't recover sender: %w", err)
		}
		if actual != from {
			return nil, ErrWrongSender
		}
		return tx.Value(), nil
	}

	total := sumTransferLogs(receipt.Logs, common.HexToAddress(asset.Contract), from, g.hot)
	if total.Sign() == 0 {
		return nil, ErrNoTransfer
	}
	return total, nil
}

// sumTransferLogs adds up every Transfer event emitted by contract whose
// from/to topics match the expected pair.
func sumTransferLogs(logs []*types.Log, contract, from, to common.Address) *big.Int {
	total := new(big.Int)
	for _, l := range logs {
		if l.Address != contract || len(l.Topics) < 3 || l.Topics[0] != transferTopic {
			continue
		}
		logFrom := common.BytesToAddress(l.Topics[1].Bytes())
		logTo := common.BytesToAddress(l.Topics[2].Bytes())
		if logFrom != from || logTo != to {
			continue
		}
		total.Add(total, new(big.Int).SetBytes(l.Data))
	}
	return total
}
