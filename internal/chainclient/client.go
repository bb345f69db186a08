// Package chainclient is the single choke point for every contract call:
// it holds the loaded ABI, a read-only provider+contract handle, and —
// after LoadWallet — a signer and writable contract. Every error any call
// produces is routed through xerrors.Translate before it leaves this
// package, so callers above never see a raw RPC error.
package chainclient

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/Doner357/TacoPKM-CLI/internal/keystore"
	"github.com/Doner357/TacoPKM-CLI/internal/xerrors"
)

// Client is the explicit, non-global value threaded through every command.
type Client struct {
	abi             abi.ABI
	contractAddress common.Address
	rpcURL          string

	ec       *ethclient.Client
	contract *bind.BoundContract

	signer  *keystore.Signer
	chainID *big.Int
}

// Dial opens the read-only handle: it connects to rpcURL, canonicalizes
// contractAddress, and confirms reachability by fetching the chain ID.
func Dial(ctx context.Context, rpcURL, contractAddress string) (*Client, error) {
	parsedABI, err := LoadABI()
	if err != nil {
		return nil, err
	}
	if !common.IsHexAddress(contractAddress) {
		return nil, xerrors.New(xerrors.KindValidation, fmt.Sprintf("contract address %q is not well-formed", contractAddress))
	}

	ec, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, xerrors.New(xerrors.KindRPCUnreachable, "could not connect to RPC endpoint").WithCause(err)
	}
	addr := common.HexToAddress(contractAddress)
	contract := bind.NewBoundContract(addr, parsedABI, ec, ec, ec)

	chainID, err := ec.ChainID(ctx)
	if err != nil {
		return nil, xerrors.New(xerrors.KindRPCUnreachable, "RPC endpoint did not respond to a chain id query").WithCause(err)
	}

	return &Client{
		abi:             parsedABI,
		contractAddress: addr,
		rpcURL:          rpcURL,
		ec:              ec,
		contract:        contract,
		chainID:         chainID,
	}, nil
}

// ContractAddress returns the canonicalized contract address in use.
func (c *Client) ContractAddress() common.Address { return c.contractAddress }

// LoadWallet attaches a decrypted signer, enabling the write methods.
func (c *Client) LoadWallet(signer *keystore.Signer) {
	c.signer = signer
}

// HasWallet reports whether a signer has been loaded.
func (c *Client) HasWallet() bool { return c.signer != nil }

// SignerAddress returns the loaded signer's address, or the zero address
// if none is loaded.
func (c *Client) SignerAddress() common.Address {
	if c.signer == nil {
		return common.Address{}
	}
	return c.signer.Address()
}

func (c *Client) transactOpts(value *big.Int) (*bind.TransactOpts, error) {
	if c.signer == nil {
		return nil, xerrors.New(xerrors.KindAuth, "no wallet loaded; this command requires a decrypted signer")
	}
	opts, err := c.signer.TransactOpts(c.chainID)
	if err != nil {
		return nil, fmt.Errorf("building transact options: %w", err)
	}
	if value != nil {
		opts.Value = value
	}
	return opts, nil
}

// call runs a read-only method and classifies any error.
func (c *Client) call(ctx context.Context, out *[]any, method string, args ...any) error {
	opts := &bind.CallOpts{Context: ctx}
	if err := c.contract.Call(opts, out, method, args...); err != nil {
		return c.translate(err)
	}
	return nil
}

// transact submits a write transaction and awaits one confirmation before
// reporting success.
func (c *Client) transact(ctx context.Context, value *big.Int, method string, args ...any) (*types.Receipt, error) {
	opts, err := c.transactOpts(value)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx

	tx, err := c.contract.Transact(opts, method, args...)
	if err != nil {
		return nil, c.translate(err)
	}
	receipt, err := bind.WaitMined(ctx, c.ec, tx)
	if err != nil {
		return nil, c.translate(err)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return receipt, c.translate(fmt.Errorf("execution reverted"))
	}
	return receipt, nil
}

func (c *Client) translate(err error) error {
	return xerrors.Translate(err, &c.abi)
}
