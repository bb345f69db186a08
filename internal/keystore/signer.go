package keystore

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// Signer is a decrypted wallet, usable for exactly this process's
// lifetime; it is never persisted decrypted.
type Signer struct {
	address    common.Address
	privateKey *ecdsa.PrivateKey
}

// Address returns the signer's address.
func (s *Signer) Address() common.Address { return s.address }

// TransactOpts builds go-ethereum bind.TransactOpts for chainID, suitable
// for passing straight into any generated contract binding's write calls.
func (s *Signer) TransactOpts(chainID *big.Int) (*bind.TransactOpts, error) {
	return bind.NewKeyedTransactorWithChainID(s.privateKey, chainID)
}
