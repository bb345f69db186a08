// Package keystore implements the encrypted local wallet: a single V3
// encrypted JSON file at <home>/.tacopkm/keystore.json, built directly on
// github.com/ethereum/go-ethereum/accounts/keystore, which already speaks
// this exact on-disk format.
package keystore

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"

	"github.com/Doner357/TacoPKM-CLI/internal/xerrors"
)

const (
	dirName  = ".tacopkm"
	fileName = "keystore.json"
)

// Path returns the default keystore.json path under home.
func Path(home string) string {
	return filepath.Join(home, dirName, fileName)
}

// Store is a single V3 encrypted keystore file.
type Store struct {
	path string
}

// Open binds a Store to path without touching disk.
func Open(path string) *Store {
	return &Store{path: path}
}

// Exists reports whether the keystore file is already present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Create generates a new random private key, encrypts it with password,
// and writes it to disk. The caller is responsible for confirming an
// overwrite before calling Create on an existing file; this method itself
// refuses to clobber silently.
func (s *Store) Create(password string) (common.Address, error) {
	if password == "" {
		return common.Address{}, xerrors.New(xerrors.KindValidation, "wallet password must not be empty")
	}
	if s.Exists() {
		return common.Address{}, xerrors.New(xerrors.KindValidation, "keystore already exists; confirm the overwrite and remove the existing file first")
	}
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return common.Address{}, fmt.Errorf("generating key: %w", err)
	}
	return s.writeEncrypted(privateKey, password)
}

// Import encrypts an externally supplied hex private key (with or without
// the 0x prefix) and writes it to disk, under the same overwrite contract
// as Create.
func (s *Store) Import(hexPrivateKey, password string) (common.Address, error) {
	if password == "" {
		return common.Address{}, xerrors.New(xerrors.KindValidation, "wallet password must not be empty")
	}
	if s.Exists() {
		return common.Address{}, xerrors.New(xerrors.KindValidation, "keystore already exists; confirm the overwrite and remove the existing file first")
	}
	privateKey, err := crypto.HexToECDSA(trim0x(hexPrivateKey))
	if err != nil {
		return common.Address{}, xerrors.New(xerrors.KindValidation, "invalid private key").WithCause(err)
	}
	return s.writeEncrypted(privateKey, password)
}

func trim0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func (s *Store) writeEncrypted(privateKey *ecdsa.PrivateKey, password string) (common.Address, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return common.Address{}, fmt.Errorf("generating key id: %w", err)
	}
	k := &keystore.Key{
		Id:         id,
		Address:    crypto.PubkeyToAddress(privateKey.PublicKey),
		PrivateKey: privateKey,
	}
	encrypted, err := keystore.EncryptKey(k, password, keystore.StandardScryptN, keystore.StandardScryptP)
	if err != nil {
		return common.Address{}, fmt.Errorf("encrypting key: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return common.Address{}, fmt.Errorf("creating %s: %w", filepath.Dir(s.path), err)
	}
	if err := os.WriteFile(s.path, encrypted, 0o600); err != nil {
		return common.Address{}, fmt.Errorf("writing %s: %w", s.path, err)
	}
	return k.Address, nil
}

// AddressWithoutDecrypt reads only the "address" field of the V3 JSON and
// returns it in checksum form; it never requires a password.
func (s *Store) AddressWithoutDecrypt() (common.Address, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return common.Address{}, xerrors.New(xerrors.KindKeystoreMissing, "no keystore found; run `tpkm wallet create` or `tpkm wallet import`")
		}
		return common.Address{}, fmt.Errorf("reading %s: %w", s.path, err)
	}
	var shallow struct {
		Address string `json:"address"`
	}
	if err := json.Unmarshal(raw, &shallow); err != nil {
		return common.Address{}, xerrors.New(xerrors.KindKeystoreCorrupt, "keystore.json is not valid JSON").WithCause(err)
	}
	if shallow.Address == "" {
		return common.Address{}, xerrors.New(xerrors.KindKeystoreCorrupt, "keystore.json has no address field")
	}
	return common.HexToAddress(shallow.Address), nil
}

// Decrypt opens the keystore with password and returns a Signer. A wrong
// password surfaces as xerrors.KindAuth.
func (s *Store) Decrypt(password string) (*Signer, error) {
	if password == "" {
		return nil, xerrors.New(xerrors.KindAuth, "wallet password must not be empty")
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, xerrors.New(xerrors.KindKeystoreMissing, "no keystore found; run `tpkm wallet create` or `tpkm wallet import`")
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	key, err := keystore.DecryptKey(raw, password)
	if err != nil {
		if err == keystore.ErrDecrypt {
			return nil, xerrors.New(xerrors.KindAuth, "wrong wallet password")
		}
		return nil, xerrors.New(xerrors.KindKeystoreCorrupt, "keystore.json could not be decoded").WithCause(err)
	}
	return &Signer{address: key.Address, privateKey: key.PrivateKey}, nil
}
