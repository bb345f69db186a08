package keystore

import (
	"path/filepath"
	"testing"

	"github.com/Doner357/TacoPKM-CLI/internal/xerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateThenDecryptRoundTrips(t *testing.T) {
	dir := t.TempDir()
	s := Open(filepath.Join(dir, "keystore.json"))

	addr, err := s.Create("correct horse battery staple")
	require.NoError(t, err)

	signer, err := s.Decrypt("correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, addr, signer.Address())
}

func TestAddressWithoutDecryptAgreesWithDecrypt(t *testing.T) {
	dir := t.TempDir()
	s := Open(filepath.Join(dir, "keystore.json"))
	_, err := s.Create("hunter2-hunter2")
	require.NoError(t, err)

	shallow, err := s.AddressWithoutDecrypt()
	require.NoError(t, err)

	signer, err := s.Decrypt("hunter2-hunter2")
	require.NoError(t, err)

	assert.Equal(t, signer.Address(), shallow)
}

func TestDecryptWrongPasswordIsAuthKind(t *testing.T) {
	dir := t.TempDir()
	s := Open(filepath.Join(dir, "keystore.json"))
	_, err := s.Create("the-real-password")
	require.NoError(t, err)

	_, err = s.Decrypt("not-the-real-password")
	require.Error(t, err)
	var xerr *xerrors.Error
	require.True(t, xerrors.As(err, &xerr))
	assert.Equal(t, xerrors.KindAuth, xerr.Kind)
}

func TestEmptyPasswordRejected(t *testing.T) {
	dir := t.TempDir()
	s := Open(filepath.Join(dir, "keystore.json"))
	_, err := s.Create("")
	assert.Error(t, err)
}

func TestImportRejectsGarbageKey(t *testing.T) {
	dir := t.TempDir()
	s := Open(filepath.Join(dir, "keystore.json"))
	_, err := s.Import("not-hex", "password123")
	assert.Error(t, err)
}

func TestCreateRefusesToClobberExisting(t *testing.T) {
	dir := t.TempDir()
	s := Open(filepath.Join(dir, "keystore.json"))
	_, err := s.Create("first-password")
	require.NoError(t, err)

	_, err = s.Create("second-password")
	assert.Error(t, err)
}
