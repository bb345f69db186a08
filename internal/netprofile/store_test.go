package netprofile

import (
	"path/filepath"
	"testing"

	"github.com/Doner357/TacoPKM-CLI/internal/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "networks.json"))
	require.NoError(t, err)
	return s
}

const fakeAddr = "0x0000000000000000000000000000000000dEaD"

func TestAddValidatesAddressAndScheme(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Add("local", "http://127.0.0.1:8545", fakeAddr, true))

	err := s.Add("bad-scheme", "ftp://example.com", fakeAddr, false)
	assert.Error(t, err)

	err = s.Add("bad-addr", "http://example.com", "not-an-address", false)
	assert.Error(t, err)
}

func TestAddWithSetActivePersistsAndRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "networks.json")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Add("local", "http://127.0.0.1:8545", fakeAddr, true))

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "local", reopened.Active())
	_, p, ok := reopened.Show("local")
	require.True(t, ok)
	assert.Equal(t, "http://127.0.0.1:8545", p.RPCURL)
}

func TestRemoveActiveClearsActiveNetwork(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Add("local", "http://127.0.0.1:8545", fakeAddr, true))

	removedActive, err := s.Remove("local")
	require.NoError(t, err)
	assert.True(t, removedActive)
	assert.Equal(t, "", s.Active())
}

func TestValidActiveProfileDowngradesOnBrokenInvariant(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Add("local", "http://127.0.0.1:8545", fakeAddr, true))
	// Simulate the invariant break: activeNetwork points at a name no
	// longer present in networks.
	_, err := s.Remove("local")
	require.NoError(t, err)
	s.doc.ActiveNetwork = strPtr("local")

	_, ok, warning := s.ValidActiveProfile()
	assert.False(t, ok)
	assert.NotEmpty(t, warning)
}

func strPtr(s string) *string { return &s }

func TestResolvePrefersActiveProfileOverEnv(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Add("local", "http://127.0.0.1:8545", fakeAddr, true))

	env := envconfig.Env{RPCURL: "http://example.com", ContractAddress: fakeAddr}
	eff, warnings, err := Resolve(s, env)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "http://127.0.0.1:8545", eff.RPCURL)
	assert.Equal(t, "profile:local", eff.Source)
}

func TestResolveFallsBackToEnvWithWarningOnBrokenProfile(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Add("local", "http://127.0.0.1:8545", fakeAddr, true))
	_, err := s.Remove("local")
	require.NoError(t, err)
	s.doc.ActiveNetwork = strPtr("local")

	env := envconfig.Env{RPCURL: "http://example.com", ContractAddress: fakeAddr}
	eff, warnings, err := Resolve(s, env)
	require.NoError(t, err)
	assert.NotEmpty(t, warnings)
	assert.Equal(t, "http://example.com", eff.RPCURL)
	assert.Equal(t, "env", eff.Source)
}

func TestResolveFailsWithGuidanceWhenNothingConfigured(t *testing.T) {
	s := tempStore(t)
	_, _, err := Resolve(s, envconfig.Env{})
	assert.Error(t, err)
}

func TestResolveIPFSDefaultsWhenUnset(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Add("local", "http://127.0.0.1:8545", fakeAddr, true))
	eff, _, err := Resolve(s, envconfig.Env{})
	require.NoError(t, err)
	assert.Equal(t, DefaultIPFSURL, eff.IPFSURL)
}
