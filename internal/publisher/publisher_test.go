package publisher

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Doner357/TacoPKM-CLI/internal/model"
	"github.com/Doner357/TacoPKM-CLI/internal/xerrors"
)

var owner = common.HexToAddress("0x1111111111111111111111111111111111111111")
var other = common.HexToAddress("0x2222222222222222222222222222222222222222")

type fakeChain struct {
	lib        model.LibraryRecord
	notFound   bool
	published  []model.Dependency
	publishErr error
}

func (f *fakeChain) GetLibraryInfo(ctx context.Context, name model.LibraryName) (model.LibraryRecord, error) {
	if f.notFound {
		return model.LibraryRecord{}, xerrors.New(xerrors.KindNotFound, "not found")
	}
	return f.lib, nil
}

func (f *fakeChain) PublishVersion(ctx context.Context, name model.LibraryName, version, ipfsHash string, deps []model.Dependency) error {
	f.published = deps
	return f.publishErr
}

type fakeStore struct {
	cid string
	err error
}

func (s *fakeStore) Add(ctx context.Context, r io.Reader) (string, error) {
	io.Copy(io.Discard, r)
	return s.cid, s.err
}

type fakeLogger struct{ warnings []string }

func (l *fakeLogger) Warn(format string, args ...any) {
	l.warnings = append(l.warnings, format)
}

func writeConfig(t *testing.T, dir string, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.config.json"), []byte(body), 0o644))
}

func TestPublishHappyPath(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"name":"foo","version":"1.0.0","dependencies":{"bar":"^1.0.0"}}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package foo"), 0o644))

	chain := &fakeChain{lib: model.LibraryRecord{Name: "foo", Owner: owner}}
	store := &fakeStore{cid: "bafy123"}

	result, err := Publish(context.Background(), chain, store, &fakeLogger{}, dir, "", owner)
	require.NoError(t, err)
	assert.Equal(t, model.LibraryName("foo"), result.Name)
	assert.Equal(t, "1.0.0", result.Version)
	assert.Equal(t, "bafy123", result.CID)
	require.Len(t, chain.published, 1)
	assert.Equal(t, model.LibraryName("bar"), chain.published[0].Name)
}

// TestPublishRejectsOwnershipMismatch verifies that publish aborts before
// any archiving/IPFS work when the signer is not the library's registered
// owner.
func TestPublishRejectsOwnershipMismatch(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"name":"foo","version":"1.0.0"}`)

	chain := &fakeChain{lib: model.LibraryRecord{Name: "foo", Owner: owner}}
	store := &fakeStore{cid: "should-not-be-used"}

	_, err := Publish(context.Background(), chain, store, &fakeLogger{}, dir, "", other)
	require.Error(t, err)
	var xerr *xerrors.Error
	require.True(t, xerrors.As(err, &xerr))
	assert.Equal(t, xerrors.KindPermission, xerr.Kind)
}

func TestPublishRequiresRegistrationFirst(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"name":"foo","version":"1.0.0"}`)

	chain := &fakeChain{notFound: true}
	store := &fakeStore{cid: "bafy"}

	_, err := Publish(context.Background(), chain, store, &fakeLogger{}, dir, "", owner)
	require.Error(t, err)
	var xerr *xerrors.Error
	require.True(t, xerrors.As(err, &xerr))
	assert.Equal(t, xerrors.KindNotFound, xerr.Kind)
}

func TestPublishVersionOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"name":"foo","version":"1.0.0"}`)

	chain := &fakeChain{lib: model.LibraryRecord{Name: "foo", Owner: owner}}
	store := &fakeStore{cid: "bafy"}

	result, err := Publish(context.Background(), chain, store, &fakeLogger{}, dir, "2.0.0", owner)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", result.Version)
}

func TestPublishDropsEmptyConstraint(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"name":"foo","version":"1.0.0","dependencies":{"bar":""}}`)

	chain := &fakeChain{lib: model.LibraryRecord{Name: "foo", Owner: owner}}
	store := &fakeStore{cid: "bafy"}
	logger := &fakeLogger{}

	_, err := Publish(context.Background(), chain, store, logger, dir, "", owner)
	require.NoError(t, err)
	assert.Empty(t, chain.published)
	assert.NotEmpty(t, logger.warnings)
}

func TestPublishRejectsEmptyCID(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"name":"foo","version":"1.0.0"}`)

	chain := &fakeChain{lib: model.LibraryRecord{Name: "foo", Owner: owner}}
	store := &fakeStore{cid: ""}

	_, err := Publish(context.Background(), chain, store, &fakeLogger{}, dir, "", owner)
	require.Error(t, err)
}
