package archiver

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), []byte("world"), 0o644))
}

func TestArchiveIsDeterministic(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	writeTree(t, dirA)
	writeTree(t, dirB)

	var bufA, bufB bytes.Buffer
	_, err := Archive(dirA, &bufA)
	require.NoError(t, err)
	_, err = Archive(dirB, &bufB)
	require.NoError(t, err)

	assert.Equal(t, bufA.Bytes(), bufB.Bytes())
}

func TestArchiveThenExtractRoundTrips(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src)

	var buf bytes.Buffer
	_, err := Archive(src, &buf)
	require.NoError(t, err)

	dst := filepath.Join(t.TempDir(), "out")
	require.NoError(t, Extract(&buf, dst))

	data, err := os.ReadFile(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	data, err = os.ReadFile(filepath.Join(dst, "sub", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "world", string(data))
}

func TestArchivePlacesContentsAtArchiveRootNotWrapped(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src)

	var buf bytes.Buffer
	_, err := Archive(src, &buf)
	require.NoError(t, err)

	dst := filepath.Join(t.TempDir(), "out")
	require.NoError(t, Extract(&buf, dst))

	_, err = os.Stat(filepath.Join(dst, "a.txt"))
	assert.NoError(t, err, "a.txt should sit directly under the extraction root, not under a wrapper dir")
}

func TestExtractRejectsPathEscape(t *testing.T) {
	// A maliciously crafted archive, built inline: its one entry climbs out
	// of the extraction root.
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	payload := []byte("x")
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: "../evil.txt", Typeflag: tar.TypeReg, Mode: 0o644, Size: int64(len(payload))}))
	_, err := tw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())

	parent := t.TempDir()
	dst := filepath.Join(parent, "out")
	assert.Error(t, Extract(&buf, dst))
	_, err = os.Stat(filepath.Join(parent, "evil.txt"))
	assert.True(t, os.IsNotExist(err), "the escaping entry must not be written outside the target directory")
}
