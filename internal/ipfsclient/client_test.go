package ipfsclient

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Doner357/TacoPKM-CLI/internal/xerrors"
)

func TestTranslateNotFound(t *testing.T) {
	err := translate(errors.New("merkledag: not found"))
	var xerr *xerrors.Error
	require.True(t, xerrors.As(err, &xerr))
	assert.Equal(t, xerrors.KindIPFSNotFound, xerr.Kind)
}

func TestTranslateOtherIsUnreachable(t *testing.T) {
	err := translate(errors.New("connection refused"))
	var xerr *xerrors.Error
	require.True(t, xerrors.As(err, &xerr))
	assert.Equal(t, xerrors.KindIPFSUnreachable, xerr.Kind)
}

func TestTranslateNil(t *testing.T) {
	assert.NoError(t, translate(nil))
}
