package xerrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrorClassificationStability pins every known contract revert string
// to its documented Kind, so a future refactor can't silently reclassify one.
func TestErrorClassificationStability(t *testing.T) {
	cases := map[string]Kind{
		"library does not exist":                         KindNotFound,
		"caller is not the owner":                         KindPermission,
		"version already exists":                          KindConflict,
		"library is not private":                          KindPolicy,
		"insufficient ether sent":                         KindFunds,
		"license already owned":                           KindConflict,
		"cannot delete library with published versions":   KindPolicy,
	}
	for revert, want := range cases {
		r, ok := matchRevert(revert)
		assert.True(t, ok, "expected %q to classify", revert)
		assert.Equal(t, want, r.kind, "revert %q", revert)
	}
}

func TestMatchRPCCodeTable(t *testing.T) {
	r, ok := matchRPCCode(-32003)
	assert.True(t, ok)
	assert.Equal(t, KindTx, r.kind)

	_, ok = matchRPCCode(-1)
	assert.False(t, ok)
}
