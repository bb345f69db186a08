package semverx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustVersion(t *testing.T, s string) Version {
	t.Helper()
	v, err := ParseVersion(s)
	require.NoError(t, err)
	return v
}

func TestMaxStableExcludesPreReleases(t *testing.T) {
	available := []Version{
		mustVersion(t, "1.0.0"),
		mustVersion(t, "1.1.0"),
		mustVersion(t, "2.0.0-beta.1"),
	}
	best, ok := MaxStable(available)
	require.True(t, ok)
	assert.Equal(t, "1.1.0", best.String())
}

func TestMaxStableNoneAvailable(t *testing.T) {
	available := []Version{mustVersion(t, "2.0.0-beta.1")}
	_, ok := MaxStable(available)
	assert.False(t, ok)
}

func TestMaxSatisfyingDiamondPicksHighest(t *testing.T) {
	available := []Version{mustVersion(t, "1.2.0"), mustVersion(t, "1.2.3")}
	c, err := ParseConstraint("^1.2.0")
	require.NoError(t, err)
	best, ok := MaxSatisfying(available, c)
	require.True(t, ok)
	assert.Equal(t, "1.2.3", best.String())
}

func TestMaxSatisfyingConflict(t *testing.T) {
	available := []Version{mustVersion(t, "1.2.3")}
	c, err := ParseConstraint("^2.0.0")
	require.NoError(t, err)
	_, ok := MaxSatisfying(available, c)
	assert.False(t, ok)
}

func TestParseConstraintEmptyMeansAny(t *testing.T) {
	c, err := ParseConstraint("")
	require.NoError(t, err)
	assert.True(t, c.Satisfies(mustVersion(t, "0.0.1")))
}

func TestParseVersionRejectsGarbage(t *testing.T) {
	_, err := ParseVersion("not-a-version")
	assert.Error(t, err)
}
