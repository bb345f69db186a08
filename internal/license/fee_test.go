package license

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeeZeroForms(t *testing.T) {
	for _, s := range []string{"", "0", "none", "None", "  "} {
		got, err := ParseFee(s)
		require.NoError(t, err, s)
		assert.Equal(t, big.NewInt(0), got, s)
	}
}

func TestParseFeeUnits(t *testing.T) {
	cases := []struct {
		in   string
		want *big.Int
	}{
		{"1 eth", big.NewInt(1_000_000_000_000_000_000)},
		{"0.01 eth", big.NewInt(10_000_000_000_000_000)},
		{"1 ether", big.NewInt(1_000_000_000_000_000_000)},
		{"1 gwei", big.NewInt(1_000_000_000)},
		{"42 wei", big.NewInt(42)},
		{"42", big.NewInt(42)},
	}
	for _, tc := range cases {
		got, err := ParseFee(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, 0, tc.want.Cmp(got), "input %q: want %s got %s", tc.in, tc.want, got)
	}
}

func TestParseFeeRejectsBadUnit(t *testing.T) {
	_, err := ParseFee("1 btc")
	require.Error(t, err)
}

func TestParseFeeRejectsGarbage(t *testing.T) {
	_, err := ParseFee("a b c")
	require.Error(t, err)
}

func TestParseAmountFlagEmptyMeansUnset(t *testing.T) {
	got, err := ParseAmountFlag("")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFormatWeiRoundTrips(t *testing.T) {
	wei, err := ParseFee("0.01 eth")
	require.NoError(t, err)
	assert.Equal(t, "0.01 eth", FormatWei(wei))
}
