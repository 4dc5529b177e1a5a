package security

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPCodeWidthAndRange(t *testing.T) {
	t.Parallel()

	for i := 0; i < 1000; i++ {
		code, err := OTPCode()
		require.NoError(t, err)
		require.Len(t, code, 5)
		require.NotEqual(t, byte('0'), code[0])

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 10000)
		require.LessOrEqual(t, n, 99999)
	}
}

func TestOTPCodeVaries(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := OTPCode()
		require.NoError(t, err)
		seen[code] = true
	}
	// 50 draws from a 90000-value space collapsing to one value would mean
	// a broken generator
	assert.Greater(t, len(seen), 1)
}
