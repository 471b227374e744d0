package complexity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/padchain/complexity"
)

// TestParse_Valid checks numeric extraction with leading zeros.
func TestParse_Valid(t *testing.T) {
	for s, want := range map[string]uint64{
		"029A": 29,
		"980A": 980,
		"0A":   0,
		"000A": 0,
		"7A":   7,

		"9223372036854775807A": math.MaxInt,
	} {
		c, err := complexity.Parse(s)
		require.NoError(t, err, "Parse(%q)", s)
		assert.Equal(t, want, c.Numeric(), "Parse(%q)", s)
		assert.Equal(t, s, c.String())
	}
}

// TestParse_Malformed verifies rejection of everything outside [0-9]+A.
func TestParse_Malformed(t *testing.T) {
	for _, s := range []string{"", "A", "12", "1B2A", "029a", " 029A", "02 9A", "029AA", "-1A", "99999999999999999999A", "9223372036854775808A", "18446744073709551615A"} {
		_, err := complexity.Parse(s)
		assert.ErrorIs(t, err, complexity.ErrMalformedCode, "Parse(%q)", s)
	}
	assert.Panics(t, func() { complexity.MustParse("xyz") })
}

// TestParseList covers blank lines, whitespace and line-numbered errors.
func TestParseList(t *testing.T) {
	codes, err := complexity.ParseList("029A\n\n  980A \r\n179A\n")
	require.NoError(t, err)
	require.Len(t, codes, 3)
	assert.Equal(t, "980A", codes[1].String())

	codes, err = complexity.ParseList("")
	require.NoError(t, err)
	assert.Empty(t, codes)

	_, err = complexity.ParseList("029A\n98OA\n")
	assert.ErrorIs(t, err, complexity.ErrMalformedCode)
	assert.ErrorContains(t, err, "line 2")
}
