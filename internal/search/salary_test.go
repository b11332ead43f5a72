package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSalaryRange(t *testing.T) {
	v, ok := ParseSalary("$80,000 - $100,000")
	require.True(t, ok)
	require.Equal(t, 90000, v)
}

func TestParseSalaryKSuffix(t *testing.T) {
	v, ok := ParseSalary("95K")
	require.True(t, ok)
	require.Equal(t, 95000, v)

	v, ok = ParseSalary("60K-80K EUR")
	require.True(t, ok)
	require.Equal(t, 70000, v)
}

func TestParseSalarySingleFigure(t *testing.T) {
	v, ok := ParseSalary("120000")
	require.True(t, ok)
	require.Equal(t, 120000, v)
}

func TestParseSalaryIgnoresExtraTokens(t *testing.T) {
	// Only the first two numeric tokens form the range.
	v, ok := ParseSalary("50,000-70,000 (up to 90,000 with bonus)")
	require.True(t, ok)
	require.Equal(t, 60000, v)
}

func TestParseSalaryNoNumbers(t *testing.T) {
	for _, s := range []string{"", "competitive", "DOE"} {
		_, ok := ParseSalary(s)
		require.False(t, ok, "input %q", s)
	}
}
