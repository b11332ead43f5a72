package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	require.Equal(t, "Go Developer", CleanText("  Go  Developer \n"))
	require.Equal(t, "", CleanText("   "))
}

func TestStripHTML(t *testing.T) {
	require.Equal(t, "Hello world", StripHTML("<p>Hello <b>world</b></p>"))
	// Plain text passes through untouched.
	require.Equal(t, "just text", StripHTML("just text"))
}

func TestTruncateRuneSafe(t *testing.T) {
	require.Equal(t, "héllo", Truncate("héllo", 10))
	got := Truncate("héllo wörld", 7)
	require.Equal(t, "héllo w", got)
}

func TestFormatThousands(t *testing.T) {
	require.Equal(t, "90,000", FormatThousands(90000))
	require.Equal(t, "1,234,567", FormatThousands(1234567))
	require.Equal(t, "999", FormatThousands(999))
}
