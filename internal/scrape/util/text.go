package util

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// StripHTML reduces an upstream HTML fragment to whitespace-normalized plain
// text. Falls back to the raw string when the fragment doesn't parse.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return CleanText(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return CleanText(s)
	}
	return CleanText(doc.Text())
}

// Truncate caps s at max runes, not bytes, so multibyte descriptions don't
// get split mid-character.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// FormatThousands renders 120000 as "120,000" for salary display strings.
func FormatThousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
