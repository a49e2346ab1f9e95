// Package namegen produces URL-safe slugs and the short random suffixes
// used by generated platform domains.
package namegen

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	invalidSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	dashRuns         = regexp.MustCompile(`-{2,}`)
)

// Slugify lowercases a name and reduces it to [a-z0-9-], collapsing runs
// of invalid characters into single dashes.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	s = invalidSlugChars.ReplaceAllString(s, "-")
	s = dashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Suffix returns n random characters from the lowercase alphanumeric
// alphabet, suitable for disambiguating generated hostnames.
func Suffix(n int) string {
	if n <= 0 {
		n = 4
	}
	var b strings.Builder
	max := big.NewInt(int64(len(suffixAlphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand read failures are unrecoverable here
			panic(err)
		}
		b.WriteByte(suffixAlphabet[idx.Int64()])
	}
	return b.String()
}
