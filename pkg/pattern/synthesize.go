package pattern

import (
	"strconv"
	"strings"
)

// PlaceholderPrefix introduces a capture reference in a target template.
const PlaceholderPrefix = "#"

// Placeholder returns the template token for the n-th capture (1-based).
func Placeholder(n int) string {
	return PlaceholderPrefix + strconv.Itoa(n)
}

// Synthesize builds a destination path by substituting #1..#N in template with
// the corresponding captures, N being len(captures).
//
// The template is scanned once, left to right. Tokens are registered from the
// highest index down so that at a given position the longest in-range token
// wins: with 12 captures "#12" is placeholder 12, with 2 captures it is #1
// followed by a literal "2". Substituted text is never rescanned, and
// placeholders beyond N are left as they are.
func Synthesize(template string, captures CaptureSet) string {
	if len(captures) == 0 {
		return template
	}

	pairs := make([]string, 0, 2*len(captures))
	for i := len(captures); i >= 1; i-- {
		pairs = append(pairs, Placeholder(i), captures[i-1])
	}

	return strings.NewReplacer(pairs...).Replace(template)
}

// MaxPlaceholder returns the highest placeholder index referenced by template,
// reading each token greedily. It returns 0 when the template has none.
func MaxPlaceholder(template string) int {
	highest := 0
	for i := 0; i < len(template); i++ {
		if template[i] != PlaceholderPrefix[0] {
			continue
		}
		j := i + 1
		for j < len(template) && template[j] >= '0' && template[j] <= '9' {
			j++
		}
		if j == i+1 {
			continue
		}
		if n, err := strconv.Atoi(template[i+1 : j]); err == nil && n > highest {
			highest = n
		}
		i = j - 1
	}
	return highest
}
