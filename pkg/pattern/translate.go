// Package pattern turns a wildcard source pattern into a capturing regular
// expression and substitutes the captured fragments into a target template.
//
// A wildcard pattern contains literal text and any number of `*` markers.
// Each marker is captured in order and may be referenced from the target
// template as #1, #2, ... :
//
//	source: photos/IMG_*.jpeg
//	target: archive/#1.jpg
//	photos/IMG_0042.jpeg -> archive/0042.jpg
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Wildcard is the only marker recognised in a source pattern.
const Wildcard = '*'

// captureGroup matches any run of characters, including the empty one.
const captureGroup = "(.*)"

// ErrNoMatch is returned when a path does not conform to the source pattern.
var ErrNoMatch = errors.New("path does not match source pattern")

// CaptureSet holds the fragments matched by each wildcard, in left-to-right order.
// Index 0 corresponds to placeholder #1.
type CaptureSet []string

// Translate converts a wildcard pattern into an anchored regular expression.
// Literal runs are escaped so that `.` and every other metacharacter match
// themselves; each `*` becomes a capturing group.
func Translate(wildcard string) string {
	var b strings.Builder
	b.WriteByte('^')

	literals := strings.Split(wildcard, string(Wildcard))
	for i, literal := range literals {
		if i > 0 {
			b.WriteString(captureGroup)
		}
		b.WriteString(regexp.QuoteMeta(literal))
	}

	b.WriteByte('$')
	return b.String()
}

// CountWildcards returns the number of capture groups a pattern produces.
func CountWildcards(wildcard string) int {
	return strings.Count(wildcard, string(Wildcard))
}

// Matcher extracts capture sets from concrete paths.
type Matcher struct {
	source    string
	expr      *regexp.Regexp
	wildcards int
}

// Compile translates and compiles a wildcard pattern. The translation always
// yields a valid expression, so an error here indicates a bug in Translate.
func Compile(wildcard string) (*Matcher, error) {
	expr, err := regexp.Compile(Translate(wildcard))
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern %q: %w", wildcard, err)
	}

	return &Matcher{
		source:    wildcard,
		expr:      expr,
		wildcards: expr.NumSubexp(),
	}, nil
}

// Source returns the wildcard pattern the matcher was built from
func (m *Matcher) Source() string {
	return m.source
}

// Expr returns the capturing expression
func (m *Matcher) Expr() string {
	return m.expr.String()
}

// Wildcards returns the number of capture groups
func (m *Matcher) Wildcards() int {
	return m.wildcards
}

// Captures matches path against the pattern and returns one fragment per
// wildcard. The result always has exactly Wildcards() entries.
func (m *Matcher) Captures(path string) (CaptureSet, error) {
	groups := m.expr.FindStringSubmatch(path)
	if groups == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, path)
	}

	captures := make(CaptureSet, 0, m.wildcards)
	captures = append(captures, groups[1:]...)
	return captures, nil
}
