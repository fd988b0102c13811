package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		name     string
		wildcard string
		expected string
	}{
		{"no wildcard", "notes.txt", `^notes\.txt$`},
		{"single wildcard", "*.txt", `^(.*)\.txt$`},
		{"two wildcards", "a*c1*3", `^a(.*)c1(.*)3$`},
		{"path separators", "dir/*.txt", `^dir/(.*)\.txt$`},
		{"regex metacharacters", "f(1)+[x]?.txt", `^f\(1\)\+\[x\]\?\.txt$`},
		{"adjacent wildcards", "**", `^(.*)(.*)$`},
		{"empty", "", `^$`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Translate(tc.wildcard))
		})
	}
}

func TestTranslateIsDeterministic(t *testing.T) {
	for _, wildcard := range []string{"a*c1*3", "dir/*.txt", "x.y.*", ""} {
		assert.Equal(t, Translate(wildcard), Translate(wildcard))
	}
}

func TestCaptures(t *testing.T) {
	cases := []struct {
		name     string
		wildcard string
		path     string
		expected CaptureSet
	}{
		{"two fragments", "a*c1*3", "abc123", CaptureSet{"b", "2"}},
		{"extension", "dir/*.txt", "dir/note.txt", CaptureSet{"note"}},
		{"empty capture", "*.txt", ".txt", CaptureSet{""}},
		{"dot is literal", "*.*", "archive.tar.gz", CaptureSet{"archive.tar", "gz"}},
		{"no wildcard", "dir/note.txt", "dir/note.txt", CaptureSet{}},
		{"literal suffix after wildcard", "some_*_filename.*", "some_A_filename.bin", CaptureSet{"A", "bin"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Compile(tc.wildcard)
			require.NoError(t, err)

			captures, err := m.Captures(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, captures)
			assert.Len(t, captures, CountWildcards(tc.wildcard))
			assert.Equal(t, m.Wildcards(), len(captures))
		})
	}
}

func TestCapturesMismatch(t *testing.T) {
	m, err := Compile("dir/*.txt")
	require.NoError(t, err)

	_, err = m.Captures("dir/note.md")
	assert.True(t, errors.Is(err, ErrNoMatch))

	// The dot must not act as "any character".
	_, err = m.Captures("dir/notextxt")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestSynthesize(t *testing.T) {
	cases := []struct {
		name     string
		template string
		captures CaptureSet
		expected string
	}{
		{"reorder", "a#2c1#13", CaptureSet{"b", "2"}, "a2c1b3"},
		{"single", "#1a", CaptureSet{"bc123"}, "bc123a"},
		{"concatenate", "#1#2", CaptureSet{"b", "2"}, "b2"},
		{"directory move", "dir2/changed_#1.txt", CaptureSet{"note"}, "dir2/changed_note.txt"},
		{"reused placeholder", "#1-#1", CaptureSet{"x"}, "x-x"},
		{"out of range passes through", "#1_#3", CaptureSet{"a", "b"}, "a_#3"},
		{"no captures", "fixed_#1.txt", CaptureSet{}, "fixed_#1.txt"},
		{"nil captures", "fixed.txt", nil, "fixed.txt"},
		// Replacing #1..#N one index at a time would rescan the inserted
		// capture and give "b/b"; the single pass keeps it verbatim.
		{"capture is not rescanned", "#1/#2", CaptureSet{"#2", "b"}, "#2/b"},
		{"empty capture", "x#1y", CaptureSet{""}, "xy"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Synthesize(tc.template, tc.captures))
		})
	}
}

func TestSynthesizeTwoDigitPlaceholders(t *testing.T) {
	captures := make(CaptureSet, 12)
	for i := range captures {
		captures[i] = string(rune('a' + i))
	}

	// Replacing #1 first, as an index-ordered loop does, would turn "#10"
	// into "a0"; the longest in-range token wins instead.
	assert.Equal(t, "l-a-j", Synthesize("#12-#1-#10", captures))
	// With fewer captures the same token reads as #1 followed by a digit.
	assert.Equal(t, "a2", Synthesize("#12", captures[:2]))
}

func TestCompileThenSynthesize(t *testing.T) {
	m, err := Compile("path/to/some_*_filename.*")
	require.NoError(t, err)

	captures, err := m.Captures("path/to/some_B_filename.jpg")
	require.NoError(t, err)
	assert.Equal(t, "path2/to/changed_B_filename.jpg", Synthesize("path2/to/changed_#1_filename.#2", captures))
}

func TestMaxPlaceholder(t *testing.T) {
	assert.Equal(t, 0, MaxPlaceholder("plain.txt"))
	assert.Equal(t, 0, MaxPlaceholder("#x#"))
	assert.Equal(t, 2, MaxPlaceholder("#1/#2.txt"))
	assert.Equal(t, 13, MaxPlaceholder("a#2c1#13"))
}
