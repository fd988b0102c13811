// Package discovery expands a wildcard source pattern into the existing
// paths it selects.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sdejongh/mmv/internal/platform"
	"github.com/sdejongh/mmv/pkg/storage"
)

// ErrInvalidPattern is returned for patterns the glob engine cannot parse
var ErrInvalidPattern = errors.New("invalid source pattern")

// Discover returns every existing path matching pattern. Only '*' is a
// wildcard and it does not cross path separators. An empty result is not an
// error; callers decide what no match means.
//
// The pattern is expected in normalized form (see platform.NormalizePath) so
// that returned paths can be matched against the same pattern textually.
func Discover(ctx context.Context, backend storage.Backend, pattern string) ([]string, error) {
	if err := platform.ValidatePath(pattern); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	matches, err := backend.Glob(ctx, platform.EscapeGlob(pattern))
	if err != nil {
		if errors.Is(err, filepath.ErrBadPattern) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPattern, pattern)
		}
		return nil, err
	}

	if matches == nil {
		return []string{}, nil
	}
	return matches, nil
}
