// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrBoundTooSmall indicates a search bound below 1.
	ErrBoundTooSmall = errors.New("catalog: bound must be >= 1")

	// ErrBoundTooLarge indicates a search bound above Options.MaxBound.
	ErrBoundTooLarge = errors.New("catalog: bound exceeds the supported maximum")

	// ErrBadOptions indicates nonsensical Options (negative workers, MaxBound < 1).
	ErrBadOptions = errors.New("catalog: invalid options")
)

// Operation tags for error wrapping.
const (
	opBuild = "Build"
	opChunk = "chunk"
)

// catalogErrorf wraps err as "<tag>: <err>" keeping errors.Is/As working.
// err must be non-nil.
func catalogErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
