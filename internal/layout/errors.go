package layout

import "errors"

// Sentinel errors returned by sheet operations. Callers match them with
// errors.Is. An operation that returns an error leaves the committed
// placement set untouched.
var (
	// ErrInvalidStickerMetadata rejects an Add before any geometry runs:
	// the sticker record carries no usable physical size.
	ErrInvalidStickerMetadata = errors.New("sticker has no usable physical size")

	// ErrNoSpaceAvailable means the placement search exhausted every ring
	// and angle without finding a valid position for a new placement.
	ErrNoSpaceAvailable = errors.New("no space available on sheet")

	// ErrResolutionFailed means a move or rotate could not be resolved to a
	// valid position, not even the placement's own committed one. The
	// placement keeps its last committed value; the error is the signal to
	// snap any visual representation back to it.
	ErrResolutionFailed = errors.New("no valid position near requested point")

	// ErrStickerNotFound means the catalog has no record for the requested
	// sticker ID.
	ErrStickerNotFound = errors.New("sticker not found in catalog")

	// ErrPlacementNotFound means no committed placement has the given ID.
	ErrPlacementNotFound = errors.New("placement not found")

	// ErrInvalidConfig rejects a sheet configuration with an unknown paper
	// size, negative margin or gap, or a margin that consumes the paper.
	ErrInvalidConfig = errors.New("invalid sheet configuration")

	// ErrDuplicatePlacement rejects restoring a placement list that reuses
	// an ID.
	ErrDuplicatePlacement = errors.New("duplicate placement id")
)
