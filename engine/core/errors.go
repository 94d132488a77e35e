package core

import (
	"errors"
)

var (
	// ErrTextureNotFound is returned on a cache miss when the binding is
	// configured to surface misses instead of ignoring them.
	ErrTextureNotFound = errors.New("texture not found in cache")
	// ErrNotLoaded signals an operation that requires a bound backend.
	ErrNotLoaded = errors.New("texture binding not loaded")
	// ErrCacheFull signals that the texture cache has no free slots left.
	ErrCacheFull = errors.New("texture cache is full")
	ErrUnknown   = errors.New("unknown")
)
