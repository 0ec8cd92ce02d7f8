package domain

import "errors"

// Common errors that the rendering pipeline can return.
var (
	// ErrEmptySpectrum is returned when a frame carries no magnitude data.
	ErrEmptySpectrum = errors.New("spectrum is empty")

	// ErrInvalidCanvasSize is returned when the drawing surface has a
	// non-positive dimension.
	ErrInvalidCanvasSize = errors.New("invalid canvas size")

	// ErrUnknownStyle is returned when a renderer style id is not registered.
	ErrUnknownStyle = errors.New("unknown visualizer style")

	// ErrInvalidBarCount is returned when a layout requests zero or
	// negative buckets.
	ErrInvalidBarCount = errors.New("bar count must be positive")

	// ErrInvalidPartition is returned when a worker partition does not
	// cover all column indices exactly once.
	ErrInvalidPartition = errors.New("worker partition must cover all columns without overlap")

	// ErrSourceClosed is returned when a spectrum source is used after Close.
	ErrSourceClosed = errors.New("spectrum source is closed")

	// ErrNotInitialized is returned when an operation is attempted on an
	// uninitialized component.
	ErrNotInitialized = errors.New("component not initialized")
)
