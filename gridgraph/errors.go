package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadBlockSize indicates a non-positive block size for BlockReduce.
	ErrBadBlockSize = errors.New("gridgraph: block size must be positive")
	// ErrGridTooLarge indicates Width×Height above GridOptions.MaxCells.
	ErrGridTooLarge = errors.New("gridgraph: grid exceeds cell limit")
)
