// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/homology.
package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// DefaultDarkCutoff is the 8-bit luminance below which a pixel counts as ink.
const DefaultDarkCutoff uint8 = 128

// DefaultMaxCells caps Width×Height in DefaultGridOptions (2048×2048).
const DefaultMaxCells = 1 << 22

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered foreground.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity for ConnectedComponents.
	Conn Connectivity
	// MaxCells bounds Width×Height; 0 means no limit. DecodePNG checks it
	// against the PNG header before decoding any pixels.
	MaxCells int
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are ink), Conn=Conn8 (pen strokes touch diagonally),
// MaxCells=DefaultMaxCells.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn8,
		MaxCells:      DefaultMaxCells,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// Conn and LandThreshold are set from GridOptions during construction.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	neighborOffsets [][2]int
}
