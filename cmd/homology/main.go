// Command homology computes Betti numbers of point clouds and drawings.
//
// Usage:
//
//	homology betti points.yaml --radius 0.5
//	homology betti --point 0,0 --point 1,0 --point 0.5,0.9 --radius 0.6
//	homology split points.json --format json
//	homology image drawing.png --block 20 --radius 0.8
//	homology serve --port 8080
//	homology config init
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
