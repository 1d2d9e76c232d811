// Package simplex builds the proximity simplicial complex of a finite point
// cloud and stores it by dimension.
//
// 🚀 What is a Complex here?
//
//	Given a vertex set S ⊂ Rⁿ and a radius r, two vertices are "close" when
//	their distance is ≤ 2r. A p-simplex is a set of p+1 vertices that are
//	pairwise close. The complex lists every such simplex, grouped by p:
//
//	  Dim(0): the vertices (each a 1-element simplex)
//	  Dim(1): the close pairs
//	  Dim(2): the close triples, and so on
//
//	Construction extends each surviving p-simplex by one vertex at a time, so
//	every face of a stored simplex is itself stored one dimension lower.
//	Storage stops at the first empty dimension.
//
// ✨ Identity:
//   - A Simplex is a strictly ascending slice of vertex indices.
//   - Its Key is that index tuple encoded as a string; permutations of the
//     same vertex set collapse onto one Key, and every dimension keeps a
//     Key → position map for O(p) membership tests.
//
// ⚙️ Usage:
//
//	pts := []geometry.Point{
//		geometry.NewPoint(0, 0),
//		geometry.NewPoint(1, 0),
//		geometry.NewPoint(0.5, 0.8),
//	}
//	c, err := simplex.Build(pts, 0.6)
//	// c.Count(1) == 3, c.Count(2) == 1, c.Len() == 3
//
// Complexity:
//
//   - Build is combinatorial in |S| in the worst case (a cluster of k mutually
//     close points yields 2^k − 1 simplices). Vertex sets are expected to be
//     small, e.g. block-reduced drawings.
package simplex
