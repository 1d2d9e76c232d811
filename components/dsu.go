// SPDX-License-Identifier: MIT

package components

// dsu is a disjoint-set forest over 0..n−1 with path compression and
// union by rank.
type dsu struct {
	parent []int
	rank   []int
}

// newDSU returns n singleton sets.
func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find returns the root of u, halving the path on the way up.
func (d *dsu) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v; it reports whether they were disjoint.
func (d *dsu) union(u, v int) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	// Attach the shallower tree under the deeper one.
	if d.rank[ru] < d.rank[rv] {
		d.parent[ru] = rv
	} else {
		d.parent[rv] = ru
		if d.rank[ru] == d.rank[rv] {
			d.rank[ru]++
		}
	}

	return true
}
