package components

import (
	"errors"
	"testing"
)

// TestVerify_Coverage exercises the post-condition checks directly, since a
// well-formed complex never triggers them.
func TestVerify_Coverage(t *testing.T) {
	cases := []struct {
		name   string
		groups [][]int
		n      int
		want   int
		ok     bool
	}{
		{"exact", [][]int{{0, 2}, {1}}, 3, 2, true},
		{"count mismatch", [][]int{{0, 1, 2}}, 3, 2, false},
		{"duplicate vertex", [][]int{{0, 1}, {1}}, 3, 2, false},
		{"missing vertex", [][]int{{0}, {1}}, 3, 2, false},
		{"foreign vertex", [][]int{{0, 1}, {5}}, 3, 2, false},
	}
	for _, tc := range cases {
		err := verify(tc.groups, tc.n, tc.want)
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, ErrConsistency) {
			t.Errorf("%s: got %v; want ErrConsistency", tc.name, err)
		}
	}
}

// TestDSU_UnionFind checks merge reporting and shared roots.
func TestDSU_UnionFind(t *testing.T) {
	d := newDSU(5)
	if !d.union(0, 1) || !d.union(3, 4) || !d.union(1, 4) {
		t.Fatal("disjoint unions must report true")
	}
	if d.union(0, 3) {
		t.Error("0 and 3 already share a set")
	}
	if d.find(0) != d.find(4) {
		t.Error("0 and 4 must share a root")
	}
	if d.find(2) == d.find(0) {
		t.Error("2 must stay alone")
	}
}
