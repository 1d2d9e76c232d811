// SPDX-License-Identifier: MIT

package simplex

import (
	"strconv"
	"strings"
)

// Key is the canonical identity of a simplex: its ascending vertex indices
// joined by commas, e.g. "0,3,7".
type Key string

// Simplex is a strictly ascending list of vertex indices into the owning
// Complex's vertex set. A Simplex with p+1 indices has dimension p.
type Simplex []int

// Dim returns the simplex dimension (number of vertices minus one).
func (s Simplex) Dim() int { return len(s) - 1 }

// Key returns the canonical identity of s.
// Complexity: O(p).
func (s Simplex) Key() Key {
	var sb strings.Builder
	for i, v := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return Key(sb.String())
}

// Contains reports whether vertex index v belongs to s.
// Complexity: O(log p).
func (s Simplex) Contains(v int) bool {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case s[mid] == v:
			return true
		case s[mid] < v:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return false
}

// With returns a new Simplex equal to s ∪ {v}, still ascending.
// The caller guarantees v ∉ s.
func (s Simplex) With(v int) Simplex {
	out := make(Simplex, 0, len(s)+1)
	inserted := false
	for _, u := range s {
		if !inserted && v < u {
			out = append(out, v)
			inserted = true
		}
		out = append(out, u)
	}
	if !inserted {
		out = append(out, v)
	}

	return out
}

// Faces returns the codimension-1 faces of s, where face i omits s[i].
// A 0-simplex has no faces.
// Complexity: O(p²).
func (s Simplex) Faces() []Simplex {
	if len(s) <= 1 {
		return nil
	}
	faces := make([]Simplex, len(s))
	for i := range s {
		f := make(Simplex, 0, len(s)-1)
		f = append(f, s[:i]...)
		f = append(f, s[i+1:]...)
		faces[i] = f
	}

	return faces
}

// clone returns an independent copy of s.
func (s Simplex) clone() Simplex {
	out := make(Simplex, len(s))
	copy(out, s)

	return out
}
