// Package meshutil inspects rendered triangle meshes before export.
package meshutil

import (
	"gonum.org/v1/gonum/spatial/r3"
)

type edge struct{ a, b r3.Vec }

// Closed reports whether the mesh is a closed oriented surface, the
// mesh-level equivalent of a manifold solid check: every edge must be
// walked the same number of times in each direction. A mesh that
// fails has holes or flipped faces and prints badly downstream.
func Closed(model []r3.Triangle) bool {
	return len(OpenEdges(model)) == 0
}

// OpenEdges returns the edges whose windings do not balance. The two
// directions of an edge cancel, so degenerate slivers with repeated
// vertices, as marching cubes occasionally emits, do not trip the
// check.
func OpenEdges(model []r3.Triangle) [][2]r3.Vec {
	wind := make(map[edge]int, 3*len(model))
	for _, t := range model {
		for i := 0; i < 3; i++ {
			a, b := t[i], t[(i+1)%3]
			if a == b {
				continue
			}
			if vecLess(a, b) {
				wind[edge{a, b}]++
			} else {
				wind[edge{b, a}]--
			}
		}
	}
	var open [][2]r3.Vec
	for e, n := range wind {
		if n != 0 {
			open = append(open, [2]r3.Vec{e.a, e.b})
		}
	}
	return open
}

func vecLess(a, b r3.Vec) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}
