package parts

import (
	"math"

	"github.com/soypat/sdf"
	form3 "github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

// anchor selects which bounding box coordinate of a shape lands on
// the placement position along one axis.
type anchor int

const (
	anchorCenter anchor = iota
	anchorMin
	anchorMax
)

// place translates s so its anchored bounding box point lands on at.
// Axes anchor independently: anchorMax on Z puts the top face at at.Z
// with the shape growing downward.
func place(s sdf.SDF3, at r3.Vec, x, y, z anchor) sdf.SDF3 {
	bb := s.Bounds()
	off := r3.Vec{
		X: at.X - anchorCoord(bb.Min.X, bb.Max.X, x),
		Y: at.Y - anchorCoord(bb.Min.Y, bb.Max.Y, y),
		Z: at.Z - anchorCoord(bb.Min.Z, bb.Max.Z, z),
	}
	return sdf.Transform3D(s, sdf.Translate3D(off))
}

func anchorCoord(lo, hi float64, a anchor) float64 {
	switch a {
	case anchorMin:
		return lo
	case anchorMax:
		return hi
	}
	return 0.5 * (lo + hi)
}

// seat places s centered in X and Y with its bottom face at height z.
func seat(s sdf.SDF3, z float64) sdf.SDF3 {
	return place(s, r3.Vec{Z: z}, anchorCenter, anchorCenter, anchorMin)
}

func box(x, y, z float64) sdf.SDF3 { return form3.Box(r3.Vec{X: x, Y: y, Z: z}, 0) }

func cyl(height, radius float64) sdf.SDF3 { return form3.Cylinder(height, radius, 0) }

// boreY is a drill along the Y axis: a cylinder of the given diameter
// and length centered on at.
func boreY(diameter, length float64, at r3.Vec) sdf.SDF3 {
	m := sdf.Translate3D(at).Mul(sdf.RotateX(math.Pi / 2))
	return sdf.Transform3D(cyl(length, diameter/2), m)
}

// boreX is the same drill along the X axis.
func boreX(diameter, length float64, at r3.Vec) sdf.SDF3 {
	m := sdf.Translate3D(at).Mul(sdf.RotateY(math.Pi / 2))
	return sdf.Transform3D(cyl(length, diameter/2), m)
}
