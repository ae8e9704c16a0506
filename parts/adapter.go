package parts

import (
	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// setScrewDiameter pins the needle shaft inside the barrel.
	setScrewDiameter = 2.0
	// threadReliefWidth and threadReliefDepth size the routing slot
	// across the flange underside.
	threadReliefWidth = 1.2
	threadReliefDepth = 1.0
	// flatsCutDepth is the Y extent of the box that flattens the
	// needle shaft cut. Anything wider than the shaft works.
	flatsCutDepth = 10.0
)

// BearingAdapter converts the round bearing bore to the needle shaft
// cross-section, which is round stock flattened on two sides.
func BearingAdapter(k Spec) sdf.SDF3 {
	h := k.HolderHeight()

	// Barrel through both bearings, flange hanging under z=0.
	p := seat(cyl(h, k.MatingDiameter()/2), 0)
	p = sdf.Union3D(p, place(
		cyl(k.GeneralWallThickness, k.MatingDiameter()/2+flangeOverhang),
		r3.Vec{},
		anchorCenter, anchorCenter, anchorMax,
	))

	// Needle shaft channel: cylinder flattened by intersecting a box.
	shaft := sdf.Intersect3D(
		seat(cyl(h, k.NeedleShaftOD/2), 0),
		seat(box(k.NeedleShaftFlatsWidth, flatsCutDepth, h), 0),
	)
	p = sdf.Difference3D(p, shaft)

	// Thread relief across the flange underside.
	p = sdf.Difference3D(p, place(
		box(threadReliefWidth, k.MatingDiameter()+2*flangeOverhang, threadReliefDepth),
		r3.Vec{Z: -k.GeneralWallThickness},
		anchorCenter, anchorCenter, anchorMin,
	))

	// Set screw through the barrel wall, reachable through the gap
	// between the bearings.
	screwZ := k.BearingThickness + k.GapBetweenBearings/2
	p = sdf.Difference3D(p, boreY(setScrewDiameter, 2*k.MatingDiameter(), r3.Vec{Z: screwZ}))

	return p
}
