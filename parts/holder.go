package parts

import (
	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// pryWidth is the X extent of the slot used to pop bearings out.
const pryWidth = 5.0

// BearingHolder houses two bearing pairs: one at the needle and a
// matching pair just below the stepper mount, joined by the vertical
// raiser member. Both hubs share the pocket, bore and pry-slot
// pattern so the same bearings fit either elevation.
func BearingHolder(k Spec) sdf.SDF3 {
	hubRadius := k.BearingOD/2 + k.GeneralWallThickness
	upperZ := k.MountStepperTopToBottomBearingBottom - k.BearingThickness - k.GapBetweenBearings

	// Lower and upper hubs.
	p := seat(cyl(k.HolderHeight(), hubRadius), 0)
	p = sdf.Union3D(p, seat(cyl(k.HolderHeight(), hubRadius), upperZ))

	// Raiser member up to the stepper grip.
	p = sdf.Union3D(p, place(
		box(k.RaiserWidthX, k.RaiserWidthY, k.MountStepperTopToBottomBearingBottom),
		r3.Vec{Y: k.BearingOD/2 + k.RaiserWidthY},
		anchorCenter, anchorMax, anchorMin,
	))

	for _, hubZ := range [2]float64{0, upperZ} {
		// Pockets for the stacked bearings.
		for _, dz := range [2]float64{0, k.BearingThickness + k.GapBetweenBearings} {
			p = sdf.Difference3D(p, seat(cyl(k.BearingThickness, k.BearingOD/2), hubZ+dz))
		}
		// Bore through the middle, leaving a seating lip.
		p = sdf.Difference3D(p, seat(cyl(k.HolderHeight(), (k.BearingOD-boreRelief)/2), hubZ))
		// Slot to pry the bearings out.
		p = sdf.Difference3D(p, place(
			box(pryWidth, k.BearingOD/2, k.GapBetweenBearings+3),
			r3.Vec{Y: -k.BearingOD/2 - 1, Z: hubZ + k.HolderHeight()/2},
			anchorCenter, anchorCenter, anchorCenter,
		))
	}

	return cutRaiserBolts(p, k)
}
