package parts

import (
	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// raiserBoltOffsets are the drop distances from the mount top down to
// each raiser bolt axis. StepperGrip and BearingHolder drill this
// exact pattern so the two parts bolt together; keep it in one place.
var raiserBoltOffsets = [...]float64{-8, -21, -34}

// StepperGrip is the bracket that grips the stepper motor and reaches
// out to the bearing holder raiser.
func StepperGrip(k Spec) sdf.SDF3 {
	wall := k.GeneralWallThickness
	topZ := k.MountStepperTopToBottomBearingBottom

	// Shell around the stepper interface, hanging below the mount top.
	p := place(
		box(k.MountStepperWidth+2*wall, k.MountStepperInterfaceDepth+wall, k.MountStepperWidth+wall),
		r3.Vec{Y: k.DistStepperToNeedleAxis, Z: topZ},
		anchorCenter, anchorMin, anchorMax,
	)

	// Arm reaching back to the raiser above the needle axis.
	p = sdf.Union3D(p, place(
		box(k.MountStepperWidth/2, k.DistStepperToNeedleAxis, k.MountStepperWidth+wall),
		r3.Vec{Y: k.BearingOD / 2, Z: topZ},
		anchorCenter, anchorMin, anchorMax,
	))

	// Cavity for the motor body itself.
	p = sdf.Difference3D(p, place(
		box(k.MountStepperWidth, k.MountStepperInterfaceDepth, k.MountStepperWidth),
		r3.Vec{Y: k.DistStepperToNeedleAxis + wall, Z: topZ - wall},
		anchorCenter, anchorMin, anchorMax,
	))

	// Channel for the raiser member, full height plus fit slop.
	p = sdf.Difference3D(p, place(
		box(k.RaiserWidthX+raiserFit, k.RaiserWidthY+raiserFit, 2*topZ),
		r3.Vec{Y: k.BearingOD / 2},
		anchorCenter, anchorMin, anchorMin,
	))

	return cutRaiserBolts(p, k)
}

// cutRaiserBolts drills the shared bolt pattern through the raiser
// channel, along Y through the whole part.
func cutRaiserBolts(p sdf.SDF3, k Spec) sdf.SDF3 {
	for _, dz := range raiserBoltOffsets {
		at := r3.Vec{
			Y: k.BearingOD/2 + k.RaiserWidthY/2,
			Z: k.MountStepperTopToBottomBearingBottom + dz,
		}
		p = sdf.Difference3D(p, boreY(boltHoleDiameter, 2*k.MountStepperWidth, at))
	}
	return p
}
