package parts

import (
	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// spoolSideClearance lets the spool spin between the cheeks.
	spoolSideClearance = 0.5
	// spoolRadialClearance keeps the spool rim off the base plate.
	spoolRadialClearance = 1.0
)

// SpoolHolder cradles the thread spool between two cheek plates. The
// retaining screw runs through the cheek bores and the spool core;
// a frame screw drops through the base plate.
func SpoolHolder(k Spec) sdf.SDF3 {
	wall := k.GeneralWallThickness
	boreD := k.DiameterAtSpoolHolder + spoolBoreClearance
	axleZ := k.SpoolDiameter/2 + wall + spoolRadialClearance
	cheekX := k.SpoolWidth/2 + spoolSideClearance + wall/2
	depthY := k.SpoolDiameter / 2

	// Base plate.
	p := seat(box(k.SpoolWidth+2*spoolSideClearance+2*wall, depthY, wall), 0)

	// Cheek plates either side of the spool.
	for _, x := range [2]float64{-cheekX, cheekX} {
		p = sdf.Union3D(p, place(
			box(wall, depthY, axleZ+2*wall),
			r3.Vec{X: x},
			anchorCenter, anchorCenter, anchorMin,
		))
	}

	// Retaining screw bore through both cheeks.
	p = sdf.Difference3D(p, boreX(boreD, 2*k.SpoolWidth, r3.Vec{Z: axleZ}))

	// Frame mounting screw through the base.
	p = sdf.Difference3D(p, place(
		cyl(4*wall, boltHoleDiameter/2),
		r3.Vec{Y: depthY / 4},
		anchorCenter, anchorCenter, anchorCenter,
	))

	return p
}
