package parts

import (
	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Display offsets that keep the exported parts from overlapping in
// the assembly view. The assembly exists for visualization only.
const (
	adapterBayX = 25.0
	spoolBayX   = -60.0
)

// NamedSolid pairs an export label with its built solid.
type NamedSolid struct {
	Name  string
	Solid sdf.SDF3
}

// Assembly builds every part and joins them at their display offsets.
func Assembly(k Spec) sdf.SDF3 {
	return assemble(BearingHolder(k), StepperGrip(k), BearingAdapter(k), SpoolHolder(k))
}

// Catalog builds each leaf part exactly once and derives the assembly
// from the already built solids. Slice order is the export order.
func Catalog(k Spec) []NamedSolid {
	holder := BearingHolder(k)
	grip := StepperGrip(k)
	adapter := BearingAdapter(k)
	spool := SpoolHolder(k)
	return []NamedSolid{
		{Name: "assembly", Solid: assemble(holder, grip, adapter, spool)},
		{Name: "bearing_holder", Solid: holder},
		{Name: "stepper_grip", Solid: grip},
		{Name: "bearing_adapter", Solid: adapter},
		{Name: "spool_holder", Solid: spool},
	}
}

func assemble(holder, grip, adapter, spool sdf.SDF3) sdf.SDF3 {
	adapter = sdf.Transform3D(adapter, sdf.Translate3D(r3.Vec{X: adapterBayX}))
	spool = sdf.Transform3D(spool, sdf.Translate3D(r3.Vec{X: spoolBayX}))
	return sdf.Union3D(holder, grip, adapter, spool)
}
