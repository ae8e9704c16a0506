// Package parts builds the printable solids of the needle drive:
// bearing holder, stepper grip, needle adapter and spool holder, plus
// the positioned assembly of all four. Builders are pure functions
// from a Spec to an sdf.SDF3 and never mutate the Spec.
package parts

// Spec holds every dimension of the needle drive, in millimeters.
// The zero value is not useful; start from DefaultSpec and override
// fields before building.
type Spec struct {
	// Bearing catalog dimensions.
	BearingOD          float64
	BearingID          float64
	BearingThickness   float64
	GapBetweenBearings float64

	GeneralWallThickness float64

	// Sewing needle shaft, round stock with two flats.
	NeedleShaftLength     float64
	NeedleShaftOD         float64
	NeedleShaftFlatsWidth float64

	// Stepper motor interface.
	MountStepperWidth                    float64
	MountStepperInterfaceDepth           float64
	MountStepperTopToBottomBearingBottom float64
	DistStepperToNeedleAxis              float64

	// Vertical raiser member joining holder and grip.
	RaiserWidthX float64
	RaiserWidthY float64

	// Thread spool held beside the frame.
	SpoolWidth            float64
	SpoolDiameter         float64
	DiameterAtSpoolHolder float64
}

// Catalog-tied tolerances. These match one specific bearing, bolt and
// needle stock; they are not derived from the other dimensions.
const (
	// matingClearance relieves the adapter barrel inside the bearing bore.
	matingClearance = 0.1
	// boltHoleDiameter clears an M3 bolt.
	boltHoleDiameter = 3.2
	// boreRelief left under the bearings so they seat on a lip.
	boreRelief = 4.0
	// flangeOverhang past the adapter barrel radius.
	flangeOverhang = 2.0
	// spoolBoreClearance over the retaining screw diameter.
	spoolBoreClearance = 0.5
	// raiserFit slop around the raiser member channel.
	raiserFit = 0.1
)

// DefaultSpec returns the dimensions of the reference build. The
// defaults are mutually consistent: every derived value is positive
// and every part builds manifold.
func DefaultSpec() Spec {
	return Spec{
		BearingOD:          16,
		BearingID:          8,
		BearingThickness:   5,
		GapBetweenBearings: 2,

		GeneralWallThickness: 3,

		NeedleShaftLength:     16,
		NeedleShaftOD:         2 + 0.25,
		NeedleShaftFlatsWidth: 1.5 + 0.2,

		MountStepperWidth:                    42,
		MountStepperInterfaceDepth:           20,
		MountStepperTopToBottomBearingBottom: 94,
		DistStepperToNeedleAxis:              32,

		RaiserWidthX: 15,
		RaiserWidthY: 10,

		SpoolWidth:            14,
		SpoolDiameter:         72,
		DiameterAtSpoolHolder: 8,
	}
}

// HolderHeight is the stack height of one bearing pair with its gap.
func (k Spec) HolderHeight() float64 {
	return 2*k.BearingThickness + k.GapBetweenBearings
}

// MatingDiameter is the adapter barrel diameter that slips into the
// bearing bore.
func (k Spec) MatingDiameter() float64 {
	return k.BearingID - matingClearance
}
