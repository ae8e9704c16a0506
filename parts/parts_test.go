package parts

import (
	"math"
	"testing"

	"github.com/dvera/needlecad/internal/meshutil"
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/render"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func TestBearingHolderEnvelope(t *testing.T) {
	k := DefaultSpec()
	bb := BearingHolder(k).Bounds()
	wantH := k.MountStepperTopToBottomBearingBottom + k.BearingThickness
	if h := bb.Max.Z - bb.Min.Z; math.Abs(h-wantH) > tol {
		t.Errorf("height = %g, want %g", h, wantH)
	}
	if math.Abs(bb.Min.Z) > tol {
		t.Errorf("base sits at z=%g, want 0", bb.Min.Z)
	}
	wantR := k.BearingOD/2 + k.GeneralWallThickness
	if math.Abs(bb.Max.X-wantR) > tol || math.Abs(bb.Min.X+wantR) > tol {
		t.Errorf("X footprint = [%g, %g], want ±%g", bb.Min.X, bb.Max.X, wantR)
	}
}

// The grip and the holder bolt together through the raiser; both must
// drill the identical three-hole pattern.
func TestRaiserBoltPatternShared(t *testing.T) {
	k := DefaultSpec()
	probes := []struct {
		name string
		s    sdf.SDF3
		y    float64 // where solid wall surrounds the bolt channel
	}{
		{"stepper_grip", StepperGrip(k), k.DistStepperToNeedleAxis - 10},
		{"bearing_holder", BearingHolder(k), k.BearingOD/2 + k.RaiserWidthY/2},
	}
	for _, probe := range probes {
		for _, dz := range raiserBoltOffsets {
			at := r3.Vec{Y: probe.y, Z: k.MountStepperTopToBottomBearingBottom + dz}
			if probe.s.Evaluate(at) <= 0 {
				t.Errorf("%s: no bolt channel at offset %g", probe.name, dz)
			}
		}
		mid := r3.Vec{
			Y: probe.y,
			Z: k.MountStepperTopToBottomBearingBottom + (raiserBoltOffsets[0]+raiserBoltOffsets[1])/2,
		}
		if probe.s.Evaluate(mid) >= 0 {
			t.Errorf("%s: no material between the bolt holes", probe.name)
		}
	}
}

func TestBearingAdapterShaftFlats(t *testing.T) {
	k := DefaultSpec()
	s := BearingAdapter(k)
	z := k.BearingThickness / 2
	// Inside the shaft bore and between the flats: removed.
	in := r3.Vec{Y: k.NeedleShaftOD/2 - 0.1, Z: z}
	if s.Evaluate(in) <= 0 {
		t.Error("needle shaft channel not cut")
	}
	// Inside the bore circle but past the flat: material stays.
	out := r3.Vec{X: k.NeedleShaftOD/2 - 0.1, Z: z}
	if s.Evaluate(out) >= 0 {
		t.Error("flats not preserved in the shaft channel")
	}
}

func TestSpoolHolderBore(t *testing.T) {
	k := DefaultSpec()
	k.SpoolWidth = 14
	k.SpoolDiameter = 72
	s := SpoolHolder(k)
	boreR := (k.DiameterAtSpoolHolder + spoolBoreClearance) / 2
	axleZ := k.SpoolDiameter/2 + k.GeneralWallThickness + spoolRadialClearance
	cheekX := k.SpoolWidth/2 + spoolSideClearance + k.GeneralWallThickness/2
	if s.Evaluate(r3.Vec{X: cheekX, Z: axleZ + boreR - 0.1}) <= 0 {
		t.Error("retaining screw bore not cut through the cheek")
	}
	if s.Evaluate(r3.Vec{X: cheekX, Z: axleZ + boreR + 0.1}) >= 0 {
		t.Error("cheek material missing just outside the bore wall")
	}
}

func TestBuildDeterminism(t *testing.T) {
	k := DefaultSpec()
	a, b := BearingHolder(k), BearingHolder(k)
	if a.Bounds() != b.Bounds() {
		t.Fatal("bounds differ between identical builds")
	}
	bb := a.Bounds()
	const n = 6
	size := r3.Sub(bb.Max, bb.Min)
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			for l := 0; l <= n; l++ {
				p := r3.Add(bb.Min, r3.Vec{
					X: float64(i) / n * size.X,
					Y: float64(j) / n * size.Y,
					Z: float64(l) / n * size.Z,
				})
				if a.Evaluate(p) != b.Evaluate(p) {
					t.Fatalf("evaluation differs at %v", p)
				}
			}
		}
	}
}

func TestDefaultPartsManifold(t *testing.T) {
	if testing.Short() {
		t.Skip("rendering all parts is slow")
	}
	k := DefaultSpec()
	for _, part := range Catalog(k) {
		part := part
		t.Run(part.Name, func(t *testing.T) {
			model, err := render.RenderAll(render.NewOctreeRenderer(part.Solid, 64))
			if err != nil {
				t.Fatal(err)
			}
			if len(model) == 0 {
				t.Fatal("no triangles rendered")
			}
			if open := meshutil.OpenEdges(model); len(open) != 0 {
				t.Errorf("mesh has %d unbalanced edges", len(open))
			}
		})
	}
}

func TestCatalogNames(t *testing.T) {
	want := []string{"assembly", "bearing_holder", "stepper_grip", "bearing_adapter", "spool_holder"}
	catalog := Catalog(DefaultSpec())
	if len(catalog) != len(want) {
		t.Fatalf("catalog has %d parts, want %d", len(catalog), len(want))
	}
	for i, part := range catalog {
		if part.Name != want[i] {
			t.Errorf("catalog[%d] = %q, want %q", i, part.Name, want[i])
		}
		if part.Solid == nil {
			t.Errorf("catalog[%d] %q has no solid", i, part.Name)
		}
	}
}
