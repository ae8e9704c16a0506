// Package preview rasterizes quick-look PNG images of exported STL
// models so a build can be eyeballed without opening a slicer.
package preview

import (
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// Scale down images relative to Full HD resolution.
const (
	fhdScale      = 0.4
	width, height = int(1920 * fhdScale), int(1080 * fhdScale)
)

// View positions the camera for a snapshot.
type View struct {
	// what position (point) to look at
	LookAt r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye is located at (point)
	Eye  r3.Vec
	Near float64
	Far  float64
}

// Iso is the default view used for part snapshots.
var Iso = View{
	Up:   r3.Vec{Z: 1},
	Eye:  r3.Vec{X: 2.4, Y: 2.4, Z: 2.4},
	Near: 1,
	Far:  10,
}

// Snapshot renders the STL model at stlPath into a shaded PNG at
// pngPath using software rasterization.
func Snapshot(stlPath, pngPath string, view View) error {
	mesh, err := fauxgl.LoadSTL(stlPath)
	if err != nil {
		return err
	}
	const (
		scale = 1  // optional supersampling
		fovy  = 30 // vertical field of view in degrees
	)
	var (
		eye    = fauxgl.V(view.Eye.X, view.Eye.Y, view.Eye.Z)
		center = fauxgl.V(view.LookAt.X, view.LookAt.Y, view.LookAt.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
		color  = fauxgl.HexColor("#468966")
	)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	img := context.Image()
	img = resize.Resize(uint(width), uint(height), img, resize.Bilinear)
	return fauxgl.SavePNG(pngPath, img)
}
