// Package export writes the on-disk representations of a part: a
// binary STL mesh for printing and a 3MF interchange copy.
package export

import (
	"os"
	"path/filepath"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/render"
	"gonum.org/v1/gonum/spatial/r3"
)

// Part renders s and writes <dir>/<name>.stl and <dir>/<name>.3mf,
// creating dir if absent. The rendered triangles are returned so the
// caller can inspect the mesh without rendering twice.
func Part(dir, name string, s sdf.SDF3, meshCells int) ([]r3.Triangle, error) {
	if err := os.MkdirAll(dir, 0o775); err != nil {
		return nil, err
	}
	model, err := render.RenderAll(render.NewOctreeRenderer(s, meshCells))
	if err != nil {
		return nil, err
	}
	fp, err := os.Create(filepath.Join(dir, name+".stl"))
	if err != nil {
		return nil, err
	}
	if err := render.WriteSTL(fp, model); err != nil {
		fp.Close()
		return nil, err
	}
	if err := fp.Close(); err != nil {
		return nil, err
	}
	// Renderers are single use; the 3MF writer needs a fresh one.
	err = render.Create3MF(filepath.Join(dir, name+".3mf"), render.NewOctreeRenderer(s, meshCells))
	if err != nil {
		return nil, err
	}
	return model, nil
}
