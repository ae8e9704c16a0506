// Command needlecad generates the printable parts of the needle
// drive. It builds every part from the default Spec and writes an
// STL, a 3MF and a PNG preview per part into the build directory.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dvera/needlecad/internal/export"
	"github.com/dvera/needlecad/internal/meshutil"
	"github.com/dvera/needlecad/internal/preview"
	"github.com/dvera/needlecad/parts"
)

const (
	outputDir = "build"
	meshCells = 250
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	k := parts.DefaultSpec()
	for _, part := range parts.Catalog(k) {
		if part.Solid == nil {
			log.Error("builder returned no solid", "part", part.Name)
			os.Exit(1)
		}
		log.Info("exporting part", "part", part.Name)
		model, err := export.Part(outputDir, part.Name, part.Solid, meshCells)
		if err != nil {
			log.Error("export failed", "part", part.Name, "err", err)
			os.Exit(1)
		}
		if !meshutil.Closed(model) {
			log.Warn("part is not manifold", "part", part.Name, "openEdges", len(meshutil.OpenEdges(model)))
		}
		stl := filepath.Join(outputDir, part.Name+".stl")
		png := filepath.Join(outputDir, part.Name+".png")
		if err := preview.Snapshot(stl, png, preview.Iso); err != nil {
			log.Warn("preview render failed", "part", part.Name, "err", err)
		}
	}
}
