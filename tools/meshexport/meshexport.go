package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/mogaika/gl_teapot/mesh"
	"github.com/mogaika/gl_teapot/utils/gltfutils"
)

func main() {
	var out string
	flag.StringVar(&out, "o", "teapot.glb", "Output file, format by extension: .glb, .gltf or .fbx")
	flag.Parse()

	if err := export(mesh.Teapot(), out); err != nil {
		log.Fatal(err)
	}
	log.Printf("Exported %q", out)
}

func export(m *mesh.Mesh, path string) error {
	var write func(w io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb", ".gltf":
		write = func(w io.Writer) error { return gltfutils.Export(w, m.ExportGLTFDefault(), ext == ".glb") }
	case ".fbx":
		write = m.ExportFbxDefault(filepath.Base(path)).Write
	default:
		return errors.Errorf("Unknown format %q", ext)
	}
	return writeFile(path, write)
}

// writeFile leaves no partial file behind when write fails.
func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Can't create %q", path)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return errors.Wrapf(err, "Can't export %q", path)
	}
	return f.Close()
}
