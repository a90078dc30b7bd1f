package gltfutils

import (
	"io"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
)

// NewDocument returns an empty document with one scene.
func NewDocument() *gltf.Document {
	return gltf.NewDocument()
}

// AddToScene makes node a root of the default scene.
func AddToScene(doc *gltf.Document, node *gltf.Node) uint32 {
	index := uint32(len(doc.Nodes))
	doc.Nodes = append(doc.Nodes, node)
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, index)
	return index
}

// Export writes a .glb when binary is set. Otherwise the json form is
// written with the buffers embedded as data uris.
func Export(w io.Writer, doc *gltf.Document, binary bool) error {
	if !binary {
		for _, b := range doc.Buffers {
			b.EmbeddedResource()
		}
	}

	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = binary
	if err := encoder.Encode(doc); err != nil {
		return errors.Wrap(err, "Unable to encode gltf")
	}
	return nil
}
