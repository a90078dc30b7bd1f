package mesh

import (
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/mogaika/gl_teapot/utils/gltfutils"
)

// ExportGLTF appends the mesh to doc and returns its mesh index. Triangles
// are flipped to the counter clockwise winding gltf expects.
func (m *Mesh) ExportGLTF(doc *gltf.Document) uint32 {
	positions := make([][3]float32, len(m.Positions))
	for i, p := range m.Positions {
		positions[i] = p
	}
	normals := make([][3]float32, len(m.Normals))
	for i, n := range m.Normals {
		normals[i] = n
	}
	indices := make([]uint32, len(m.Indices))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		indices[i] = uint32(m.Indices[i])
		indices[i+1] = uint32(m.Indices[i+2])
		indices[i+2] = uint32(m.Indices[i+1])
	}

	attributes := map[string]uint32{
		"POSITION": modeler.WritePosition(doc, positions),
		"NORMAL":   modeler.WriteNormal(doc, normals),
	}
	indicesAccessor := modeler.WriteIndices(doc, indices)

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: m.Name,
		Primitives: []*gltf.Primitive{
			{
				Indices:    &indicesAccessor,
				Attributes: attributes,
			},
		},
	})
	return uint32(len(doc.Meshes) - 1)
}

// ExportGLTFDefault builds a document with the mesh as the only scene node.
func (m *Mesh) ExportGLTFDefault() *gltf.Document {
	doc := gltfutils.NewDocument()

	doc.Materials = append(doc.Materials, &gltf.Material{
		Name: "default",
	})

	meshIndex := m.ExportGLTF(doc)
	for _, primitive := range doc.Meshes[meshIndex].Primitives {
		primitive.Material = gltf.Index(0)
	}
	gltfutils.AddToScene(doc, &gltf.Node{
		Name: m.Name,
		Mesh: gltf.Index(meshIndex),
	})
	return doc
}
