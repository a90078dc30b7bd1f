package mesh

import (
	"github.com/mogaika/fbx/builders/bfbx73"

	"github.com/mogaika/gl_teapot/utils/fbxbuilder"
)

// ExportFbx adds the geometry and its model to f and returns the model id.
// Polygon indices of the last corner are stored as -(index)-1, triangles are
// flipped to counter clockwise.
func (m *Mesh) ExportFbx(f *fbxbuilder.FBXBuilder) int64 {
	vertices := make([]float64, 0, len(m.Positions)*3)
	for _, p := range m.Positions {
		vertices = append(vertices, float64(p[0]), float64(p[1]), float64(p[2]))
	}
	normals := make([]float64, 0, len(m.Normals)*3)
	for _, n := range m.Normals {
		normals = append(normals, float64(n[0]), float64(n[1]), float64(n[2]))
	}
	indexes := make([]int32, 0, len(m.Indices))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		indexes = append(indexes, int32(m.Indices[i]), int32(m.Indices[i+2]), -int32(m.Indices[i+1])-1)
	}

	geometryId := f.GenerateId()
	geometry := bfbx73.Geometry(geometryId, m.Name+"\x00\x01Geometry", "Mesh").AddNodes(
		bfbx73.Properties70().AddNodes(
			bfbx73.P("Color", "ColorRGB", "Color", "", float64(1), float64(1), float64(1)),
		),
		bfbx73.GeometryVersion(124),
		bfbx73.Vertices(vertices),
		bfbx73.PolygonVertexIndex(indexes),
		bfbx73.LayerElementNormal(0).AddNodes(
			bfbx73.Version(101),
			bfbx73.Name(""),
			bfbx73.MappingInformationType("ByVertice"),
			bfbx73.ReferenceInformationType("Direct"),
			bfbx73.Normals(normals),
		),
		bfbx73.Layer(0).AddNodes(
			bfbx73.Version(100),
			bfbx73.LayerElement().AddNodes(
				bfbx73.Type("LayerElementNormal"),
				bfbx73.TypedIndex(0),
			),
		),
	)

	modelId := f.GenerateId()
	model := bfbx73.Model(modelId, m.Name+"\x00\x01Model", "Mesh").AddNodes(
		bfbx73.Version(232),
		bfbx73.Properties70().AddNodes(
			bfbx73.P("InheritType", "enum", "", "", int32(1)),
			bfbx73.P("DefaultAttributeIndex", "int", "Integer", "", int32(0)),
			bfbx73.P("Lcl Translation", "Lcl Translation", "", "A", float64(0), float64(0), float64(0)),
			bfbx73.P("Lcl Rotation", "Lcl Rotation", "", "A", float64(0), float64(0), float64(0)),
			bfbx73.P("Lcl Scaling", "Lcl Scaling", "", "A", float64(1), float64(1), float64(1)),
		),
		bfbx73.Shading(true),
		bfbx73.Culling("CullingOff"),
	)

	f.AddObjects(model, geometry)
	f.AddConnections(bfbx73.C("OO", geometryId, modelId))
	return modelId
}

// ExportFbxDefault builds a document with the mesh attached to the scene root.
func (m *Mesh) ExportFbxDefault(filename string) *fbxbuilder.FBXBuilder {
	f := fbxbuilder.NewFBXBuilder(filename)
	modelId := m.ExportFbx(f)
	f.AddConnections(bfbx73.C("OO", modelId, int64(0)))
	return f
}
