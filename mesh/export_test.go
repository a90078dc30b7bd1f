package mesh

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/gl_teapot/utils/gltfutils"
)

func TestExportGLTF(t *testing.T) {
	m := Teapot()
	doc := m.ExportGLTFDefault()

	require.Len(t, doc.Meshes, 1)
	require.Len(t, doc.Nodes, 1)
	assert.Equal(t, []uint32{0}, doc.Scenes[0].Nodes)
	assert.Equal(t, "teapot", doc.Nodes[0].Name)

	primitive := doc.Meshes[0].Primitives[0]
	require.NotNil(t, primitive.Indices)
	assert.Equal(t, uint32(len(m.Indices)), doc.Accessors[*primitive.Indices].Count)
	assert.Equal(t, uint32(len(m.Positions)), doc.Accessors[primitive.Attributes["POSITION"]].Count)
	assert.Equal(t, uint32(len(m.Normals)), doc.Accessors[primitive.Attributes["NORMAL"]].Count)
	require.NotNil(t, primitive.Material)
	assert.Equal(t, uint32(0), *primitive.Material)

	var glb bytes.Buffer
	require.NoError(t, gltfutils.Export(&glb, doc, true))
	assert.True(t, bytes.HasPrefix(glb.Bytes(), []byte("glTF")))

	var text bytes.Buffer
	require.NoError(t, gltfutils.Export(&text, m.ExportGLTFDefault(), false))
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(text.Bytes(), &parsed))
	assert.Contains(t, text.String(), "data:application/octet-stream;base64,")
}

func TestExportFbx(t *testing.T) {
	m := Teapot()
	f := m.ExportFbxDefault("teapot.fbx")

	geometry := f.Objects().GetNode("Geometry")
	require.NotNil(t, geometry)
	assert.Len(t, geometry.GetNode("Vertices").Properties[0], 3*len(m.Positions))

	indexes, ok := geometry.GetNode("PolygonVertexIndex").Properties[0].([]int32)
	require.True(t, ok)
	require.Len(t, indexes, len(m.Indices))
	for i := 0; i < len(indexes); i += 3 {
		assert.GreaterOrEqual(t, indexes[i], int32(0))
		assert.GreaterOrEqual(t, indexes[i+1], int32(0))
		assert.Equal(t, int32(m.Indices[i+1]), -indexes[i+2]-1)
		assert.Equal(t, int32(m.Indices[i+2]), indexes[i+1])
	}
	require.NotNil(t, f.Objects().GetNode("Model"))

	var out bytes.Buffer
	require.NoError(t, f.Write(&out))
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("Kaydara FBX Binary")))
}
