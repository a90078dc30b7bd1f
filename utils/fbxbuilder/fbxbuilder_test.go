package fbxbuilder

import (
	"bytes"
	"testing"

	"github.com/mogaika/fbx/builders/bfbx73"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalSettings(t *testing.T) {
	f := NewFBXBuilder("teapot.fbx")

	settings := f.Root().GetNode("GlobalSettings")
	require.NotNil(t, settings)
	var names []string
	for _, p := range settings.GetNode("Properties70").GetNodes("P") {
		names = append(names, p.Properties[0].(string))
	}
	assert.Equal(t, []string{"UpAxis", "UpAxisSign", "UnitScaleFactor"}, names)
}

func TestWriteCountsDefinitions(t *testing.T) {
	f := NewFBXBuilder("teapot.fbx")
	f.AddObjects(
		bfbx73.Model(f.GenerateId(), "a\x00\x01Model", "Mesh"),
		bfbx73.Model(f.GenerateId(), "b\x00\x01Model", "Mesh"),
		bfbx73.Geometry(f.GenerateId(), "a\x00\x01Geometry", "Mesh"),
	)

	var out bytes.Buffer
	require.NoError(t, f.Write(&out))
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("Kaydara FBX Binary")))

	definitions := f.Root().GetNode("Definitions")
	assert.Equal(t, int32(4), definitions.GetNode("Count").Properties[0])
	counts := make(map[string]interface{})
	for _, ot := range definitions.GetNodes("ObjectType") {
		counts[ot.Properties[0].(string)] = ot.GetNode("Count").Properties[0]
	}
	assert.Equal(t, map[string]interface{}{
		"GlobalSettings": int32(1),
		"Model":          int32(2),
		"Geometry":       int32(1),
	}, counts)
}

func TestGenerateIdIncreases(t *testing.T) {
	f := NewFBXBuilder("teapot.fbx")
	a := f.GenerateId()
	assert.Equal(t, a+1, f.GenerateId())
}
