package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFamilyAllowsIsCaseInsensitive(t *testing.T) {
	assert.True(t, Models.Allows("statue.glb"))
	assert.True(t, Models.Allows("statue.GLB"))
	assert.True(t, AudioGuides.Allows("guide.MP3"))
	assert.True(t, Images.Allows("photo.JPeG"))

	assert.False(t, Models.Allows("photo.PNG"), "png is not a model extension")
	assert.False(t, AudioGuides.Allows("guide.flac"))
	assert.False(t, Models.Allows("noextension"))
	assert.False(t, Models.Allows(""))
}

func TestContentTypeResolution(t *testing.T) {
	tests := []struct {
		family   Family
		filename string
		want     string
	}{
		{AudioGuides, "a.mp3", "audio/mpeg"},
		{AudioGuides, "a.WAV", "audio/wav"},
		{AudioGuides, "a.ogg", "audio/ogg"},
		{AudioGuides, "a.m4a", "audio/mp4"},
		{AudioGuides, "a.xyz", "audio/mpeg"}, // family default
		{AudioGuides, "noext", "audio/mpeg"},
		{Models, "a.glb", "model/gltf-binary"},
		{Models, "a.txt", "model/gltf-binary"},
		{Images, "a.png", "image/png"},
		{Images, "a.unknown", "image/jpeg"},
		{Visualizations, "a.html", "text/html"},
		{Visualizations, "a.htm", "text/html"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.family.ContentType(tt.filename), "%s/%s", tt.family.Name, tt.filename)
	}
}

func TestExtensionList(t *testing.T) {
	assert.Equal(t, "m4a, mp3, ogg, wav", AudioGuides.ExtensionList())
	assert.Equal(t, "glb", Models.ExtensionList())
}

func TestAllBuckets(t *testing.T) {
	assert.Equal(t, []string{"models", "audio-guides", "images", "visualizations"}, AllBuckets())
}
