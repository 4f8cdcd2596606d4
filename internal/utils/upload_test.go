package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUploadName(t *testing.T) {
	name, err := GenerateUploadName("photo.PNG", "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))

	// Extension falls back to the declared content type.
	name, err = GenerateUploadName("photo", "image/webp")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".webp"))

	// Two uploads of the same file never collide.
	a, err := GenerateUploadName("photo.jpg", "image/jpeg")
	require.NoError(t, err)
	b, err := GenerateUploadName("photo.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
