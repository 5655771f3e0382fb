//go:build darwin || linux || windows

package mobilegl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maspe36/webgl-cube-demo/gles"
)

func TestHandles(t *testing.T) {
	assert.Equal(t, uint32(7), shader(gles.Shader{Value: 7}).Value)

	p := program(gles.Program{Value: 3})
	assert.True(t, p.Init)
	assert.Equal(t, uint32(3), p.Value)
	assert.False(t, program(gles.Program{}).Init)
}
