package shader

// Names of the attributes and uniforms declared by VertexSource.
const (
	PositionAttrib    = "aVertexPosition"
	ColorAttrib       = "aVertexColor"
	ModelViewUniform  = "uModelViewMatrix"
	ProjectionUniform = "uProjectionMatrix"
)

// VertexSource transforms each vertex by the model-view and projection
// matrices and passes its color through.
const VertexSource = `
attribute vec4 aVertexPosition;
attribute vec4 aVertexColor;

uniform mat4 uModelViewMatrix;
uniform mat4 uProjectionMatrix;

varying lowp vec4 vColor;

void main(void) {
	gl_Position = uProjectionMatrix * uModelViewMatrix * aVertexPosition;
	vColor = aVertexColor;
}`

// FragmentSource paints the interpolated vertex color.
const FragmentSource = `
varying lowp vec4 vColor;

void main(void) {
	gl_FragColor = vColor;
}`
