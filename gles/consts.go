package gles

// Enumerants used by the renderer.  Values are from the GLES 2.0 headers.
// INFO_LOG_LENGTH is only queried by test contexts.
const (
	FALSE = 0
	TRUE  = 1

	DEPTH_BUFFER_BIT Enum = 0x00000100
	COLOR_BUFFER_BIT Enum = 0x00004000

	TRIANGLES Enum = 0x0004

	LEQUAL Enum = 0x0203

	DEPTH_TEST Enum = 0x0B71

	UNSIGNED_SHORT Enum = 0x1403
	FLOAT          Enum = 0x1406

	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	STATIC_DRAW          Enum = 0x88E4

	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82
	INFO_LOG_LENGTH Enum = 0x8B84
)
