package shader

// MeshVertex transforms a Z-up mesh and passes its frame and texcoords on.
const MeshVertex = `#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aST;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;
out vec2 vST;

void main() {
	vNormal = mat3(uModel) * aNormal;
	vST = aST;
	gl_Position = uProjection * uView * uModel * vec4(aPosition, 1.0);
}
`

// MeshFragment shades with one directional light and an optional st
// checkerboard.
const MeshFragment = `#version 410 core

in vec3 vNormal;
in vec2 vST;

uniform vec3 uLightDir;
uniform vec3 uColor;
uniform float uAmbient;
uniform bool uHasNormal;
uniform bool uHasST;

out vec4 FragColor;

void main() {
	vec3 color = uColor;
	if (uHasST) {
		float check = mod(floor(vST.x * 8.0) + floor(vST.y * 8.0), 2.0);
		color *= mix(0.75, 1.0, check);
	}
	float diffuse = 1.0;
	if (uHasNormal) {
		diffuse = max(dot(normalize(vNormal), normalize(uLightDir)), 0.0);
	}
	FragColor = vec4(color * (uAmbient + (1.0 - uAmbient) * diffuse), 1.0);
}
`

// LineVertex draws untextured GL_LINES in model space.
const LineVertex = `#version 410 core

layout (location = 0) in vec3 aPosition;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

void main() {
	gl_Position = uProjection * uView * uModel * vec4(aPosition, 1.0);
}
`

// LineFragment fills lines with a flat color.
const LineFragment = `#version 410 core

uniform vec3 uColor;

out vec4 FragColor;

void main() {
	FragColor = vec4(uColor, 1.0);
}
`
