package gfx

const (
	// QuadVertex maps world coordinates with a bottom-left origin onto clip
	// space. Uniform `area` is the (width, height) of the viewport.
	QuadVertex = `
	#version 330
	uniform vec2 area;
	layout(location = 0) in vec2 position_in;
	void main() {
		vec2 glSpace = vec2(2.0, 2.0) * (position_in / area) + vec2(-1.0, -1.0);
		gl_Position = vec4(glSpace, 0.0, 1.0);
	}`

	SolidColorFragment = `
	#version 330
	uniform vec4 uni_color;
	out vec4 frag_color;
	void main() {
		frag_color = uni_color;
	}`
)
