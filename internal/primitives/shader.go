package primitives

import rl "github.com/gen2brain/raylib-go/raylib"

// Blinn-Phong: ambient + one directional light + specular highlight, one flat color per draw.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 worldPos;
out vec3 worldNormal;
void main() {
  worldPos = vec3(matModel * vec4(vertexPosition, 1.0));
  worldNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
in vec3 worldPos;
in vec3 worldNormal;
uniform vec4 colDiffuse;
uniform vec3 eye;
uniform vec3 sunDir;
uniform vec3 sunColor;
uniform float ambientLevel;
uniform float shininess;
uniform float glossLevel;
out vec4 finalColor;
void main() {
  vec3 n = normalize(worldNormal);
  vec3 l = normalize(sunDir);
  float lambert = max(dot(n, l), 0.0);
  vec3 base = colDiffuse.rgb * (ambientLevel + lambert * sunColor);
  float gloss = 0.0;
  if (lambert > 0.0) {
    vec3 h = normalize(l + normalize(eye - worldPos));
    gloss = pow(max(dot(n, h), 0.0), shininess) * glossLevel;
  }
  finalColor = vec4(base + gloss, colDiffuse.a);
}
`
)

// light is the rig every preview shares: white ambient at 0.6 and a white directional
// light at 0.8 shining from (5, 5, 5).
var light = struct {
	ambient   float32
	color     [3]float32
	direction [3]float32
	gloss     float32
}{
	ambient:   0.6,
	color:     [3]float32{0.8, 0.8, 0.8},
	direction: [3]float32{5, 5, 5},
	gloss:     0.35,
}

// applyLight uploads the light rig, the camera position, and the material's shininess.
func (r *Registry) applyLight(shader rl.Shader, shininess float32) {
	if !rl.IsShaderValid(shader) {
		return
	}
	eye := r.eye
	dir := light.direction
	col := light.color
	vec3 := map[string][]float32{"eye": eye[:], "sunDir": dir[:], "sunColor": col[:]}
	for name, v := range vec3 {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValueV(shader, loc, v, rl.ShaderUniformVec3, 1)
		}
	}
	scalars := map[string]float32{"ambientLevel": light.ambient, "shininess": shininess, "glossLevel": light.gloss}
	for name, v := range scalars {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
		}
	}
}
