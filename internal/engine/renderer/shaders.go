package renderer

const litVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 uViewProj;
uniform mat4 uModel;
uniform mat4 uLightViewProj;

out vec3 vWorldPos;
out vec3 vNormal;
out vec2 vTexCoord;
out vec4 vLightSpace;

void main() {
    vec4 world = uModel * vec4(aPos, 1.0);
    vWorldPos = world.xyz;
    vNormal = mat3(transpose(inverse(uModel))) * aNormal;
    vTexCoord = aTexCoord;
    vLightSpace = uLightViewProj * world;
    gl_Position = uViewProj * world;
}
`

const litFragmentShader = `
#version 410 core

in vec3 vWorldPos;
in vec3 vNormal;
in vec2 vTexCoord;
in vec4 vLightSpace;

uniform vec3 uBaseColor;
uniform float uRoughness;
uniform float uMetalness;
uniform float uOpacity;
uniform float uTransmission;
uniform bool uUseMap;
uniform sampler2D uMap;

uniform vec3 uCameraPos;
uniform float uAmbient;
uniform float uEnvironment;
uniform vec3 uSpotPos;
uniform vec3 uSpotDir;
uniform float uSpotCosOuter;
uniform float uSpotCosInner;
uniform float uSpotIntensity;

uniform bool uShadowsEnabled;
uniform sampler2DShadow uShadowMap;
uniform bool uShadowOnly;
uniform float uShadowOpacity;

out vec4 FragColor;

float shadowFactor() {
    if (!uShadowsEnabled) {
        return 1.0;
    }
    vec3 p = vLightSpace.xyz / vLightSpace.w * 0.5 + 0.5;
    if (p.z > 1.0) {
        return 1.0;
    }
    float bias = 0.0015;
    vec2 texel = 1.0 / vec2(textureSize(uShadowMap, 0));
    float lit = 0.0;
    for (int x = -1; x <= 1; x++) {
        for (int y = -1; y <= 1; y++) {
            lit += texture(uShadowMap, vec3(p.xy + vec2(x, y) * texel, p.z - bias));
        }
    }
    return lit / 9.0;
}

void main() {
    vec3 toLight = uSpotPos - vWorldPos;
    vec3 L = normalize(toLight);
    float cone = smoothstep(uSpotCosOuter, uSpotCosInner, dot(-L, normalize(uSpotDir)));
    float shadow = shadowFactor();

    if (uShadowOnly) {
        FragColor = vec4(0.0, 0.0, 0.0, uShadowOpacity * (1.0 - shadow) * cone);
        return;
    }

    vec3 base = uBaseColor;
    if (uUseMap) {
        base *= texture(uMap, vTexCoord).rgb;
    }

    vec3 N = normalize(vNormal);
    if (!gl_FrontFacing) {
        N = -N;
    }
    vec3 V = normalize(uCameraPos - vWorldPos);
    vec3 H = normalize(L + V);

    float NdotL = max(dot(N, L), 0.0);
    float shininess = mix(256.0, 4.0, uRoughness);
    float spec = pow(max(dot(N, H), 0.0), shininess) * (1.0 - uRoughness * 0.8);
    vec3 specColor = mix(vec3(0.04), base, uMetalness);
    vec3 diffuse = base * (1.0 - uMetalness);

    vec3 direct = (diffuse * NdotL + specColor * spec) * uSpotIntensity * cone * shadow;
    vec3 ambient = base * (uAmbient + uEnvironment * (1.0 - uRoughness * 0.5));
    vec3 color = ambient + direct;

    float alpha = uOpacity;
    if (uTransmission > 0.0) {
        float fresnel = pow(1.0 - max(dot(N, V), 0.0), 3.0);
        alpha = clamp(uOpacity * (1.0 - uTransmission) + fresnel * uTransmission * uOpacity, 0.0, 1.0);
        color += vec3(fresnel) * uEnvironment;
    }

    FragColor = vec4(color, alpha);
}
`

const depthVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uLightViewProj;
uniform mat4 uModel;

void main() {
    gl_Position = uLightViewProj * uModel * vec4(aPos, 1.0);
}
`

const depthFragmentShader = `
#version 410 core

void main() {
}
`
