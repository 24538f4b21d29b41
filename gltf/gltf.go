// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package gltf implements decoding of the subset of glTF 2.0
// that describes scene layout: the node hierarchy, the
// bounds of mesh positions and the cameras.
// Buffers, materials, textures, skins and animations are
// not decoded.
package gltf

import (
	"encoding/json"
	"io"
)

// Root glTF object.
type GLTF struct {
	ExtensionsUsed     []string   `json:"extensionsUsed,omitempty"`
	ExtensionsRequired []string   `json:"extensionsRequired,omitempty"`
	Accessors          []Accessor `json:"accessors,omitempty"`
	Asset              Asset      `json:"asset"`
	Cameras            []Camera   `json:"cameras,omitempty"`
	Meshes             []Mesh     `json:"meshes,omitempty"`
	Nodes              []Node     `json:"nodes,omitempty"`
	Scene              *int64     `json:"scene,omitempty"`
	Scenes             []Scene    `json:"scenes,omitempty"`
}

// glTF.asset.
type Asset struct {
	Copyright  string `json:"copyright,omitempty"`
	Generator  string `json:"generator,omitempty"`
	Version    string `json:"version"`
	MinVersion string `json:"minVersion,omitempty"`
}

// glTF.accessors' element.
// Only the fields needed to locate bounds are decoded.
type Accessor struct {
	BufferView    *int64    `json:"bufferView,omitempty"`
	ComponentType int64     `json:"componentType"`
	Count         int64     `json:"count"`
	Type          string    `json:"type"`
	Max           []float64 `json:"max,omitempty"`
	Min           []float64 `json:"min,omitempty"`
	Name          string    `json:"name,omitempty"`
}

// accessor.componentType values.
const (
	BYTE           = 5120
	UNSIGNED_BYTE  = 5121
	SHORT          = 5122
	UNSIGNED_SHORT = 5123
	UNSIGNED_INT   = 5125
	FLOAT          = 5126
)

// accessor.type values.
const (
	SCALAR = "SCALAR"
	VEC2   = "VEC2"
	VEC3   = "VEC3"
	VEC4   = "VEC4"
	MAT2   = "MAT2"
	MAT3   = "MAT3"
	MAT4   = "MAT4"
)

// glTF.cameras' element.
type Camera struct {
	Orthographic *Orthographic `json:"orthographic,omitempty"`
	Perspective  *Perspective  `json:"perspective,omitempty"`
	Type         string        `json:"type"`
	Name         string        `json:"name,omitempty"`
}

// camera.orthographic.
type Orthographic struct {
	Xmag  float64 `json:"xmag"`
	Ymag  float64 `json:"ymag"`
	Zfar  float64 `json:"zfar"`
	Znear float64 `json:"znear"`
}

// camera.perspective.
type Perspective struct {
	AspectRatio float64 `json:"aspectRatio,omitempty"`
	YFOV        float64 `json:"yfov"`           // In radians.
	Zfar        float64 `json:"zfar,omitempty"` // 0 for infinite perspective.
	Znear       float64 `json:"znear"`
}

// camera.type values.
const (
	Tperspective  = "perspective"
	Torthographic = "orthographic"
)

// glTF.meshes' element.
type Mesh struct {
	Primitives []Primitive `json:"primitives"`
	Name       string      `json:"name,omitempty"`
}

// mesh.primitives' element.
type Primitive struct {
	Attributes map[string]int64 `json:"attributes"`
	Indices    *int64           `json:"indices,omitempty"`
	Mode       *int64           `json:"mode,omitempty"` // Default is TRIANGLES.
}

// The primitive attribute whose accessor bounds a primitive.
const POSITION = "POSITION"

// mesh.primitive.mode values.
const (
	POINTS = iota
	LINES
	LINE_LOOP
	LINE_STRIP
	TRIANGLES
	TRIANGLE_STRIP
	TRIANGLE_FAN
)

// glTF.nodes' element.
type Node struct {
	Camera      *int64       `json:"camera,omitempty"`
	Children    []int64      `json:"children,omitempty"`
	Matrix      *[16]float64 `json:"matrix,omitempty"` // Column-major. Default is identity.
	Mesh        *int64       `json:"mesh,omitempty"`
	Rotation    *[4]float64  `json:"rotation,omitempty"`    // Default is [0, 0, 0, 1].
	Scale       *[3]float64  `json:"scale,omitempty"`       // Default is [1, 1, 1].
	Translation *[3]float64  `json:"translation,omitempty"` // Default is [0, 0, 0].
	Name        string       `json:"name,omitempty"`
}

// glTF.scenes' element.
type Scene struct {
	Nodes []int64 `json:"nodes,omitempty"`
	Name  string  `json:"name,omitempty"`
}

// Encode encodes gltf into w.
func Encode(w io.Writer, gltf *GLTF) error {
	return json.NewEncoder(w).Encode(gltf)
}

// Decode decodes r into a new GLTF instance.
// Members outside of the supported subset are ignored.
func Decode(r io.Reader) (*GLTF, error) {
	var gltf GLTF
	if err := json.NewDecoder(r).Decode(&gltf); err != nil {
		return nil, newErr("decode: " + err.Error())
	}
	return &gltf, nil
}
