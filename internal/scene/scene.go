// Package scene maps a pet snapshot and a clock reading to a fixed scene
// graph. Everything here is a pure function of its inputs; the renderer that
// draws the graph lives elsewhere.
package scene

import "math"

// Vec3 is a point, rotation (radians, XYZ order) or scale.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// One is the identity scale.
var One = Vec3{1, 1, 1}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Mul returns the component-wise product.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Rotate applies an XYZ Euler rotation (Z first, then Y, then X).
func (v Vec3) Rotate(r Vec3) Vec3 {
	sz, cz := math.Sincos(r.Z)
	x := v.X*cz - v.Y*sz
	y := v.X*sz + v.Y*cz
	z := v.Z

	sy, cy := math.Sincos(r.Y)
	x, z = x*cy+z*sy, -x*sy+z*cy

	sx, cx := math.Sincos(r.X)
	y, z = y*cx-z*sx, y*sx+z*cx

	return Vec3{x, y, z}
}

// Shape is a rendering primitive.
type Shape string

const (
	ShapeGroup  Shape = "group"
	ShapeSphere Shape = "sphere"
	ShapeBox    Shape = "box"
	ShapeTorus  Shape = "torus"
)

// Kind tells a renderer what part of the avatar a node is.
type Kind string

const (
	KindGroup   Kind = "group"
	KindBody    Kind = "body"
	KindEye     Kind = "eye"
	KindPupil   Kind = "pupil"
	KindMouth   Kind = "mouth"
	KindSparkle Kind = "sparkle"
	KindCube    Kind = "cube"
	KindStar    Kind = "star"
)

// Node is one element of the scene graph. Children are positioned in the
// node's local space.
type Node struct {
	Name      string  `json:"name"`
	Kind      Kind    `json:"kind"`
	Shape     Shape   `json:"shape"`
	Radius    float64 `json:"radius,omitempty"`
	Tube      float64 `json:"tube,omitempty"`
	Size      float64 `json:"size,omitempty"`
	Position  Vec3    `json:"position"`
	Rotation  Vec3    `json:"rotation"`
	Scale     Vec3    `json:"scale"`
	Color     string  `json:"color,omitempty"`
	Opacity   float64 `json:"opacity"`
	Shininess float64 `json:"shininess,omitempty"`
	Visible   bool    `json:"visible"`
	Children  []Node  `json:"children,omitempty"`
}

// Transform is a node's local placement.
func (n Node) Transform() Transform {
	return Transform{Position: n.Position, Rotation: n.Rotation, Scale: n.Scale}
}

// Find returns the first node named name in the subtree.
func (n Node) Find(name string) (Node, bool) {
	if n.Name == name {
		return n, true
	}
	for _, c := range n.Children {
		if found, ok := c.Find(name); ok {
			return found, true
		}
	}
	return Node{}, false
}

// Transform places a node relative to its parent.
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

// Identity is the transform that changes nothing.
var Identity = Transform{Scale: One}

// Apply maps a local point into the parent's space: scale, rotate, translate.
func (t Transform) Apply(v Vec3) Vec3 {
	return v.Mul(t.Scale).Rotate(t.Rotation).Add(t.Position)
}

// Then composes a child transform under t. Rotations are summed, which is
// exact for the single-axis rotations the avatar uses.
func (t Transform) Then(child Transform) Transform {
	return Transform{
		Position: t.Apply(child.Position),
		Rotation: t.Rotation.Add(child.Rotation),
		Scale:    t.Scale.Mul(child.Scale),
	}
}

// Placed is a leaf node with its transform resolved to world space.
type Placed struct {
	Node  Node
	World Transform
}

// Flatten walks the tree depth-first and returns every visible leaf in draw
// order. Hidden nodes hide their whole subtree.
func Flatten(root Node) []Placed {
	var out []Placed
	flatten(root, Identity, &out)
	return out
}

func flatten(n Node, parent Transform, out *[]Placed) {
	if !n.Visible {
		return
	}
	world := parent.Then(n.Transform())
	if n.Shape != ShapeGroup {
		leaf := n
		leaf.Children = nil
		*out = append(*out, Placed{Node: leaf, World: world})
	}
	for _, c := range n.Children {
		flatten(c, world, out)
	}
}

// Camera is the viewpoint declared for the renderer.
type Camera struct {
	Position Vec3    `json:"position"`
	FOV      float64 `json:"fov"` // vertical, degrees
}

// Light is a light source declared for the renderer.
type Light struct {
	Kind      string  `json:"kind"`
	Position  Vec3    `json:"position"`
	Intensity float64 `json:"intensity"`
	Color     string  `json:"color,omitempty"`
}

// Scene is everything a renderer needs for one frame.
type Scene struct {
	Camera Camera  `json:"camera"`
	Lights []Light `json:"lights"`
	Avatar Node    `json:"avatar"`
	Stars  []Node  `json:"stars"`
}

// DefaultCamera looks down -Z from four units away.
var DefaultCamera = Camera{Position: Vec3{0, 0, 4}, FOV: 50}

// DefaultLights returns the fixed lighting rig.
func DefaultLights() []Light {
	return []Light{
		{Kind: "ambient", Intensity: 0.6},
		{Kind: "directional", Position: Vec3{5, 5, 5}, Intensity: 1},
		{Kind: "point", Position: Vec3{-5, -5, 5}, Intensity: 0.5, Color: "#ff00ff"},
		{Kind: "point", Position: Vec3{5, -5, 5}, Intensity: 0.5, Color: "#00ffff"},
	}
}
