package scene

import (
	"math"

	"moodpet/internal/pet"
)

// Node names in the avatar tree
const (
	NameAvatar       = "avatar"
	NameBody         = "body"
	NameBodyMesh     = "body-mesh"
	NameEyeLeft      = "eye-left"
	NameEyeRight     = "eye-right"
	NamePupilLeft    = "pupil-left"
	NamePupilRight   = "pupil-right"
	NameMouth        = "mouth"
	NameSparkleLeft  = "sparkle-left"
	NameSparkleRight = "sparkle-right"
	NameCubeLeft     = "cube-left"
	NameCubeRight    = "cube-right"
)

// Input is everything the avatar depends on for one frame.
type Input struct {
	Color string
	Mood  pet.Mood
	Stats pet.Stats
	Time  float64 // seconds since mount
	Stars []Node
}

// FromSnapshot builds the frame input for a snapshot at time t.
func FromSnapshot(s pet.Snapshot, t float64, stars []Node) Input {
	return Input{
		Color: s.Color,
		Mood:  s.Mood,
		Stats: s.Stats,
		Time:  t,
		Stars: stars,
	}
}

// particle is a decorative node shown only for one mood.
type particle struct {
	node Node
	mood pet.Mood
}

var particles = []particle{
	{mood: pet.MoodHappy, node: Node{
		Name: NameSparkleLeft, Kind: KindSparkle, Shape: ShapeSphere, Radius: 0.05,
		Position: Vec3{-0.8, 0.5, 0.5}, Color: "#ffff00", Opacity: 0.7,
	}},
	{mood: pet.MoodHappy, node: Node{
		Name: NameSparkleRight, Kind: KindSparkle, Shape: ShapeSphere, Radius: 0.05,
		Position: Vec3{0.8, 0.5, 0.5}, Color: "#ffff00", Opacity: 0.7,
	}},
	{mood: pet.MoodExcited, node: Node{
		Name: NameCubeLeft, Kind: KindCube, Shape: ShapeBox, Size: 0.1,
		Position: Vec3{-0.6, 0.8, 0.3}, Color: "#ff00ff", Opacity: 0.8,
	}},
	{mood: pet.MoodExcited, node: Node{
		Name: NameCubeRight, Kind: KindCube, Shape: ShapeBox, Size: 0.1,
		Position: Vec3{0.6, 0.8, 0.3}, Color: "#00ffff", Opacity: 0.8,
	}},
}

// Build returns the scene for one frame.
func Build(in Input) Scene {
	return Scene{
		Camera: DefaultCamera,
		Lights: DefaultLights(),
		Avatar: Avatar(in),
		Stars:  in.Stars,
	}
}

// Avatar returns the avatar tree. The body group carries the breathing,
// yaw and mood pose; the face and particles ride along as its children.
func Avatar(in Input) Node {
	t := in.Time
	pose := PoseFor(in.Mood)
	breath := Breathing(t)

	body := Node{
		Name:     NameBody,
		Kind:     KindGroup,
		Shape:    ShapeGroup,
		Position: Vec3{0, pose.Height(t), 0},
		Rotation: Vec3{0, Yaw(t), pose.Roll(t)},
		Scale:    Vec3{breath, breath, breath},
		Opacity:  1,
		Visible:  true,
	}

	body.Children = append(body.Children, Node{
		Name:      NameBodyMesh,
		Kind:      KindBody,
		Shape:     ShapeSphere,
		Radius:    1,
		Scale:     One,
		Color:     Tint(in.Color, in.Stats.Health),
		Opacity:   0.9,
		Shininess: 100,
		Visible:   true,
	})
	body.Children = append(body.Children, face(t, in.Mood)...)

	for _, p := range particles {
		n := p.node
		n.Scale = One
		n.Visible = in.Mood == p.mood
		body.Children = append(body.Children, n)
	}

	return Node{
		Name:     NameAvatar,
		Kind:     KindGroup,
		Shape:    ShapeGroup,
		Scale:    One,
		Opacity:  1,
		Visible:  true,
		Children: []Node{body},
	}
}

func face(t float64, mood pet.Mood) []Node {
	blink := Blink(t)
	mouth := MouthFor(mood)

	var flip float64
	if mouth.Flipped {
		flip = math.Pi
	}

	eye := func(name string, x float64) Node {
		return Node{
			Name: name, Kind: KindEye, Shape: ShapeSphere, Radius: 0.15,
			Position: Vec3{x, 0.2, 0.8}, Scale: Vec3{1, blink, 1},
			Color: "#ffffff", Opacity: 1, Visible: true,
		}
	}
	pupil := func(name string, x float64) Node {
		return Node{
			Name: name, Kind: KindPupil, Shape: ShapeSphere, Radius: 0.08,
			Position: Vec3{x, 0.2, 0.85}, Scale: One,
			Color: "#000000", Opacity: 1, Visible: true,
		}
	}

	return []Node{
		eye(NameEyeLeft, -0.3),
		eye(NameEyeRight, 0.3),
		pupil(NamePupilLeft, -0.3),
		pupil(NamePupilRight, 0.3),
		{
			Name: NameMouth, Kind: KindMouth, Shape: ShapeTorus, Radius: 0.1, Tube: 0.03,
			Position: Vec3{0, mouth.OffsetY, 0.8},
			Rotation: Vec3{0, 0, flip},
			Scale:    Vec3{mouth.ScaleX, mouth.ScaleY, 1},
			Color:    "#ff4444", Opacity: 1, Visible: true,
		},
	}
}
