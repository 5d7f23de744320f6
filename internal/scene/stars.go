package scene

import "fmt"

// DefaultStarCount is the size of the background star field.
const DefaultStarCount = 50

// Rand is the randomness the star field needs. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// NewStarField scatters n stars behind the avatar. Call it once at mount and
// reuse the result for every frame.
func NewStarField(n int, r Rand) []Node {
	stars := make([]Node, 0, n)
	for i := 0; i < n; i++ {
		x := (r.Float64() - 0.5) * 20
		y := (r.Float64() - 0.5) * 20
		z := -10 + r.Float64()*-5
		stars = append(stars, Node{
			Name:     fmt.Sprintf("star-%d", i),
			Kind:     KindStar,
			Shape:    ShapeSphere,
			Radius:   0.02,
			Position: Vec3{x, y, z},
			Scale:    One,
			Color:    "#ffffff",
			Opacity:  r.Float64()*0.8 + 0.2,
			Visible:  true,
		})
	}
	return stars
}
