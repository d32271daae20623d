package particle

// Vec3 is a 3-component float32 vector. Y is up.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Color is an RGB color with components in [0,1].
type Color struct {
	R float32 `yaml:"r"`
	G float32 `yaml:"g"`
	B float32 `yaml:"b"`
}

// Range is a closed interval resolved to a concrete value by a uniform draw
// at spawn (or respawn) time. A scalar is expressed as Min == Max.
type Range struct {
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
}

func (r Range) draw(rng Source) float32 {
	return r.Min + float32(rng.Float64())*(r.Max-r.Min)
}

func (r Range) isZero() bool {
	return r.Min == 0 && r.Max == 0
}

func lerpColor(a, b Color, t float32) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}
