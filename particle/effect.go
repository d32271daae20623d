// Package particle implements a small, self-contained particle effect
// engine: fixed-size SoA buffer stores, five built-in effect definitions
// (explosion, rain, burst, swarm, sparks), a runtime system handle with
// transport controls, and a manager that drives all live systems from a
// single game-loop tick. Rendering is a collaborator behind the
// RenderTarget/Scene interfaces; the engine itself only does the math.
package particle

import "github.com/tanema/gween/ease"

// Type discriminates the built-in effects.
type Type string

const (
	Explosion Type = "explosion" // one-shot sphere burst
	Rain      Type = "rain"      // continuous downward sheet
	Burst     Type = "burst"     // one-shot radial UI burst
	Swarm     Type = "swarm"     // continuous floating sparkle swarm
	Sparks    Type = "sparks"    // one-shot, bounces off the ground plane
)

// Termination says whether a system ends on its own.
type Termination uint8

const (
	// OneShot systems stop and fire OnComplete once every particle has expired.
	OneShot Termination = iota
	// Continuous systems respawn expired particles in place and never
	// terminate on their own.
	Continuous
)

// effectDef parameterizes the shared integration routine in System.step.
// The five effects differ only in termination policy, defaults, and the
// color/size hooks; the motion math is common.
type effectDef struct {
	termination Termination
	defaults    Config
	colorOver   func(base Color, r float32) Color // nil = keep spawn color
	sizeOver    func(r float32) float32           // scale factor over life ratio; nil = no scaling
}

var effects = map[Type]effectDef{
	Explosion: {
		termination: OneShot,
		defaults: Config{
			ParticleCount: 150,
			Lifetime:      Range{Min: 0.5, Max: 1.2},
			Size:          Range{Min: 0.15, Max: 0.4},
			VelocityMin:   Vec3{X: -6, Y: 1, Z: -6},
			VelocityMax:   Vec3{X: 6, Y: 9, Z: 6},
			Gravity:       Vec3{Y: -9.8},
			Damping:       0.92,
			Palette: []Color{
				{R: 1, G: 0.9, B: 0.2},
				{R: 1, G: 0.75, B: 0.15},
				{R: 1, G: 0.55, B: 0.1},
			},
			Spawn:         SpawnArea{Shape: SpawnSphere, Radius: 0.3},
			ScaleOverTime: true,
			WorldSpace:    true,
			Additive:      true,
		},
		colorOver: explosionColor,
		sizeOver:  growThenShrink,
	},
	Rain: {
		termination: Continuous,
		defaults: Config{
			ParticleCount:    300,
			EmissionDuration: -1,
			EmissionRate:     150,
			Lifetime:         Range{Min: 1.5, Max: 2.5},
			Size:             Range{Min: 0.05, Max: 0.12},
			VelocityMin:      Vec3{X: -0.5, Y: -12, Z: -0.5},
			VelocityMax:      Vec3{X: 0.5, Y: -8, Z: 0.5},
			Damping:          1,
			Palette: []Color{
				{R: 0.5, G: 0.65, B: 0.9},
				{R: 0.6, G: 0.75, B: 1},
			},
			Spawn:      SpawnArea{Shape: SpawnBox, HalfExtents: Vec3{X: 15, Y: 0.5, Z: 15}},
			WorldSpace: true,
		},
	},
	Burst: {
		termination: OneShot,
		defaults: Config{
			ParticleCount: 20,
			Lifetime:      Range{Min: 0.4, Max: 0.7},
			Size:          Range{Min: 0.1, Max: 0.2},
			VelocityMin:   Vec3{X: -3, Y: -3},
			VelocityMax:   Vec3{X: 3, Y: 3},
			Damping:       0.9,
			Palette: []Color{
				{R: 1, G: 1, B: 1},
				{R: 0.4, G: 0.9, B: 1},
				{R: 1, G: 0.85, B: 0.3},
			},
			Spawn:         SpawnArea{Shape: SpawnCircle, Radius: 0.1},
			FadeOut:       0.5,
			ScaleOverTime: true,
			Additive:      true,
		},
		sizeOver: monotonicGrowth,
	},
	Swarm: {
		termination: Continuous,
		defaults: Config{
			ParticleCount:    60,
			EmissionDuration: -1,
			EmissionRate:     20,
			Lifetime:         Range{Min: 2, Max: 4},
			Size:             Range{Min: 0.05, Max: 0.15},
			VelocityMin:      Vec3{X: -0.4, Y: -0.2, Z: -0.4},
			VelocityMax:      Vec3{X: 0.4, Y: 0.5, Z: 0.4},
			Damping:          0.99,
			Palette: []Color{
				{R: 1, G: 1, B: 0.9},
				{R: 1, G: 0.9, B: 0.5},
				{R: 0.7, G: 0.85, B: 1},
			},
			Spawn:    SpawnArea{Shape: SpawnSphere, Radius: 1.5},
			FadeIn:   0.2,
			FadeOut:  0.3,
			Additive: true,
		},
	},
	Sparks: {
		termination: OneShot,
		defaults: Config{
			ParticleCount: 40,
			Lifetime:      Range{Min: 0.6, Max: 1.4},
			Size:          Range{Min: 0.04, Max: 0.1},
			VelocityMin:   Vec3{X: -4, Y: 2, Z: -4},
			VelocityMax:   Vec3{X: 4, Y: 7, Z: 4},
			Gravity:       Vec3{Y: -9.8},
			Damping:       0.98,
			Palette: []Color{
				{R: 1, G: 1, B: 0.95},
				{R: 1, G: 0.95, B: 0.8},
			},
			Spawn:          SpawnArea{Shape: SpawnPoint},
			CollideGround:  true,
			BounceStrength: 0.4,
			WorldSpace:     true,
			Additive:       true,
		},
		colorOver: sparkColor,
	},
}

// explosionColor steps the flame gradient as the life ratio decays:
// spawn color, then orange, red, and finally near-black smoke.
func explosionColor(base Color, r float32) Color {
	switch {
	case r > 0.7:
		return base
	case r > 0.45:
		return lerpColor(Color{R: 1, G: 0.45, B: 0.05}, base, (r-0.45)/0.25)
	case r > 0.2:
		return lerpColor(Color{R: 0.75, G: 0.12, B: 0.03}, Color{R: 1, G: 0.45, B: 0.05}, (r-0.2)/0.25)
	default:
		return lerpColor(Color{R: 0.05, G: 0.05, B: 0.05}, Color{R: 0.75, G: 0.12, B: 0.03}, r/0.2)
	}
}

// sparkColor cools a spark from white-hot through orange to red as the life
// ratio crosses 0.8 and 0.4.
func sparkColor(base Color, r float32) Color {
	switch {
	case r > 0.8:
		return base
	case r > 0.4:
		return Color{R: 1, G: 0.55, B: 0.1}
	default:
		return Color{R: 0.85, G: 0.2, B: 0.05}
	}
}

// growThenShrink expands the particle over the first quarter of its life and
// eases it back down afterwards.
func growThenShrink(r float32) float32 {
	age := 1 - r
	const grow = 0.25
	if age < grow {
		return 1 + ease.OutQuad(age, 0, 1.5, grow)
	}
	return ease.InQuad(age-grow, 2.5, -2.2, 1-grow)
}

// monotonicGrowth expands the particle from 1x to 2x over its whole life.
func monotonicGrowth(r float32) float32 {
	return ease.OutCubic(1-r, 1, 1, 1)
}
