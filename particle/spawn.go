package particle

import "math"

// spawnOffset draws a position offset from the configured spawn area.
// Sphere offsets use independent theta/phi/radius draws; box offsets use an
// independent uniform draw per axis within the half-extents.
func spawnOffset(area SpawnArea, rng Source) Vec3 {
	switch area.Shape {
	case SpawnSphere:
		theta := rng.Float64() * 2 * math.Pi
		phi := rng.Float64() * math.Pi
		rad := rng.Float64() * float64(area.Radius)
		sinPhi := math.Sin(phi)
		return Vec3{
			X: float32(rad * sinPhi * math.Cos(theta)),
			Y: float32(rad * math.Cos(phi)),
			Z: float32(rad * sinPhi * math.Sin(theta)),
		}
	case SpawnBox:
		return Vec3{
			X: (float32(rng.Float64())*2 - 1) * area.HalfExtents.X,
			Y: (float32(rng.Float64())*2 - 1) * area.HalfExtents.Y,
			Z: (float32(rng.Float64())*2 - 1) * area.HalfExtents.Z,
		}
	case SpawnCircle:
		theta := rng.Float64() * 2 * math.Pi
		rad := rng.Float64() * float64(area.Radius)
		return Vec3{
			X: float32(rad * math.Cos(theta)),
			Y: float32(rad * math.Sin(theta)),
		}
	case SpawnLine:
		return Vec3{X: (float32(rng.Float64())*2 - 1) * area.Length / 2}
	default: // SpawnPoint
		return Vec3{}
	}
}

// spawnParticle (re)initializes slot i with fresh draws from the config.
// staggered applies the continuous-effect start rule: lifetimeRemaining is
// scattered across [0, lifetimeMax) so the system looks already running at
// t=0. Respawns pass staggered=false and start with a full lifetime.
func (s *System) spawnParticle(i int, staggered bool) {
	cfg := &s.cfg
	buf := s.buf

	off := spawnOffset(cfg.Spawn, s.rng)
	if cfg.WorldSpace {
		off.X += s.origin.X
		off.Y += s.origin.Y
		off.Z += s.origin.Z
	}
	base := i * 3
	buf.Position[base] = off.X
	buf.Position[base+1] = off.Y
	buf.Position[base+2] = off.Z

	// Per-axis independent uniform draw between the corner vectors.
	buf.Velocity[base] = cfg.VelocityMin.X + float32(s.rng.Float64())*(cfg.VelocityMax.X-cfg.VelocityMin.X)
	buf.Velocity[base+1] = cfg.VelocityMin.Y + float32(s.rng.Float64())*(cfg.VelocityMax.Y-cfg.VelocityMin.Y)
	buf.Velocity[base+2] = cfg.VelocityMin.Z + float32(s.rng.Float64())*(cfg.VelocityMax.Z-cfg.VelocityMin.Z)

	life := cfg.Lifetime.draw(s.rng)
	buf.LifetimeMax[i] = life
	if staggered {
		buf.LifetimeRemaining[i] = life * float32(s.rng.Float64())
	} else {
		buf.LifetimeRemaining[i] = life
	}

	size := cfg.Size.draw(s.rng)
	buf.Size[i] = size
	buf.InitialSize[i] = size

	c := Color{R: 1, G: 1, B: 1}
	if n := len(cfg.Palette); n > 0 {
		idx := int(s.rng.Float64() * float64(n))
		if idx >= n {
			idx = n - 1
		}
		c = cfg.Palette[idx]
	}
	s.spawnColor[i] = c
	buf.Color[base] = c.R
	buf.Color[base+1] = c.G
	buf.Color[base+2] = c.B

	buf.Opacity[i] = 1
}
