package particle

import (
	"math"
	"testing"
)

// seqSource replays a fixed value sequence, for exact-draw tests.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestSpawnOffsetBounds(t *testing.T) {
	rng := NewSource(42)
	cases := []struct {
		name  string
		area  SpawnArea
		check func(v Vec3) bool
	}{
		{"point", SpawnArea{Shape: SpawnPoint}, func(v Vec3) bool {
			return v == Vec3{}
		}},
		{"sphere", SpawnArea{Shape: SpawnSphere, Radius: 2}, func(v Vec3) bool {
			return math.Sqrt(float64(v.X*v.X+v.Y*v.Y+v.Z*v.Z)) <= 2+eps
		}},
		{"box", SpawnArea{Shape: SpawnBox, HalfExtents: Vec3{X: 1, Y: 2, Z: 3}}, func(v Vec3) bool {
			return v.X >= -1 && v.X <= 1 && v.Y >= -2 && v.Y <= 2 && v.Z >= -3 && v.Z <= 3
		}},
		{"circle", SpawnArea{Shape: SpawnCircle, Radius: 1.5}, func(v Vec3) bool {
			return v.Z == 0 && math.Sqrt(float64(v.X*v.X+v.Y*v.Y)) <= 1.5+eps
		}},
		{"line", SpawnArea{Shape: SpawnLine, Length: 4}, func(v Vec3) bool {
			return v.Y == 0 && v.Z == 0 && v.X >= -2 && v.X <= 2
		}},
	}

	for _, tc := range cases {
		for i := 0; i < 500; i++ {
			if v := spawnOffset(tc.area, rng); !tc.check(v) {
				t.Fatalf("%s: offset %+v outside distribution", tc.name, v)
			}
		}
	}
}

func TestSpawnDrawsWithFixedSequence(t *testing.T) {
	// Sequence chosen so every Range draw lands mid-interval.
	src := &seqSource{vals: []float64{0.5}}
	m := NewManager(Options{Rand: src})

	cfg := DefaultConfig(Sparks)
	cfg.ParticleCount = 1
	cfg.Lifetime = Range{Min: 1, Max: 2}
	cfg.Size = Range{Min: 0.2, Max: 0.4}
	cfg.VelocityMin = Vec3{X: -1, Y: 0, Z: -1}
	cfg.VelocityMax = Vec3{X: 1, Y: 4, Z: 1}
	cfg.Palette = []Color{{R: 1}, {G: 1}}

	s, err := m.Create(Sparks, Vec3{}, &cfg)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	buf := s.Buffer()

	if buf.Velocity[0] != 0 || buf.Velocity[1] != 2 || buf.Velocity[2] != 0 {
		t.Errorf("expected mid-range velocity (0,2,0), got (%f,%f,%f)",
			buf.Velocity[0], buf.Velocity[1], buf.Velocity[2])
	}
	if buf.LifetimeMax[0] != 1.5 || buf.LifetimeRemaining[0] != 1.5 {
		t.Errorf("expected mid-range lifetime 1.5, got %f/%f",
			buf.LifetimeRemaining[0], buf.LifetimeMax[0])
	}
	if math.Abs(float64(buf.Size[0]-0.3)) > eps {
		t.Errorf("expected mid-range size 0.3, got %f", buf.Size[0])
	}
	// 0.5 * 2 palette entries selects index 1.
	if buf.Color[0] != 0 || buf.Color[1] != 1 {
		t.Errorf("expected palette index 1, got (%f,%f,%f)", buf.Color[0], buf.Color[1], buf.Color[2])
	}
	if buf.Opacity[0] != 1 {
		t.Errorf("expected spawn opacity 1, got %f", buf.Opacity[0])
	}
}

func TestContinuousCreationStaggered(t *testing.T) {
	m := NewManager(Options{Seed: 31})
	cfg := DefaultConfig(Swarm)
	cfg.ParticleCount = 40
	s, err := m.Create(Swarm, Vec3{}, &cfg)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	buf := s.Buffer()
	synced := 0
	for i := 0; i < buf.Count; i++ {
		if buf.LifetimeRemaining[i] > buf.LifetimeMax[i] {
			t.Fatalf("particle %d: remaining %f exceeds max %f", i, buf.LifetimeRemaining[i], buf.LifetimeMax[i])
		}
		if buf.LifetimeRemaining[i] == buf.LifetimeMax[i] {
			synced++
		}
	}
	if synced == buf.Count {
		t.Error("expected staggered start for continuous effect")
	}
}

func TestOneShotCreationSynchronized(t *testing.T) {
	m := NewManager(Options{Seed: 31})
	s, err := m.Create(Explosion, Vec3{}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	buf := s.Buffer()
	for i := 0; i < buf.Count; i++ {
		if buf.LifetimeRemaining[i] != buf.LifetimeMax[i] {
			t.Fatalf("particle %d: expected synchronized start, got %f/%f",
				i, buf.LifetimeRemaining[i], buf.LifetimeMax[i])
		}
	}
}
