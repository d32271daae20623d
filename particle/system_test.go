package particle

import "testing"

func TestPlayFiresOnStartEveryCall(t *testing.T) {
	m := NewManager(Options{Seed: 1})
	s, err := m.Create(Swarm, Vec3{}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	starts := 0
	s.OnStart = func() { starts++ }

	s.Play()
	s.Play()
	s.Pause()
	s.Play()
	if starts != 3 {
		t.Errorf("expected OnStart to fire on every Play, got %d", starts)
	}
}

func TestCreatedPaused(t *testing.T) {
	m := NewManager(Options{Seed: 1})
	s, err := m.Create(Explosion, Vec3{}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.IsActive() {
		t.Error("expected new system in paused state")
	}

	// Update on a paused system must not mutate buffers.
	before := append([]float32(nil), s.Buffer().LifetimeRemaining...)
	s.Update(0.5)
	for i, v := range s.Buffer().LifetimeRemaining {
		if v != before[i] {
			t.Fatalf("particle %d: paused update mutated lifetime %f -> %f", i, before[i], v)
		}
	}
}

func TestPauseIdempotent(t *testing.T) {
	m := NewManager(Options{Seed: 1})
	s, err := m.Create(Rain, Vec3{Y: 10}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	s.Play()
	s.Update(0.1)

	s.Pause()
	s.Pause()

	buf := s.Buffer()
	pos := append([]float32(nil), buf.Position...)
	life := append([]float32(nil), buf.LifetimeRemaining...)

	s.Update(0.1)

	for i := range pos {
		if buf.Position[i] != pos[i] {
			t.Fatalf("position slot %d mutated while paused", i)
		}
	}
	for i := range life {
		if buf.LifetimeRemaining[i] != life[i] {
			t.Fatalf("lifetime slot %d mutated while paused", i)
		}
	}
}

func TestStopVersusComplete(t *testing.T) {
	m := NewManager(Options{Seed: 1})
	s, err := m.Create(Swarm, Vec3{}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	stops, completions := 0, 0
	s.OnStop = func() { stops++ }
	s.OnComplete = func() { completions++ }

	s.Play()
	s.Update(0.1)
	s.Stop()

	if stops != 1 {
		t.Errorf("expected one OnStop, got %d", stops)
	}
	if completions != 0 {
		t.Errorf("external stop must not fire OnComplete, got %d", completions)
	}
	if s.IsActive() {
		t.Error("expected inactive after stop")
	}
}

func TestResetRestoresLifetimes(t *testing.T) {
	m := NewManager(Options{Seed: 1})
	cfg := DefaultConfig(Explosion)
	cfg.ParticleCount = 6
	s, err := m.Create(Explosion, Vec3{}, &cfg)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	s.Play()
	for i := 0; i < 30; i++ {
		s.Update(0.1)
	}

	buf := s.Buffer()
	for i := 0; i < buf.Count; i++ {
		if buf.LifetimeRemaining[i] > 0 {
			t.Fatalf("expected all particles expired before reset")
		}
	}

	s.Reset()
	for i := 0; i < buf.Count; i++ {
		if buf.LifetimeRemaining[i] != buf.LifetimeMax[i] {
			t.Errorf("particle %d: expected full lifetime after reset, got %f/%f",
				i, buf.LifetimeRemaining[i], buf.LifetimeMax[i])
		}
	}
	if s.IsActive() {
		t.Error("Reset must not change the active flag")
	}
}

func TestResetContinuousRestaggers(t *testing.T) {
	m := NewManager(Options{Seed: 1})
	cfg := DefaultConfig(Rain)
	cfg.ParticleCount = 50
	s, err := m.Create(Rain, Vec3{Y: 10}, &cfg)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	s.Reset()

	buf := s.Buffer()
	full := 0
	for i := 0; i < buf.Count; i++ {
		if buf.LifetimeRemaining[i] < 0 || buf.LifetimeRemaining[i] > buf.LifetimeMax[i] {
			t.Fatalf("particle %d: staggered lifetime %f outside [0, %f]",
				i, buf.LifetimeRemaining[i], buf.LifetimeMax[i])
		}
		if buf.LifetimeRemaining[i] == buf.LifetimeMax[i] {
			full++
		}
	}
	if full == buf.Count {
		t.Error("expected staggered (not synchronized) lifetimes after continuous reset")
	}
}

func TestSettersAreMetadataOnly(t *testing.T) {
	m := NewManager(Options{Seed: 1})
	s, err := m.Create(Burst, Vec3{}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	s.SetParticleCount(999)
	if s.ParticleCount() != 999 {
		t.Errorf("expected recorded count 999, got %d", s.ParticleCount())
	}
	if s.Buffer().Count != 20 {
		t.Errorf("SetParticleCount must not resize buffers: got %d", s.Buffer().Count)
	}

	s.SetEmissionRate(42)
	if s.EmissionRate() != 42 {
		t.Errorf("expected emission rate 42, got %f", s.EmissionRate())
	}
}

func TestSetPositionLocalSpace(t *testing.T) {
	m := NewManager(Options{Seed: 1, Targets: fakeFactory{}})
	s, err := m.Create(Swarm, Vec3{X: 1}, nil) // swarm is local-space
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	ft := s.target.(*fakeTarget)
	if ft.origin != (Vec3{X: 1}) {
		t.Errorf("expected target origin at system position, got %+v", ft.origin)
	}
	s.SetPosition(Vec3{X: 3, Y: 2})
	if ft.origin != (Vec3{X: 3, Y: 2}) {
		t.Errorf("expected target origin moved with system, got %+v", ft.origin)
	}
}

func TestDisposedGuards(t *testing.T) {
	m := NewManager(Options{Seed: 1})
	s, err := m.Create(Explosion, Vec3{}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	s.Play()
	s.Dispose()

	if !s.IsDisposed() {
		t.Fatal("expected disposed")
	}
	// All of these must be safe no-ops.
	s.Update(0.1)
	s.Play()
	s.Pause()
	s.Stop()
	s.Reset()
	s.Dispose()
	if s.IsActive() {
		t.Error("disposed system must not reactivate")
	}
	if s.AliveCount() != 0 {
		t.Error("disposed system must report zero alive particles")
	}
}

func TestLifetimeNominal(t *testing.T) {
	m := NewManager(Options{Seed: 1})
	oneShot, _ := m.Create(Explosion, Vec3{}, nil)
	cont, _ := m.Create(Rain, Vec3{}, nil)

	if oneShot.Lifetime() <= 0 {
		t.Errorf("expected positive nominal lifetime for one-shot, got %f", oneShot.Lifetime())
	}
	if cont.Lifetime() != -1 {
		t.Errorf("expected -1 nominal lifetime for continuous, got %f", cont.Lifetime())
	}
}
