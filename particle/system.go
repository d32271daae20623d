package particle

import "log/slog"

// groundFriction is the extra horizontal damping applied on ground contact
// to model energy loss on impact.
const groundFriction = 0.7

// System is the runtime handle for one particle effect instance. It owns
// exactly one BufferStore and at most one render target; no two systems
// alias the same buffers. All methods are single-threaded: the host calls
// Update once per frame, controls take effect from the next tick.
type System struct {
	id     string
	effect Type
	cfg    Config
	def    effectDef

	buf        *BufferStore
	spawnColor []Color // palette draw per slot, base for the gradient hooks
	target     RenderTarget
	rng        Source

	origin        Vec3
	particleCount int
	emissionRate  float32
	lifetime      float32 // nominal duration in seconds; -1 = continuous

	active    bool
	disposed  bool
	completed bool // natural termination reached; swept by the manager

	// Transport callbacks. OnStart fires on every Play call, OnStop on Stop
	// (including natural termination), OnComplete only when a one-shot
	// system's last particle expires.
	OnStart    func()
	OnStop     func()
	OnComplete func()
}

// newSystem builds a handle in the paused state with fully initialized
// buffers. It does not attach itself to any scene or registry.
func newSystem(id string, effect Type, def effectDef, pos Vec3, cfg Config, rng Source, target RenderTarget) *System {
	s := &System{
		id:            id,
		effect:        effect,
		cfg:           cfg,
		def:           def,
		buf:           NewBufferStore(cfg.ParticleCount),
		spawnColor:    make([]Color, cfg.ParticleCount),
		target:        target,
		rng:           rng,
		origin:        pos,
		particleCount: cfg.ParticleCount,
		emissionRate:  cfg.EmissionRate,
		lifetime:      cfg.Lifetime.Max,
	}
	if def.termination == Continuous {
		s.lifetime = -1
	}

	staggered := def.termination == Continuous
	for i := 0; i < s.buf.Count; i++ {
		s.spawnParticle(i, staggered)
	}

	if target != nil {
		if cfg.WorldSpace {
			target.SetOrigin(Vec3{})
		} else {
			target.SetOrigin(pos)
		}
		target.Upload(s.buf)
	}
	return s
}

// ID returns the registry id assigned by the manager (empty for handles
// created outside a manager).
func (s *System) ID() string { return s.id }

// Effect returns the effect type this system was created from.
func (s *System) Effect() Type { return s.effect }

// Config returns a copy of the resolved configuration.
func (s *System) Config() Config { return s.cfg }

// Buffer exposes the underlying store. Callers must not hold the reference
// across Dispose.
func (s *System) Buffer() *BufferStore { return s.buf }

// IsActive reports whether Update ticks advance the simulation.
func (s *System) IsActive() bool { return s.active }

// IsDisposed reports whether Dispose has been called.
func (s *System) IsDisposed() bool { return s.disposed }

// Position returns the system origin.
func (s *System) Position() Vec3 { return s.origin }

// Play activates the system and fires OnStart. Playing a stopped one-shot
// does not reinitialize buffers (that is Reset's job); with no live
// particles left it re-triggers the completion check on the next tick.
func (s *System) Play() {
	if s.disposed {
		slog.Warn("particle: Play on disposed system", "id", s.id)
		return
	}
	s.active = true
	s.completed = false
	if s.OnStart != nil {
		s.OnStart()
	}
}

// Pause freezes the system mid-flight. A later Play resumes integration from
// the frozen state; no elapsed time is caught up.
func (s *System) Pause() {
	if s.disposed {
		return
	}
	s.active = false
}

// Stop deactivates the system and fires OnStop. Distinct from completion:
// OnComplete fires only when a one-shot system's particles all expire.
func (s *System) Stop() {
	if s.disposed {
		return
	}
	s.active = false
	if s.OnStop != nil {
		s.OnStop()
	}
}

// Reset restores particle lifetimes: one-shot systems get their full
// lifetime back, continuous systems are re-staggered. The active flag is
// unchanged.
func (s *System) Reset() {
	if s.disposed {
		return
	}
	for i := 0; i < s.buf.Count; i++ {
		if s.def.termination == Continuous {
			s.buf.LifetimeRemaining[i] = s.buf.LifetimeMax[i] * float32(s.rng.Float64())
		} else {
			s.buf.LifetimeRemaining[i] = s.buf.LifetimeMax[i]
		}
	}
	s.completed = false
}

// SetPosition moves the system origin. World-space systems apply it to
// future spawns only; local-space systems move wholesale via the render
// target origin.
func (s *System) SetPosition(pos Vec3) {
	s.origin = pos
	if !s.cfg.WorldSpace && s.target != nil {
		s.target.SetOrigin(pos)
	}
}

// SetEmissionRate records a new nominal emission rate. Informational only;
// the built-in effects spawn their full count up front.
func (s *System) SetEmissionRate(rate float32) {
	s.emissionRate = rate
}

// EmissionRate returns the nominal emission rate.
func (s *System) EmissionRate() float32 { return s.emissionRate }

// SetParticleCount records a new nominal count. The buffer store is fixed at
// creation and is NOT resized; this is metadata only.
func (s *System) SetParticleCount(n int) {
	s.particleCount = n
}

// ParticleCount returns the nominal particle count.
func (s *System) ParticleCount() int { return s.particleCount }

// Lifetime returns the nominal duration in seconds, -1 for continuous.
func (s *System) Lifetime() float32 { return s.lifetime }

// AliveCount returns the number of particles with lifetime remaining.
func (s *System) AliveCount() int {
	if s.disposed {
		return 0
	}
	alive := 0
	for i := 0; i < s.buf.Count; i++ {
		if s.buf.LifetimeRemaining[i] > 0 {
			alive++
		}
	}
	return alive
}

// Update advances the simulation by dt seconds. No-op unless active.
func (s *System) Update(dt float32) {
	if s.disposed {
		slog.Warn("particle: Update on disposed system", "id", s.id)
		return
	}
	if !s.active {
		return
	}
	s.step(dt)
}

// step is the shared integration routine. The per-effect variation lives in
// the def hooks (termination policy, color gradient, size curve) and in the
// config flags; the motion math is identical for every effect.
func (s *System) step(dt float32) {
	buf := s.buf
	cfg := &s.cfg
	alive := 0

	for i := 0; i < buf.Count; i++ {
		buf.LifetimeRemaining[i] -= dt
		if buf.LifetimeRemaining[i] <= 0 {
			if s.def.termination == Continuous {
				s.spawnParticle(i, false)
			} else {
				buf.Opacity[i] = 0
				continue
			}
		}
		alive++

		base := i * 3

		// Explicit Euler, no sub-stepping.
		buf.Position[base] += buf.Velocity[base] * dt
		buf.Position[base+1] += buf.Velocity[base+1] * dt
		buf.Position[base+2] += buf.Velocity[base+2] * dt

		buf.Velocity[base] += cfg.Gravity.X * dt
		buf.Velocity[base+1] += cfg.Gravity.Y * dt
		buf.Velocity[base+2] += cfg.Gravity.Z * dt

		buf.Velocity[base] *= cfg.Damping
		buf.Velocity[base+1] *= cfg.Damping
		buf.Velocity[base+2] *= cfg.Damping

		if cfg.CollideGround && buf.Position[base+1] <= cfg.GroundY {
			buf.Position[base+1] = cfg.GroundY
			if buf.Velocity[base+1] < 0 {
				buf.Velocity[base+1] *= -cfg.BounceStrength
			}
			buf.Velocity[base] *= groundFriction
			buf.Velocity[base+2] *= groundFriction
		}

		r := buf.LifetimeRemaining[i] / buf.LifetimeMax[i]
		buf.Opacity[i] = s.opacityAt(r)

		if s.def.colorOver != nil {
			c := s.def.colorOver(s.spawnColor[i], r)
			buf.Color[base] = c.R
			buf.Color[base+1] = c.G
			buf.Color[base+2] = c.B
		}

		if cfg.ScaleOverTime && s.def.sizeOver != nil {
			buf.Size[i] = buf.InitialSize[i] * s.def.sizeOver(r)
		}
	}

	if s.target != nil {
		s.target.Upload(buf)
	}

	// Time-based natural termination: the last particle expiring is the
	// sole completion condition for one-shot systems.
	if s.def.termination == OneShot && alive == 0 {
		s.completed = true
		s.Stop()
		if s.OnComplete != nil {
			s.OnComplete()
		}
	}
}

// opacityAt maps the life ratio to opacity: plain max(0, r) by default, or
// linear ramps across the configured fade-in/fade-out fractions.
func (s *System) opacityAt(r float32) float32 {
	if r <= 0 {
		return 0
	}
	if r > 1 {
		r = 1
	}
	cfg := &s.cfg
	if cfg.FadeIn > 0 || cfg.FadeOut > 0 {
		o := float32(1)
		age := 1 - r
		if cfg.FadeIn > 0 && age < cfg.FadeIn {
			o = age / cfg.FadeIn
		}
		if cfg.FadeOut > 0 && r < cfg.FadeOut {
			if fo := r / cfg.FadeOut; fo < o {
				o = fo
			}
		}
		return o
	}
	return r
}

// Dispose releases the render-facing resources. Terminal: all later calls
// on the handle are guarded no-ops.
func (s *System) Dispose() {
	if s.disposed {
		return
	}
	if s.target != nil {
		s.target.Dispose()
		s.target = nil
	}
	s.active = false
	s.disposed = true
}
