package particle

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedEffect is returned by Create for an unknown effect type.
var ErrUnsupportedEffect = errors.New("particle: unsupported effect type")

// Options configures a Manager. The zero value is usable: time-based seed,
// no scene, headless targets.
type Options struct {
	Seed    int64         // RNG seed; 0 = time-based
	Rand    Source        // overrides Seed when non-nil
	Scene   Scene         // optional render attachment collaborator
	Targets TargetFactory // nil = no render targets
}

// Manager owns the registry of live particle systems and is the single
// entry point for the host game loop: call Update once per frame with the
// frame delta in seconds. Not safe for concurrent use; the engine is
// single-threaded and frame-driven. Construct managers explicitly and pass
// them by reference; there is no package-level instance.
type Manager struct {
	scene   Scene
	targets TargetFactory
	rng     Source

	systems map[string]*System
	order   []string // insertion order for deterministic iteration
	nextID  uint64
}

// NewManager creates an empty manager.
func NewManager(opts Options) *Manager {
	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = NewSource(seed)
	}
	return &Manager{
		scene:   opts.Scene,
		targets: opts.Targets,
		rng:     rng,
		systems: make(map[string]*System),
	}
}

// Create builds a system for the given effect at pos, registers it under a
// fresh id (monotonic, never reused) and attaches its render target to the
// scene if one is configured. The system starts paused; the caller calls
// Play. cfg may be nil for the effect defaults.
func (m *Manager) Create(effect Type, pos Vec3, cfg *Config) (*System, error) {
	def, ok := effects[effect]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEffect, effect)
	}
	resolved := resolveConfig(cfg, def.defaults)

	var target RenderTarget
	if m.targets != nil {
		target = m.targets.NewTarget(resolved.ParticleCount, &resolved)
	}

	m.nextID++
	id := fmt.Sprintf("fx-%d", m.nextID)
	s := newSystem(id, effect, def, pos, resolved, m.rng, target)

	m.systems[id] = s
	m.order = append(m.order, id)
	if m.scene != nil && target != nil {
		m.scene.Add(target)
	}
	return s, nil
}

// BatchSpec describes one system in a CreateBatch request.
type BatchSpec struct {
	Effect   Type
	Position Vec3
	Config   *Config
}

// CreateBatch creates all listed effects in order. No atomicity: a failure
// partway through leaves the prior systems created and registered.
func (m *Manager) CreateBatch(specs []BatchSpec) ([]*System, error) {
	handles := make([]*System, 0, len(specs))
	for _, spec := range specs {
		s, err := m.Create(spec.Effect, spec.Position, spec.Config)
		if err != nil {
			return handles, err
		}
		handles = append(handles, s)
	}
	return handles, nil
}

// Update ticks every active system once, then removes and disposes systems
// that reached natural completion during this tick. Systems do not interact;
// their relative order is immaterial.
func (m *Manager) Update(dt float32) {
	for _, id := range m.order {
		if s := m.systems[id]; s != nil && s.active {
			s.Update(dt)
		}
	}

	var done []string
	for _, id := range m.order {
		if s := m.systems[id]; s != nil && s.completed {
			done = append(done, id)
		}
	}
	for _, id := range done {
		m.Remove(id)
	}
}

// Remove detaches the system's render target from the scene, disposes the
// handle and deletes the registry entry. Returns whether an entry existed.
// Callers must not use the handle afterwards.
func (m *Manager) Remove(id string) bool {
	s, ok := m.systems[id]
	if !ok {
		return false
	}
	if m.scene != nil && s.target != nil {
		m.scene.Remove(s.target)
	}
	s.Dispose()
	delete(m.systems, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes every registered system. Used for teardown, e.g. scene
// changes.
func (m *Manager) Clear() {
	ids := append([]string(nil), m.order...)
	for _, id := range ids {
		m.Remove(id)
	}
}

// Get returns the handle registered under id.
func (m *Manager) Get(id string) (*System, bool) {
	s, ok := m.systems[id]
	return s, ok
}

// Count returns the number of registered systems.
func (m *Manager) Count() int { return len(m.systems) }

// ActiveCount returns the number of systems currently playing.
func (m *Manager) ActiveCount() int {
	n := 0
	for _, s := range m.systems {
		if s.active {
			n++
		}
	}
	return n
}

// LiveParticles sums the alive particle count across all systems.
func (m *Manager) LiveParticles() int {
	n := 0
	for _, s := range m.systems {
		n += s.AliveCount()
	}
	return n
}

// PauseAll pauses every registered system.
func (m *Manager) PauseAll() {
	for _, id := range m.order {
		if s := m.systems[id]; s != nil {
			s.Pause()
		}
	}
}

// ResumeAll plays every currently inactive system. Already-active systems
// are skipped so OnStart does not fire twice for them.
func (m *Manager) ResumeAll() {
	for _, id := range m.order {
		if s := m.systems[id]; s != nil && !s.active {
			s.Play()
		}
	}
}
