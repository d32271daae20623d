// Package game is the demo host: an ECS scene of drifting emitter
// entities wired to a particle manager, with telemetry and optional
// raylib rendering.
package game

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/emberfx/camera"
	"github.com/pthm-cable/emberfx/components"
	"github.com/pthm-cable/emberfx/config"
	"github.com/pthm-cable/emberfx/particle"
	"github.com/pthm-cable/emberfx/renderer"
	"github.com/pthm-cable/emberfx/telemetry"
)

// Options configures a Game beyond the config file.
type Options struct {
	Seed           int64 // 0 = time-based
	Headless       bool
	LogStats       bool
	OutputDir      string
	StepsPerUpdate int
}

// Game holds the complete demo state.
type Game struct {
	cfg  *config.Config
	opts Options
	rng  *rand.Rand

	world         *ecs.World
	emitterMap    *ecs.Map3[components.Position, components.Velocity, components.Emitter]
	emitterFilter *ecs.Filter3[components.Position, components.Velocity, components.Emitter]

	manager *particle.Manager
	scene   *renderer.Renderer
	cam     *camera.Camera

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	perf      *PerfStats

	tick    int32
	simTime float64
	paused  bool

	// Toggled continuous effects keyed by type (rain etc.)
	ambient map[particle.Type]string

	allPaused bool
}

// NewGame creates a demo instance. In headless mode no renderer or camera
// is created and the manager runs without render targets.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world := ecs.NewWorld()
	g := &Game{
		cfg:           cfg,
		opts:          opts,
		rng:           rand.New(rand.NewSource(seed)),
		world:         world,
		emitterMap:    ecs.NewMap3[components.Position, components.Velocity, components.Emitter](world),
		emitterFilter: ecs.NewFilter3[components.Position, components.Velocity, components.Emitter](world),
		collector:     telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perf:          NewPerfStats(),
		ambient:       make(map[particle.Type]string),
	}

	mgrOpts := particle.Options{Rand: g.rng}
	if !opts.Headless {
		g.scene = renderer.New()
		g.cam = camera.New(float32(cfg.Screen.Width), float32(cfg.Screen.Height), cfg.Sim.WorldExtent)
		mgrOpts.Scene = g.scene
		mgrOpts.Targets = g.scene
	}
	g.manager = particle.NewManager(mgrOpts)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output: %w", err)
	}
	g.output = output
	if output != nil {
		if err := cfg.WriteYAML(filepath.Join(output.Dir(), "config.yaml")); err != nil {
			slog.Warn("failed to snapshot config", "error", err)
		}
	}

	if err := g.spawnEmitters(); err != nil {
		return nil, err
	}
	return g, nil
}

// spawnEmitters creates the initial orbiting swarm emitters.
func (g *Game) spawnEmitters() error {
	n := g.cfg.Sim.EmitterCount
	extent := g.cfg.Sim.WorldExtent
	for i := 0; i < n; i++ {
		phase := float32(i) / float32(n) * 2 * math.Pi
		orbitR := extent * (0.25 + 0.35*g.rng.Float32())

		pos := components.Position{
			X: orbitR * cosf(phase),
			Y: orbitR*sinf(phase)*0.5 + extent*0.25,
		}
		sys, err := g.SpawnEffect(particle.Swarm, particle.Vec3{X: pos.X, Y: pos.Y})
		if err != nil {
			return err
		}

		vel := components.Velocity{}
		em := components.Emitter{
			SystemID: sys.ID(),
			Effect:   particle.Swarm,
			Phase:    phase,
			OrbitR:   orbitR,
			AngVel:   0.3 + 0.3*g.rng.Float32(),
		}
		g.emitterMap.NewEntity(&pos, &vel, &em)
	}
	return nil
}

// SpawnEffect creates a system for the effect at pos using the configured
// preset, instruments it for telemetry and starts it playing.
func (g *Game) SpawnEffect(effect particle.Type, pos particle.Vec3) (*particle.System, error) {
	preset, err := g.cfg.EffectConfig(effect)
	if err != nil {
		return nil, err
	}
	s, err := g.manager.Create(effect, pos, preset)
	if err != nil {
		return nil, err
	}
	s.OnComplete = g.collector.RecordCompletion
	g.collector.RecordCreated()
	s.Play()
	return s, nil
}

// removeSystem removes a system and records the removal.
func (g *Game) removeSystem(id string) {
	if g.manager.Remove(id) {
		g.collector.RecordRemoval()
	}
}

// Update runs input handling and simulation steps for one frame.
func (g *Game) Update() {
	g.handleInput()
	if g.paused {
		return
	}
	g.runSteps()
}

// UpdateHeadless runs simulation steps without graphics. Scripted one-shot
// bursts keep the system lifecycle exercised during long runs.
func (g *Game) UpdateHeadless() {
	if g.tick%150 == 0 {
		extent := g.cfg.Sim.WorldExtent
		pos := particle.Vec3{
			X: (g.rng.Float32() - 0.5) * extent,
			Y: g.rng.Float32() * extent * 0.5,
		}
		effect := particle.Explosion
		if g.tick%300 == 0 {
			effect = particle.Sparks
			pos.Y = g.cfg.Sim.GroundY + 0.5
		}
		if _, err := g.SpawnEffect(effect, pos); err != nil {
			slog.Error("failed to spawn scripted effect", "effect", effect, "error", err)
		}
	}
	g.runSteps()
}

func (g *Game) runSteps() {
	steps := g.opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		g.simulationStep()
	}
}

// simulationStep advances the scene by one fixed tick.
func (g *Game) simulationStep() {
	dt := float32(g.cfg.Sim.DT)

	start := time.Now()
	g.moveEmitters(dt)
	g.perf.Record("emitters", time.Since(start))

	start = time.Now()
	g.manager.Update(dt)
	updateDur := time.Since(start)
	g.perf.Record("update", updateDur)

	g.simTime += g.cfg.Sim.DT
	g.tick++

	g.collector.RecordFrame(g.cfg.Sim.DT, updateDur, g.manager.Count(), g.manager.LiveParticles())
	if g.collector.ShouldFlush() {
		stats := g.collector.Flush(g.simTime)
		if g.opts.LogStats {
			stats.Log()
		}
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
	}
}

// moveEmitters advances the orbiting emitters and drags their particle
// systems along.
func (g *Game) moveEmitters(dt float32) {
	query := g.emitterFilter.Query()
	for query.Next() {
		pos, vel, em := query.Get()

		em.Phase += em.AngVel * dt
		speed := em.OrbitR * em.AngVel
		vel.X = -sinf(em.Phase) * speed
		vel.Y = cosf(em.Phase) * speed * 0.5

		pos.X += vel.X * dt
		pos.Y += vel.Y * dt

		if s, ok := g.manager.Get(em.SystemID); ok {
			s.SetPosition(particle.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z})
		}
	}
}

// Manager exposes the particle registry.
func (g *Game) Manager() *particle.Manager { return g.manager }

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 { return g.tick }

// Unload flushes telemetry and releases all systems.
func (g *Game) Unload() {
	g.manager.Clear()
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

func sinf(x float32) float32 { return float32(math.Sin(float64(x))) }
func cosf(x float32) float32 { return float32(math.Cos(float64(x))) }
