// Package telemetry accumulates per-frame samples from the particle demo
// host into fixed time windows and exports them via slog and CSV.
package telemetry

import "time"

// Collector accumulates frame samples within time windows and produces
// WindowStats. One collector serves one host loop; it is not safe for
// concurrent use.
type Collector struct {
	windowSec float64
	elapsed   float64

	frames int

	// Event counters for the current window
	created     int
	completions int
	removals    int

	// Per-frame samples
	updateUs  []float64 // Manager.Update duration in microseconds
	particles []float64 // live particle count

	// Sampled at window end
	systemsAtEnd   int
	particlesAtEnd int
}

// NewCollector creates a collector with the given window duration in
// simulation seconds.
func NewCollector(windowSec float64) *Collector {
	if windowSec <= 0 {
		windowSec = 1
	}
	return &Collector{windowSec: windowSec}
}

// RecordFrame records one host frame: the simulated delta, the measured
// Manager.Update duration, and the registry counts after the tick.
func (c *Collector) RecordFrame(dt float64, updateDur time.Duration, systems, particles int) {
	c.elapsed += dt
	c.frames++
	c.updateUs = append(c.updateUs, float64(updateDur.Nanoseconds())/1e3)
	c.particles = append(c.particles, float64(particles))
	c.systemsAtEnd = systems
	c.particlesAtEnd = particles
}

// RecordCreated records a system creation.
func (c *Collector) RecordCreated() {
	c.created++
}

// RecordCompletion records a one-shot system reaching natural termination.
func (c *Collector) RecordCompletion() {
	c.completions++
}

// RecordRemoval records an explicit removal.
func (c *Collector) RecordRemoval() {
	c.removals++
}

// ShouldFlush returns true once a full window of simulated time has passed.
func (c *Collector) ShouldFlush() bool {
	return c.elapsed >= c.windowSec
}

// Flush produces a WindowStats for the current window and resets all
// counters for the next one. simTime is the total simulated time so far.
func (c *Collector) Flush(simTime float64) WindowStats {
	stats := WindowStats{
		SimTimeSec:  simTime,
		Frames:      c.frames,
		Systems:     c.systemsAtEnd,
		Particles:   c.particlesAtEnd,
		Created:     c.created,
		Completions: c.completions,
		Removals:    c.removals,
	}
	stats.ParticlesMean = mean(c.particles)
	stats.UpdateMeanUs = mean(c.updateUs)
	stats.UpdateP50Us, stats.UpdateP90Us, stats.UpdateP99Us = quantiles(c.updateUs)

	c.elapsed = 0
	c.frames = 0
	c.created = 0
	c.completions = 0
	c.removals = 0
	c.updateUs = c.updateUs[:0]
	c.particles = c.particles[:0]

	return stats
}
