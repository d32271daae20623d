package game

import "time"

// perfWindow is the number of samples kept per phase, about two seconds
// at 60fps.
const perfWindow = 120

type phaseSamples struct {
	window [perfWindow]time.Duration
	next   int
	count  int
}

// PerfStats tracks rolling execution time per host phase for the HUD.
type PerfStats struct {
	phases map[string]*phaseSamples
}

// NewPerfStats creates an empty tracker.
func NewPerfStats() *PerfStats {
	return &PerfStats{phases: make(map[string]*phaseSamples)}
}

// Record adds a duration sample for the named phase.
func (p *PerfStats) Record(name string, d time.Duration) {
	ph := p.phases[name]
	if ph == nil {
		ph = &phaseSamples{}
		p.phases[name] = ph
	}
	ph.window[ph.next] = d
	ph.next = (ph.next + 1) % perfWindow
	if ph.count < perfWindow {
		ph.count++
	}
}

// AvgMs returns the rolling average for the named phase in milliseconds.
func (p *PerfStats) AvgMs(name string) float64 {
	ph := p.phases[name]
	if ph == nil || ph.count == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < ph.count; i++ {
		total += ph.window[i]
	}
	return float64(total.Nanoseconds()) / float64(ph.count) / 1e6
}
