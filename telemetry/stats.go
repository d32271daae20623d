package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one time window.
type WindowStats struct {
	SimTimeSec float64 `csv:"sim_time"`
	Frames     int     `csv:"frames"`

	// Registry state at window end
	Systems   int `csv:"systems"`
	Particles int `csv:"particles"`

	// Events during the window
	Created     int `csv:"created"`
	Completions int `csv:"completions"`
	Removals    int `csv:"removals"`

	// Per-frame distributions
	ParticlesMean float64 `csv:"particles_mean"`
	UpdateMeanUs  float64 `csv:"update_mean_us"`
	UpdateP50Us   float64 `csv:"update_p50_us"`
	UpdateP90Us   float64 `csv:"update_p90_us"`
	UpdateP99Us   float64 `csv:"update_p99_us"`
}

// Log emits the window via slog.
func (s WindowStats) Log() {
	slog.Info("telemetry window",
		"sim_time", s.SimTimeSec,
		"frames", s.Frames,
		"systems", s.Systems,
		"particles", s.Particles,
		"created", s.Created,
		"completions", s.Completions,
		"removals", s.Removals,
		"update_mean_us", s.UpdateMeanUs,
		"update_p90_us", s.UpdateP90Us,
	)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// quantiles returns the p50/p90/p99 of the samples.
func quantiles(values []float64) (p50, p90, p99 float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	p99 = stat.Quantile(0.99, stat.Empirical, sorted, nil)
	return p50, p90, p99
}
