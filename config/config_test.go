package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/emberfx/particle"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Errorf("unexpected default screen %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Sim.DT <= 0 {
		t.Errorf("expected positive dt, got %f", cfg.Sim.DT)
	}
	if cfg.Telemetry.StatsWindow <= 0 {
		t.Errorf("expected positive stats window, got %f", cfg.Telemetry.StatsWindow)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	user := []byte("screen:\n  width: 640\n")
	if err := os.WriteFile(path, user, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Screen.Width != 640 {
		t.Errorf("expected overridden width 640, got %d", cfg.Screen.Width)
	}
	// Keys absent from the user file keep their defaults.
	if cfg.Screen.Height != 720 {
		t.Errorf("expected default height 720, got %d", cfg.Screen.Height)
	}
}

func TestEffectPresetOverlay(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	preset, err := cfg.EffectConfig(particle.Rain)
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	if preset == nil {
		t.Fatal("expected a rain preset in the embedded defaults")
	}
	if preset.ParticleCount != 400 {
		t.Errorf("expected preset count 400, got %d", preset.ParticleCount)
	}
	// Fields the preset does not mention keep the engine defaults.
	def := particle.DefaultConfig(particle.Rain)
	if preset.Lifetime != def.Lifetime {
		t.Errorf("expected default lifetime %+v, got %+v", def.Lifetime, preset.Lifetime)
	}

	// Effects without a preset resolve to nil (= engine defaults).
	none, err := cfg.EffectConfig(particle.Explosion)
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	if none != nil {
		t.Errorf("expected nil preset for explosion, got %+v", none)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
