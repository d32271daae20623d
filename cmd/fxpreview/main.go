// Effect preview tool - interactive tuning of effect parameters with sliders.
//
// Usage: go run ./cmd/fxpreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/emberfx/camera"
	"github.com/pthm-cable/emberfx/particle"
	"github.com/pthm-cable/emberfx/renderer"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

var effectOrder = []particle.Type{
	particle.Explosion,
	particle.Rain,
	particle.Burst,
	particle.Swarm,
	particle.Sparks,
}

// previewParams holds the tunable subset of the effect config.
type previewParams struct {
	Count          float32
	LifetimeMin    float32
	LifetimeMax    float32
	GravityY       float32
	Damping        float32
	BounceStrength float32
	FadeIn         float32
	FadeOut        float32
}

func paramsFromConfig(cfg particle.Config) previewParams {
	return previewParams{
		Count:          float32(cfg.ParticleCount),
		LifetimeMin:    cfg.Lifetime.Min,
		LifetimeMax:    cfg.Lifetime.Max,
		GravityY:       cfg.Gravity.Y,
		Damping:        cfg.Damping,
		BounceStrength: cfg.BounceStrength,
		FadeIn:         cfg.FadeIn,
		FadeOut:        cfg.FadeOut,
	}
}

func (p previewParams) apply(cfg particle.Config) particle.Config {
	cfg.ParticleCount = int(p.Count)
	cfg.Lifetime = particle.Range{Min: p.LifetimeMin, Max: p.LifetimeMax}
	cfg.Gravity.Y = p.GravityY
	cfg.Damping = p.Damping
	cfg.BounceStrength = p.BounceStrength
	cfg.FadeIn = p.FadeIn
	cfg.FadeOut = p.FadeOut
	return cfg
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Effect Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	scene := renderer.New()
	manager := particle.NewManager(particle.Options{
		Seed:    12345,
		Scene:   scene,
		Targets: scene,
	})
	cam := camera.New(previewSize, previewSize, 8)

	effectIdx := 0
	params := paramsFromConfig(particle.DefaultConfig(effectOrder[effectIdx]))
	needsRebuild := true

	var current *particle.System

	rebuild := func() {
		manager.Clear()
		cfg := params.apply(particle.DefaultConfig(effectOrder[effectIdx]))
		s, err := manager.Create(effectOrder[effectIdx], particle.Vec3{}, &cfg)
		if err != nil {
			return
		}
		s.Play()
		current = s
	}

	for !rl.WindowShouldClose() {
		if needsRebuild {
			rebuild()
			needsRebuild = false
		}

		// One-shots replay automatically so tuning stays visual
		if current != nil && !current.IsActive() && manager.Count() == 0 {
			rebuild()
		}

		manager.Update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		// Preview viewport
		rl.BeginScissorMode(10, 10, previewSize, previewSize)
		scene.Draw(cam)
		rl.EndScissorMode()
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		statsY := int32(previewSize + 25)
		alive := 0
		if current != nil && !current.IsDisposed() {
			alive = current.AliveCount()
		}
		rl.DrawText(fmt.Sprintf("Alive: %d  Systems: %d", alive, manager.Count()), 15, statsY, 16, rl.Gray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText(fmt.Sprintf("Effect: %s", effectOrder[effectIdx]), int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		slider := func(label, fmtStr string, value, min, max float32) float32 {
			rl.DrawText(label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			v := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				fmt.Sprintf(fmtStr, min), fmt.Sprintf(fmtStr, max),
				value, min, max,
			)
			rl.DrawText(fmt.Sprintf(fmtStr, value), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.RayWhite)
			panelY += 35
			return v
		}

		next := params
		next.Count = slider("Particle count", "%.0f", params.Count, 1, 500)
		next.LifetimeMin = slider("Lifetime min (s)", "%.2f", params.LifetimeMin, 0.1, 10)
		next.LifetimeMax = slider("Lifetime max (s)", "%.2f", params.LifetimeMax, 0.1, 10)
		next.GravityY = slider("Gravity Y", "%.1f", params.GravityY, -20, 5)
		next.Damping = slider("Damping", "%.2f", params.Damping, 0.8, 1.0)
		next.BounceStrength = slider("Bounce strength", "%.2f", params.BounceStrength, 0, 1)
		next.FadeIn = slider("Fade in fraction", "%.2f", params.FadeIn, 0, 0.5)
		next.FadeOut = slider("Fade out fraction", "%.2f", params.FadeOut, 0, 0.5)

		if next.LifetimeMax < next.LifetimeMin {
			next.LifetimeMax = next.LifetimeMin
		}
		if next != params {
			params = next
			needsRebuild = true
		}
		panelY += 10

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Next Effect") {
			effectIdx = (effectIdx + 1) % len(effectOrder)
			params = paramsFromConfig(particle.DefaultConfig(effectOrder[effectIdx]))
			needsRebuild = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Replay") {
			if current != nil && !current.IsDisposed() {
				current.Reset()
				current.Play()
			} else {
				needsRebuild = true
			}
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset Params") {
			params = paramsFromConfig(particle.DefaultConfig(effectOrder[effectIdx]))
			needsRebuild = true
		}
		panelY += 55

		// Preset snippet for config.yaml
		rl.DrawText("YAML preset:", int32(panelX), int32(panelY), 16, rl.RayWhite)
		panelY += 25
		for _, line := range yamlLines(effectOrder[effectIdx], params) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			yaml := ""
			for _, line := range yamlLines(effectOrder[effectIdx], params) {
				yaml += line + "\n"
			}
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()
	}
}

func yamlLines(effect particle.Type, p previewParams) []string {
	return []string{
		"effects:",
		fmt.Sprintf("  %s:", effect),
		fmt.Sprintf("    particle_count: %d", int(p.Count)),
		"    lifetime:",
		fmt.Sprintf("      min: %.2f", p.LifetimeMin),
		fmt.Sprintf("      max: %.2f", p.LifetimeMax),
		"    gravity:",
		fmt.Sprintf("      y: %.1f", p.GravityY),
		fmt.Sprintf("    damping: %.2f", p.Damping),
		fmt.Sprintf("    bounce_strength: %.2f", p.BounceStrength),
		fmt.Sprintf("    fade_in: %.2f", p.FadeIn),
		fmt.Sprintf("    fade_out: %.2f", p.FadeOut),
	}
}
