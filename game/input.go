package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/emberfx/particle"
)

// handleInput processes mouse and keyboard input. Not called in headless
// mode.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// P pauses the systems themselves, leaving the host loop running
	if rl.IsKeyPressed(rl.KeyP) {
		if g.allPaused {
			g.manager.ResumeAll()
		} else {
			g.manager.PauseAll()
		}
		g.allPaused = !g.allPaused
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		g.spawnAtCursor(particle.Explosion)
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		g.spawnAtCursor(particle.Burst)
	}
	if rl.IsKeyPressed(rl.KeyK) {
		g.spawnAtCursor(particle.Sparks)
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.toggleAmbient(particle.Rain, particle.Vec3{Y: g.cfg.Sim.WorldExtent * 0.8})
	}

	g.handleCameraInput()
}

// spawnAtCursor creates a one-shot effect at the world position under the
// mouse.
func (g *Game) spawnAtCursor(effect particle.Type) {
	mouse := rl.GetMousePosition()
	wx, wy := g.cam.ScreenToWorld(mouse.X, mouse.Y)
	if _, err := g.SpawnEffect(effect, particle.Vec3{X: wx, Y: wy}); err != nil {
		slog.Error("failed to spawn effect", "effect", effect, "error", err)
	}
}

// toggleAmbient starts or stops a continuous effect keyed by type.
func (g *Game) toggleAmbient(effect particle.Type, pos particle.Vec3) {
	if id, ok := g.ambient[effect]; ok {
		g.removeSystem(id)
		delete(g.ambient, effect)
		return
	}
	s, err := g.SpawnEffect(effect, pos)
	if err != nil {
		slog.Error("failed to spawn effect", "effect", effect, "error", err)
		return
	}
	g.ambient[effect] = s.ID()
}

func (g *Game) handleCameraInput() {
	const panSpeed = 8

	if rl.IsKeyDown(rl.KeyLeft) {
		g.cam.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyRight) {
		g.cam.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.cam.Pan(0, -panSpeed)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.cam.Pan(0, panSpeed)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.cam.ZoomBy(1 + wheel*0.1)
	}

	if rl.IsKeyPressed(rl.KeyH) {
		g.cam.Reset()
	}
}
