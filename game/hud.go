package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Draw renders the scene and HUD. Not called in headless mode.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.drawGround()
	g.scene.Draw(g.cam)
	g.drawHUD()

	rl.EndDrawing()
}

// drawGround renders the collision plane as a horizontal line.
func (g *Game) drawGround() {
	_, sy := g.cam.WorldToScreen(0, g.cfg.Sim.GroundY)
	if sy < 0 || sy > g.cam.ViewportH {
		return
	}
	rl.DrawLine(0, int32(sy), int32(g.cam.ViewportW), int32(sy), rl.DarkGray)
}

func (g *Game) drawHUD() {
	rl.DrawText(fmt.Sprintf("Tick: %d", g.tick), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Systems: %d (%d active)  Particles: %d",
		g.manager.Count(), g.manager.ActiveCount(), g.manager.LiveParticles()), 10, 35, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Update: %.2fms", g.perf.AvgMs("update")), 10, 60, 20, rl.White)

	if g.paused {
		rl.DrawText("PAUSED", 10, 85, 20, rl.Yellow)
	} else if g.allPaused {
		rl.DrawText("SYSTEMS PAUSED", 10, 85, 20, rl.Yellow)
	}

	hint := "LMB explosion  RMB burst  K sparks  R rain  P pause fx  Space freeze  H home"
	rl.DrawText(hint, 10, int32(g.cam.ViewportH)-30, 10, rl.Gray)
}
