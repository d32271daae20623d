// Package renderer draws particle buffers with raylib. It implements the
// engine's Scene and TargetFactory interfaces so the simulation core stays
// free of any graphics dependency.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/emberfx/camera"
	"github.com/pthm-cable/emberfx/particle"
)

// Renderer owns the set of live render targets and draws them each frame.
type Renderer struct {
	targets []*Target
}

// New creates an empty renderer.
func New() *Renderer {
	return &Renderer{}
}

// NewTarget creates a render target for a system with the given particle
// capacity. Implements particle.TargetFactory.
func (r *Renderer) NewTarget(count int, cfg *particle.Config) particle.RenderTarget {
	return newTarget(count, cfg)
}

// Add attaches a target to the scene. Implements particle.Scene.
func (r *Renderer) Add(t particle.RenderTarget) {
	if tgt, ok := t.(*Target); ok {
		r.targets = append(r.targets, tgt)
	}
}

// Remove detaches a target from the scene. Implements particle.Scene.
func (r *Renderer) Remove(t particle.RenderTarget) {
	for i, tgt := range r.targets {
		if tgt == t {
			r.targets = append(r.targets[:i], r.targets[i+1:]...)
			return
		}
	}
}

// TargetCount returns the number of attached targets.
func (r *Renderer) TargetCount() int {
	return len(r.targets)
}

// Draw renders all attached targets through the camera. Additive targets
// are drawn after alpha-blended ones so glow stacks on top.
func (r *Renderer) Draw(cam *camera.Camera) {
	for _, t := range r.targets {
		if !t.additive {
			t.draw(cam)
		}
	}

	rl.BeginBlendMode(rl.BlendAdditive)
	for _, t := range r.targets {
		if t.additive {
			t.draw(cam)
		}
	}
	rl.EndBlendMode()
}
