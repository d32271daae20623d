package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/emberfx/camera"
	"github.com/pthm-cable/emberfx/particle"
)

// Target holds a drawable snapshot of one system's particle buffers.
// Upload copies the buffer state so the simulation can keep mutating its
// own arrays between frames.
type Target struct {
	origin   particle.Vec3
	additive bool

	count    int
	position []float32 // count*3, local space
	color    []float32 // count*3
	size     []float32
	opacity  []float32

	uploaded bool
	disposed bool
}

func newTarget(count int, cfg *particle.Config) *Target {
	t := &Target{
		count:    count,
		position: make([]float32, count*3),
		color:    make([]float32, count*3),
		size:     make([]float32, count),
		opacity:  make([]float32, count),
	}
	if cfg != nil {
		t.additive = cfg.Additive
	}
	return t
}

// SetOrigin sets the world-space offset applied to local particle
// positions at draw time.
func (t *Target) SetOrigin(origin particle.Vec3) {
	t.origin = origin
}

// Upload snapshots the simulation buffers into the target.
func (t *Target) Upload(buf *particle.BufferStore) {
	if t.disposed || buf == nil {
		return
	}
	copy(t.position, buf.Position)
	copy(t.color, buf.Color)
	copy(t.size, buf.Size)
	copy(t.opacity, buf.Opacity)
	t.uploaded = true
}

// Dispose releases the target. Further uploads are ignored.
func (t *Target) Dispose() {
	t.disposed = true
	t.uploaded = false
}

func (t *Target) draw(cam *camera.Camera) {
	if t.disposed || !t.uploaded {
		return
	}
	for i := 0; i < t.count; i++ {
		a := t.opacity[i]
		if a <= 0 {
			continue
		}

		wx := t.position[i*3] + t.origin.X
		wy := t.position[i*3+1] + t.origin.Y
		radius := t.size[i] / 2
		if !cam.IsVisible(wx, wy, radius) {
			continue
		}

		sx, sy := cam.WorldToScreen(wx, wy)
		px := cam.Scale(radius)
		if px < 1 {
			px = 1
		}

		col := rl.Color{
			R: channel(t.color[i*3]),
			G: channel(t.color[i*3+1]),
			B: channel(t.color[i*3+2]),
			A: channel(a),
		}
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, px, col)
	}
}

// channel converts a normalized [0,1] component to a byte.
func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
