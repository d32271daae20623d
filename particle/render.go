package particle

// RenderTarget is the render-facing object owned by one system: a settable
// origin plus per-particle attribute buffers that Upload refreshes and marks
// dirty for the next draw. The rendering technique is a collaborator
// concern; the renderer package provides the raylib implementation and
// tests run with no target at all.
type RenderTarget interface {
	SetOrigin(Vec3)
	Upload(*BufferStore)
	Dispose()
}

// Scene is the scene-graph-like collaborator the manager attaches render
// targets to when configured with one.
type Scene interface {
	Add(RenderTarget)
	Remove(RenderTarget)
}

// TargetFactory builds the render target for a newly created system. A nil
// factory on the manager means headless operation: systems simulate without
// a render object.
type TargetFactory interface {
	NewTarget(count int, cfg *Config) RenderTarget
}
