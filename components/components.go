// Package components defines ECS components for the demo host. Emitter
// entities move through the world and drag their attached particle
// systems with them.
package components

import "github.com/pthm-cable/emberfx/particle"

// Position is an emitter's world position.
type Position struct {
	X, Y, Z float32
}

// Velocity is an emitter's velocity in world units per second.
type Velocity struct {
	X, Y, Z float32
}

// Emitter binds an entity to a particle system in the manager registry.
type Emitter struct {
	SystemID string
	Effect   particle.Type

	// Orbit motion parameters for the demo drift
	Phase  float32
	OrbitR float32
	AngVel float32 // radians per second
}
