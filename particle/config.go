package particle

// SpawnShape names the geometric distribution used to place a particle's
// initial position relative to the system origin.
type SpawnShape string

const (
	SpawnPoint  SpawnShape = "point"
	SpawnSphere SpawnShape = "sphere"
	SpawnBox    SpawnShape = "box"
	SpawnCircle SpawnShape = "circle" // XY plane
	SpawnLine   SpawnShape = "line"   // along X
)

// SpawnArea describes where particles spawn relative to the system origin.
// Radius applies to sphere and circle, HalfExtents to box, Length to line.
type SpawnArea struct {
	Shape       SpawnShape `yaml:"shape"`
	Radius      float32    `yaml:"radius"`
	HalfExtents Vec3       `yaml:"half_extents"`
	Length      float32    `yaml:"length"`
}

// Config holds the tunable parameters of one particle effect instance.
//
// Resolution works the way a YAML overlay does: callers start from
// DefaultConfig(effect) and override fields, or pass nil to Create for pure
// defaults. A non-nil Config keeps explicit values as-is; only fields whose
// zero value is invalid (count, lifetime, size, damping, palette, spawn
// shape, bounce strength) fall back to the effect defaults. Zero velocity
// corners, gravity and fade windows are honored literally. Boolean fields
// combine with the effect defaults by OR.
type Config struct {
	ParticleCount    int     `yaml:"particle_count"`
	EmissionDuration float32 `yaml:"emission_duration"` // seconds; -1 = continuous
	EmissionRate     float32 `yaml:"emission_rate"`     // particles/sec, informational

	Lifetime Range `yaml:"lifetime"` // seconds
	Size     Range `yaml:"size"`

	// Initial velocity is drawn per-axis uniformly between the two corner
	// vectors (a box distribution, not a sphere).
	VelocityMin Vec3 `yaml:"velocity_min"`
	VelocityMax Vec3 `yaml:"velocity_max"`

	Gravity Vec3    `yaml:"gravity"` // added to velocity each tick, units/s^2
	Damping float32 `yaml:"damping"` // per-tick multiplicative velocity decay in (0,1]

	Palette []Color `yaml:"palette"` // spawn color: uniform selection, not interpolation

	Spawn SpawnArea `yaml:"spawn"`

	FadeIn  float32 `yaml:"fade_in"`  // fraction of lifetime; 0 = no ramp
	FadeOut float32 `yaml:"fade_out"` // fraction of lifetime; 0 = plain life-ratio rule

	ScaleOverTime bool `yaml:"scale_over_time"`

	CollideGround  bool    `yaml:"collide_ground"`
	GroundY        float32 `yaml:"ground_y"`
	BounceStrength float32 `yaml:"bounce_strength"` // restitution applied on ground contact

	WorldSpace bool `yaml:"world_space"` // buffers hold world coordinates; origin is applied at spawn
	Additive   bool `yaml:"additive"`    // render hint: additive blending
	DepthWrite bool `yaml:"depth_write"` // render hint
}

// DefaultConfig returns a copy of the documented defaults for the given
// effect. It returns the zero Config for an unknown effect type.
func DefaultConfig(effect Type) Config {
	def, ok := effects[effect]
	if !ok {
		return Config{}
	}
	return def.defaults
}

// resolveConfig merges a caller-supplied config over the effect defaults.
// nil means "all defaults".
func resolveConfig(cfg *Config, def Config) Config {
	if cfg == nil {
		return def
	}
	out := *cfg
	if out.ParticleCount <= 0 {
		out.ParticleCount = def.ParticleCount
	}
	if out.EmissionDuration == 0 {
		out.EmissionDuration = def.EmissionDuration
	}
	if out.EmissionRate <= 0 {
		out.EmissionRate = def.EmissionRate
	}
	if out.Lifetime.isZero() {
		out.Lifetime = def.Lifetime
	}
	if out.Size.isZero() {
		out.Size = def.Size
	}
	if out.Damping <= 0 {
		out.Damping = def.Damping
	}
	if len(out.Palette) == 0 {
		out.Palette = def.Palette
	}
	if out.Spawn.Shape == "" {
		out.Spawn = def.Spawn
	}
	out.ScaleOverTime = out.ScaleOverTime || def.ScaleOverTime
	out.CollideGround = out.CollideGround || def.CollideGround
	out.WorldSpace = out.WorldSpace || def.WorldSpace
	out.Additive = out.Additive || def.Additive
	out.DepthWrite = out.DepthWrite || def.DepthWrite
	if out.CollideGround && out.BounceStrength <= 0 {
		out.BounceStrength = def.BounceStrength
	}
	return out
}
