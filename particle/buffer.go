package particle

// BufferStore holds per-particle simulation state as flat parallel arrays
// (SoA layout for cache-friendly bulk updates). One logical particle is the
// i-th slot across all arrays; no array is ever reordered independently of
// the others. Count is fixed for the store's lifetime.
type BufferStore struct {
	Count int

	Position []float32 // 3 per particle; world or local space per Config.WorldSpace
	Velocity []float32 // 3 per particle

	LifetimeRemaining []float32 // seconds; a particle is dead iff <= 0
	LifetimeMax       []float32 // seconds; LifetimeRemaining <= LifetimeMax always

	Size        []float32
	InitialSize []float32 // base footprint for over-lifetime scaling

	Color   []float32 // RGB in [0,1], 3 per particle
	Opacity []float32 // [0,1], derived from the life ratio each tick
}

// NewBufferStore allocates a store for count particles.
func NewBufferStore(count int) *BufferStore {
	return &BufferStore{
		Count:             count,
		Position:          make([]float32, count*3),
		Velocity:          make([]float32, count*3),
		LifetimeRemaining: make([]float32, count),
		LifetimeMax:       make([]float32, count),
		Size:              make([]float32, count),
		InitialSize:       make([]float32, count),
		Color:             make([]float32, count*3),
		Opacity:           make([]float32, count),
	}
}
