package grid

import "math/rand"

// Spawn weights: a new tile is a 2 nine times out of ten, otherwise a 4.
const (
	spawnLow      = 2
	spawnHigh     = 4
	spawnHighOdds = 10 // One in spawnHighOdds spawns is spawnHigh
)

// Spawner places new tiles in random empty cells.
// The same seed always produces the same sequence of spawns.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner seeded with seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// Spawn puts a 2 or a 4 in a uniformly chosen empty cell and returns its index.
// On a full grid it does nothing and returns ok=false.
func (s *Spawner) Spawn(g *Grid) (index int, ok bool) {
	empty := g.EmptyIndices()
	if len(empty) == 0 {
		return -1, false
	}

	index = empty[s.rng.Intn(len(empty))]

	value := spawnLow
	if s.rng.Intn(spawnHighOdds) == 0 {
		value = spawnHigh
	}

	g[index] = value
	return index, true
}
