package tetris

import "math/rand"

// Generator supplies the shape of each new piece.
type Generator interface {
	Next() ShapeID
}

// RandomGenerator picks each shape uniformly and independently.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator creates a uniform generator seeded with seed.
func NewRandomGenerator(seed int64) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a random shape.
func (g *RandomGenerator) Next() ShapeID {
	return ShapeID(g.rng.Intn(len(catalog)))
}

// BagGenerator deals shuffled bags holding one of each shape.
type BagGenerator struct {
	rng *rand.Rand
	bag []ShapeID
}

// NewBagGenerator creates a 7-bag generator seeded with seed.
func NewBagGenerator(seed int64) *BagGenerator {
	return &BagGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next shape from the current bag, refilling when empty.
func (g *BagGenerator) Next() ShapeID {
	if len(g.bag) == 0 {
		g.bag = Shapes()
		g.rng.Shuffle(len(g.bag), func(i, j int) {
			g.bag[i], g.bag[j] = g.bag[j], g.bag[i]
		})
	}
	id := g.bag[0]
	g.bag = g.bag[1:]
	return id
}

// SequenceGenerator cycles through a fixed list of shapes.
type SequenceGenerator struct {
	ids []ShapeID
	pos int
}

// NewSequenceGenerator returns a generator that repeats ids in order.
// With no ids it falls back to the full catalog order.
func NewSequenceGenerator(ids ...ShapeID) *SequenceGenerator {
	if len(ids) == 0 {
		ids = Shapes()
	}
	return &SequenceGenerator{ids: ids}
}

// Next returns the next shape in the sequence.
func (g *SequenceGenerator) Next() ShapeID {
	id := g.ids[g.pos%len(g.ids)]
	g.pos++
	return id
}

// Randomizer names a generator strategy in configuration.
type Randomizer string

const (
	RandomizerRandom Randomizer = "random"
	RandomizerBag    Randomizer = "bag"
)

// NewGenerator builds the generator for kind. Unknown kinds use uniform random.
func NewGenerator(kind Randomizer, seed int64) Generator {
	if kind == RandomizerBag {
		return NewBagGenerator(seed)
	}
	return NewRandomGenerator(seed)
}
