package engine

import (
	"github.com/lixenwraith/vi-snake/core"
	"golang.org/x/exp/rand"
)

// FoodSpawner picks food cells uniformly over an area, rejecting cells covered by the snake
type FoodSpawner struct {
	rng  *rand.Rand
	area core.Area
}

// NewFoodSpawner creates a spawner over area seeded with seed
func NewFoodSpawner(area core.Area, seed uint64) *FoodSpawner {
	return &FoodSpawner{
		rng:  rand.New(rand.NewSource(seed)),
		area: area,
	}
}

// Spawn returns a free cell. Returns false only when the snake covers the whole area.
func (fs *FoodSpawner) Spawn(snake *core.Snake) (core.Point, bool) {
	if fs.area.Cells() == 0 || snake.Len() >= fs.area.Cells() {
		return core.Point{}, false
	}

	for {
		p := core.Point{
			X: fs.area.X + fs.rng.Intn(fs.area.Width),
			Y: fs.area.Y + fs.rng.Intn(fs.area.Height),
		}
		if !snake.Contains(p) {
			return p, true
		}
	}
}
