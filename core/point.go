package core

import "fmt"

// Point is a cell on the game grid, X grows right and Y grows down
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step returns the neighbouring cell in direction d
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Direction is one of the four grid movement directions
type Direction uint8

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse direction (Up<->Down, Left<->Right)
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit cell offset for d
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Area is a rectangular block of cells
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int
}

// Contains reports whether p lies inside the area
func (a Area) Contains(p Point) bool {
	return p.X >= a.X && p.X < a.X+a.Width && p.Y >= a.Y && p.Y < a.Y+a.Height
}

// Cells returns the number of cells covered by the area
func (a Area) Cells() int {
	if a.Width <= 0 || a.Height <= 0 {
		return 0
	}
	return a.Width * a.Height
}

// Interior returns the alive space of a width x height grid, excluding the one-cell wall ring
func Interior(width, height int) Area {
	return Area{X: 1, Y: 1, Width: width - 2, Height: height - 2}
}
