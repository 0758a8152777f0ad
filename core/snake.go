package core

// SnakeLength is the body length of a freshly constructed snake
const SnakeLength = 3

// Snake owns the ordered body (head first) and the heading.
// Growth is expressed as two primitives: MoveForward always drops the tail,
// RestoreTail puts the last dropped tail back.
type Snake struct {
	body      []Point
	direction Direction
	lastTail  Point
	hasTail   bool
}

// NewSnake builds the canonical start shape: head at (x,y) and two segments
// trailing to the left, heading right
func NewSnake(x, y int) *Snake {
	body := make([]Point, 0, 16)
	for i := 0; i < SnakeLength; i++ {
		body = append(body, Point{X: x - i, Y: y})
	}
	return &Snake{
		body:      body,
		direction: DirRight,
	}
}

// HeadPosition returns the front segment
func (s *Snake) HeadPosition() Point {
	return s.body[0]
}

// HeadDirection returns the current heading
func (s *Snake) HeadDirection() Direction {
	return s.direction
}

// NextHead returns the cell the head would enter, nil dir keeps the heading.
// Does not mutate.
func (s *Snake) NextHead(dir *Direction) Point {
	d := s.direction
	if dir != nil {
		d = *dir
	}
	return s.body[0].Step(d)
}

// MoveForward adopts dir (if given), pushes the new head and drops the tail.
// Reversal filtering is the caller's job.
func (s *Snake) MoveForward(dir *Direction) {
	if dir != nil {
		s.direction = *dir
	}
	head := s.NextHead(nil)

	s.body = append(s.body, Point{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head

	s.lastTail = s.body[len(s.body)-1]
	s.hasTail = true
	s.body = s.body[:len(s.body)-1]
}

// RestoreTail re-appends the segment dropped by the last MoveForward
func (s *Snake) RestoreTail() {
	if !s.hasTail {
		return
	}
	s.body = append(s.body, s.lastTail)
	s.hasTail = false
}

// OverlapTail reports whether (x,y) hits any segment other than the head
func (s *Snake) OverlapTail(x, y int) bool {
	for _, p := range s.body[1:] {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// Contains reports whether p hits any segment, head included
func (s *Snake) Contains(p Point) bool {
	for _, b := range s.body {
		if b == p {
			return true
		}
	}
	return false
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, head first
func (s *Snake) Body() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}
