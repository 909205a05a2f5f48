package snake

import "math/rand"

// Outcome classifies what a tick did.
type Outcome int

const (
	OutcomeMoved Outcome = iota // Net translation, length unchanged
	OutcomeAte                  // Head reached food, snake grew by one
	OutcomeWall                 // Candidate head left the board
	OutcomeSelf                 // Candidate head hit the snake
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeWall:
		return "wall"
	case OutcomeSelf:
		return "self"
	default:
		return "unknown"
	}
}

// Fatal reports whether the outcome ends the run.
func (o Outcome) Fatal() bool {
	return o == OutcomeWall || o == OutcomeSelf
}

// TickResult describes a single tick.
type TickResult struct {
	Outcome Outcome
	Head    Cell // Candidate head, also reported on collisions
}

// Tick advances the state by one move on the given grid.
// Collisions leave the state untouched. The pending direction is read once,
// so input arriving during a tick only affects the next one.
func (s *State) Tick(g Grid, rng *rand.Rand) TickResult {
	dir := s.Pending
	head := s.Head().Step(dir)

	if !g.Contains(head) {
		return TickResult{Outcome: OutcomeWall, Head: head}
	}

	// The tail is still in place here: moving into it is a loss even
	// though it would be vacated by this move.
	if s.Occupies(head) {
		return TickResult{Outcome: OutcomeSelf, Head: head}
	}

	s.Snake = append(s.Snake, Cell{})
	copy(s.Snake[1:], s.Snake)
	s.Snake[0] = head
	s.Heading = dir

	if head == s.Food {
		s.Score++
		s.Food = PlaceFood(rng, g.TileCount, s.Snake)
		return TickResult{Outcome: OutcomeAte, Head: head}
	}

	s.Snake = s.Snake[:len(s.Snake)-1]
	return TickResult{Outcome: OutcomeMoved, Head: head}
}
