package rain

//go:generate go tool mockgen -destination=./mocks/events_mock.go -package=mocks . EventSink

import "github.com/vovakirdan/rainshield/internal/ecs"

// Absorption is emitted once for every rain drop an NPC absorbs.
type Absorption struct {
	Npc     ecs.Entity
	Drop    ecs.Entity
	Wetness Wetness // NPC wetness after the hit
	Step    int
}

// EventSink receives hazard-absorbed signals. Calls are made from the
// simulation goroutine and must not block.
type EventSink interface {
	Absorbed(a Absorption)
}

// ScoreCounter tallies absorptions into a score.
type ScoreCounter struct {
	total int
}

// Absorbed implements EventSink.
func (s *ScoreCounter) Absorbed(Absorption) {
	s.total++
}

// Total returns the number of absorptions seen.
func (s *ScoreCounter) Total() int {
	return s.total
}

// Reset zeroes the tally.
func (s *ScoreCounter) Reset() {
	s.total = 0
}

func (g *Game) emit(a Absorption) {
	g.score.Absorbed(a)
	for _, s := range g.sinks {
		s.Absorbed(a)
	}
}
